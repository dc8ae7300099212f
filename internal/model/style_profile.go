package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// StyleProfile 用户手动声明的文案风格，保存后永久优先于自动分析结果
type StyleProfile struct {
	ID                  uint64     `gorm:"primaryKey"`
	UserID              uint64     `gorm:"not null;uniqueIndex:idx_user_id" json:"user_id"`
	CaptionStyles       StringList `gorm:"type:json;not null" json:"caption_styles"`
	CommonThemes        StringList `gorm:"type:json;not null" json:"common_themes"`
	CaptionLength       string     `gorm:"type:varchar(16);not null" json:"caption_length"` // Short / Medium / Long
	EmojiUsage          string     `gorm:"type:varchar(16);not null" json:"emoji_usage"`    // Low / Moderate / High
	CaptionTone         StringList `gorm:"type:json;not null" json:"caption_tone"`
	MentionFrequency    string     `gorm:"type:varchar(16);not null" json:"mention_frequency"`
	HashtagsPerPost     float64    `gorm:"not null;default:0" json:"hashtags_per_post"`
	RecommendedHashtags StringList `gorm:"type:json" json:"recommended_hashtags"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (StyleProfile) TableName() string {
	return "style_profiles"
}

// StringList 以 JSON 形式落库的字符串列表
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, s)
}
