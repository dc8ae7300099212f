package model

import (
	"time"
)

// SocialAccount 用户与 Instagram 账号的绑定关系，每个用户至多一条，重新绑定直接覆盖
type SocialAccount struct {
	ID          uint64     `gorm:"primaryKey"`
	UserID      uint64     `gorm:"not null;uniqueIndex:idx_user_id" json:"user_id"`
	InstagramID string     `gorm:"type:varchar(64)" json:"instagram_id"`
	Username    string     `gorm:"type:varchar(64);not null" json:"username"`
	AccessToken *string    `gorm:"type:varchar(512)" json:"-"`
	TokenExpiry *time.Time `json:"token_expiry"`
	Connected   bool       `gorm:"type:tinyint(1);not null;default:0" json:"connected"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (SocialAccount) TableName() string {
	return "social_accounts"
}
