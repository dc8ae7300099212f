package model

import (
	"time"
)

// InstagramPost 采集到的用户历史帖子，仅追加，不修改不删除
type InstagramPost struct {
	ID             uint64    `gorm:"primaryKey"`
	UserID         uint64    `gorm:"not null;uniqueIndex:idx_user_external,priority:1" json:"user_id"`
	ExternalPostID string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_external,priority:2" json:"external_post_id"`
	Caption        *string   `gorm:"type:text" json:"caption"`
	MediaURL       *string   `gorm:"type:varchar(1024)" json:"media_url"`
	Permalink      *string   `gorm:"type:varchar(512)" json:"permalink"`
	LikeCount      int       `gorm:"not null;default:0" json:"like_count"`
	CommentCount   int       `gorm:"not null;default:0" json:"comment_count"`
	MediaType      string    `gorm:"type:varchar(16);not null;default:'IMAGE'" json:"media_type"` // IMAGE / VIDEO
	PostedAt       time.Time `gorm:"index:idx_posted_at" json:"posted_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func (InstagramPost) TableName() string {
	return "instagram_posts"
}
