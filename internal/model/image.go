package model

import (
	"time"
)

type Image struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	OriginalKey string    `gorm:"type:varchar(512);not null" json:"original_key"`
	EnhancedKey string    `gorm:"type:varchar(512);not null" json:"enhanced_key"`
	Caption     string    `gorm:"type:text" json:"caption"`
	Description string    `gorm:"type:text" json:"description"`
	ShareToken  string    `gorm:"type:varchar(64);uniqueIndex:idx_share_token" json:"share_token"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}
