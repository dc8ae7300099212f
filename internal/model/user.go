package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	SocialAccount SocialAccount `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
