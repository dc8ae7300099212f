package dto

import "time"

// ImageDTO 图片处理结果
type ImageDTO struct {
	ID          uint64    `json:"id"`
	OriginalURL string    `json:"original_url"`
	EnhancedURL string    `json:"enhanced_url"`
	Caption     string    `json:"caption"`
	Description string    `json:"description"`
	ShareToken  string    `json:"share_token"`
	CreatedAt   time.Time `json:"created_at"`
}
