package dto

import "time"

// ConnectDTO OAuth 授权绑定请求
type ConnectDTO struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// ConnectByUsernameDTO 用户名绑定请求
type ConnectByUsernameDTO struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
}

// ManualStyleDTO 手动风格声明，校验失败直接 400
type ManualStyleDTO struct {
	CaptionLength string   `json:"caption_length" binding:"required,oneof=Short Medium Long"`
	EmojiUsage    string   `json:"emoji_usage" binding:"required,oneof=Low Moderate High"`
	CaptionTone   []string `json:"caption_tone" binding:"required,min=1,dive,required"`
	Themes        []string `json:"themes" binding:"required,min=1,dive,required"`
	UseHashtags   *bool    `json:"use_hashtags" binding:"required"`
}

// RefreshResultDTO 刷新采集的结果，零帖子是部分成功而非错误
type RefreshResultDTO struct {
	Success bool   `json:"success"`
	Partial bool   `json:"partial,omitempty"`
	Message string `json:"message,omitempty"`
	Posts   int    `json:"posts"`
}

// AccountStatusDTO 账号绑定状态
type AccountStatusDTO struct {
	Connected bool       `json:"connected"`
	Username  string     `json:"username,omitempty"`
	PostCount int64      `json:"post_count"`
	LinkedAt  *time.Time `json:"linked_at,omitempty"`
}
