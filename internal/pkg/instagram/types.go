package instagram

import "time"

// Post 连接器产出的统一帖子结构，由服务层落库
type Post struct {
	ExternalID   string
	Caption      *string
	MediaURL     *string
	Permalink    *string
	LikeCount    int
	CommentCount int
	MediaType    string
	PostedAt     time.Time
}

// Profile Graph API 返回的账号信息
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
