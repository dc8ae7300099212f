package instagram

import (
	"Lumen/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// GraphClient 官方 Graph API 连接器，走用户授权的 access token
type GraphClient struct {
	httpClient *resty.Client
	baseURL    string
	limit      int
}

func NewGraphClient() *GraphClient {
	cfg := config.Cfg.Instagram

	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &GraphClient{
		httpClient: client,
		baseURL:    cfg.GraphURL,
		limit:      cfg.FetchLimit,
	}
}

// FetchProfile 获取账号标识与用户名
func (s *GraphClient) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	var profile Profile

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "id,username",
			"access_token": accessToken,
		}).
		SetResult(&profile).
		Get(s.baseURL + "/me")
	if err != nil {
		return nil, fmt.Errorf("graph api 请求失败: %w", err)
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "Graph Profile Error", "status", resp.StatusCode(), "body", resp.String())
		return nil, fmt.Errorf("graph api 响应异常: %d", resp.StatusCode())
	}

	return &profile, nil
}

type mediaItem struct {
	ID            string  `json:"id"`
	Caption       *string `json:"caption"`
	MediaURL      *string `json:"media_url"`
	Permalink     *string `json:"permalink"`
	LikeCount     int     `json:"like_count"`
	CommentsCount int     `json:"comments_count"`
	MediaType     string  `json:"media_type"`
	Timestamp     string  `json:"timestamp"`
}

type mediaResponse struct {
	Data []mediaItem `json:"data"`
}

// FetchMedia 拉取账号最近的媒体列表
func (s *GraphClient) FetchMedia(ctx context.Context, accessToken string) ([]Post, error) {
	var body mediaResponse

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "id,caption,media_url,permalink,thumbnail_url,timestamp,media_type,like_count,comments_count",
			"access_token": accessToken,
			"limit":        strconv.Itoa(s.limit),
		}).
		SetResult(&body).
		Get(s.baseURL + "/me/media")
	if err != nil {
		return nil, fmt.Errorf("graph api 请求失败: %w", err)
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "Graph Media Error", "status", resp.StatusCode(), "body", resp.String())
		return nil, fmt.Errorf("graph api 响应异常: %d", resp.StatusCode())
	}

	posts := make([]Post, 0, len(body.Data))
	for _, item := range body.Data {
		posts = append(posts, Post{
			ExternalID:   item.ID,
			Caption:      item.Caption,
			MediaURL:     item.MediaURL,
			Permalink:    item.Permalink,
			LikeCount:    item.LikeCount,
			CommentCount: item.CommentsCount,
			MediaType:    item.MediaType,
			PostedAt:     parseGraphTime(item.Timestamp),
		})
	}

	return posts, nil
}

// parseGraphTime Graph API 的时间戳偏移量不带冒号，非标准 RFC3339
func parseGraphTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
