package instagram

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// graphNode instaloader 元数据与网页 _sharedData 共用的 GraphQL node 结构
type graphNode struct {
	ID                 string `json:"id"`
	Shortcode          string `json:"shortcode"`
	Typename           string `json:"__typename"`
	DisplayURL         string `json:"display_url"`
	TakenAtTimestamp   int64  `json:"taken_at_timestamp"`
	EdgeMediaToCaption struct {
		Edges []struct {
			Node struct {
				Text string `json:"text"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"edge_media_to_caption"`
	EdgeLikedBy struct {
		Count int `json:"count"`
	} `json:"edge_liked_by"`
	EdgeMediaPreviewLike struct {
		Count int `json:"count"`
	} `json:"edge_media_preview_like"`
	EdgeMediaToComment struct {
		Count int `json:"count"`
	} `json:"edge_media_to_comment"`
}

// toPost node 转统一帖子结构
func (n *graphNode) toPost() (Post, error) {
	if n.ID == "" {
		return Post{}, fmt.Errorf("node 缺少 id")
	}

	post := Post{
		ExternalID:   n.ID,
		LikeCount:    n.EdgeLikedBy.Count,
		CommentCount: n.EdgeMediaToComment.Count,
		MediaType:    "IMAGE",
		PostedAt:     time.Unix(n.TakenAtTimestamp, 0),
	}

	if post.LikeCount == 0 {
		post.LikeCount = n.EdgeMediaPreviewLike.Count
	}
	if n.Typename == "GraphVideo" {
		post.MediaType = "VIDEO"
	}
	if len(n.EdgeMediaToCaption.Edges) > 0 {
		text := n.EdgeMediaToCaption.Edges[0].Node.Text
		post.Caption = &text
	}
	if n.DisplayURL != "" {
		url := n.DisplayURL
		post.MediaURL = &url
	}
	if n.Shortcode != "" {
		permalink := fmt.Sprintf("https://www.instagram.com/p/%s/", n.Shortcode)
		post.Permalink = &permalink
	}

	return post, nil
}

// parseNodeFile 解析 instaloader 落盘的单个帖子元数据文件
func parseNodeFile(data []byte) (Post, error) {
	var wrapper struct {
		Node graphNode `json:"node"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return Post{}, fmt.Errorf("元数据解析失败: %w", err)
	}
	return wrapper.Node.toPost()
}

// parseSharedData 解析公开主页嵌入的 window._sharedData JSON
func parseSharedData(data []byte) ([]Post, error) {
	var shared struct {
		EntryData struct {
			ProfilePage []struct {
				Graphql struct {
					User struct {
						EdgeOwnerToTimelineMedia struct {
							Edges []struct {
								Node graphNode `json:"node"`
							} `json:"edges"`
						} `json:"edge_owner_to_timeline_media"`
					} `json:"user"`
				} `json:"graphql"`
			} `json:"ProfilePage"`
		} `json:"entry_data"`
	}
	if err := json.Unmarshal(data, &shared); err != nil {
		return nil, fmt.Errorf("_sharedData 解析失败: %w", err)
	}
	if len(shared.EntryData.ProfilePage) == 0 {
		return nil, fmt.Errorf("_sharedData 不含主页数据")
	}

	edges := shared.EntryData.ProfilePage[0].Graphql.User.EdgeOwnerToTimelineMedia.Edges
	posts := make([]Post, 0, len(edges))
	for _, edge := range edges {
		post, err := edge.Node.toPost()
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}
