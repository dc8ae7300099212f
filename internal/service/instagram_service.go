package service

import (
	"Lumen/internal/api/dto"
	"Lumen/internal/model"
	"Lumen/internal/pkg/consts"
	"Lumen/internal/pkg/instagram"
	"Lumen/internal/pkg/redis"
	"Lumen/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// GraphFetcher 官方 Graph API 连接器
type GraphFetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (*instagram.Profile, error)
	FetchMedia(ctx context.Context, accessToken string) ([]instagram.Post, error)
}

// UsernameFetcher 公开主页采集器
type UsernameFetcher interface {
	FetchByUsername(ctx context.Context, username string) ([]instagram.Post, error)
}

type InstagramService interface {
	ConnectByToken(ctx context.Context, userID uint64, accessToken string) (*dto.RefreshResultDTO, error)
	ConnectByUsername(ctx context.Context, userID uint64, username string) error
	RefreshPosts(ctx context.Context, userID uint64) (*dto.RefreshResultDTO, error)
	GetStatus(ctx context.Context, userID uint64) (*dto.AccountStatusDTO, error)
	Disconnect(ctx context.Context, userID uint64) error
}

type InstagramServiceImpl struct {
	accountRepo repository.SocialAccountRepo
	postRepo    repository.InstagramPostRepo
	graph       GraphFetcher
	scraper     UsernameFetcher
	browser     UsernameFetcher
}

func NewInstagramService(
	accountRepo repository.SocialAccountRepo,
	postRepo repository.InstagramPostRepo,
	graph GraphFetcher,
	scraper UsernameFetcher,
	browser UsernameFetcher,
) InstagramService {
	return &InstagramServiceImpl{
		accountRepo: accountRepo,
		postRepo:    postRepo,
		graph:       graph,
		scraper:     scraper,
		browser:     browser,
	}
}

// ConnectByToken OAuth 授权绑定并同步采集。
// 上游失败是绑定流程的硬错误，不做降级。
func (s *InstagramServiceImpl) ConnectByToken(ctx context.Context, userID uint64, accessToken string) (*dto.RefreshResultDTO, error) {
	profile, err := s.graph.FetchProfile(ctx, accessToken)
	if err != nil {
		log.ErrorContext(ctx, "Instagram Connect", "user_id", userID, "err", err)
		return nil, ErrInstagramUpstream
	}

	expiry := time.Now().Add(60 * 24 * time.Hour)
	account := &model.SocialAccount{
		UserID:      userID,
		InstagramID: profile.ID,
		Username:    profile.Username,
		AccessToken: &accessToken,
		TokenExpiry: &expiry,
		Connected:   true,
	}
	if err = s.accountRepo.Upsert(ctx, account); err != nil {
		return nil, err
	}

	posts, err := s.graph.FetchMedia(ctx, accessToken)
	if err != nil {
		log.ErrorContext(ctx, "Instagram Media Fetch", "user_id", userID, "err", err)
		return nil, ErrInstagramUpstream
	}

	added, err := s.appendPosts(ctx, userID, posts)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "Instagram Connected", "user_id", userID, "username", profile.Username, "posts", added)
	return &dto.RefreshResultDTO{Success: true, Posts: len(posts)}, nil
}

// ConnectByUsername 保存绑定后立即返回，采集在后台进行，
// 结果只能通过后续的 refresh-posts / style-profile 观察到
func (s *InstagramServiceImpl) ConnectByUsername(ctx context.Context, userID uint64, username string) error {
	account := &model.SocialAccount{
		UserID:    userID,
		Username:  username,
		Connected: true,
	}
	if err := s.accountRepo.Upsert(ctx, account); err != nil {
		return err
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		count, partial := s.ingestByUsername(bgCtx, userID, username)
		log.Info("Instagram Background Ingest", "user_id", userID, "username", username, "posts", count, "partial", partial)
	}()

	return nil
}

// RefreshPosts 对当前绑定账号做一次采集。
// 零帖子是部分成功而不是错误，刷新永远不向上抛上游故障。
func (s *InstagramServiceImpl) RefreshPosts(ctx context.Context, userID uint64) (*dto.RefreshResultDTO, error) {
	account, err := s.accountRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.Connected {
		return nil, ErrAccountNotLinked
	}

	var count int
	partial := false

	if account.AccessToken != nil && *account.AccessToken != "" {
		posts, err := s.graph.FetchMedia(ctx, *account.AccessToken)
		if err != nil {
			log.WarnContext(ctx, "Instagram Refresh Degraded", "user_id", userID, "err", err)
			partial = true
		} else {
			if _, err = s.appendPosts(ctx, userID, posts); err != nil {
				return nil, err
			}
			count = len(posts)
		}
	} else {
		count, partial = s.ingestByUsername(ctx, userID, account.Username)
	}

	result := &dto.RefreshResultDTO{Success: true, Posts: count}
	if count == 0 {
		result.Partial = true
		result.Message = "本次未能获取到新的帖子数据，已有数据和默认画像仍然可用"
	} else if partial {
		result.Partial = true
		result.Message = "部分帖子获取失败"
	}

	return result, nil
}

func (s *InstagramServiceImpl) GetStatus(ctx context.Context, userID uint64) (*dto.AccountStatusDTO, error) {
	account, err := s.accountRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &dto.AccountStatusDTO{PostCount: count}
	if account != nil && account.Connected {
		status.Connected = true
		status.Username = account.Username
		linkedAt := account.CreatedAt
		status.LinkedAt = &linkedAt
	}

	return status, nil
}

func (s *InstagramServiceImpl) Disconnect(ctx context.Context, userID uint64) error {
	account, err := s.accountRepo.GetByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotLinked
	}
	return s.accountRepo.Disconnect(ctx, userID)
}

// ingestByUsername 先走 instaloader，进程级失败降级到无头浏览器，
// 两者都失败时返回零结果，由调用方按部分成功处理
func (s *InstagramServiceImpl) ingestByUsername(ctx context.Context, userID uint64, username string) (int, bool) {
	lockKey := consts.ScrapeLock + strconv.FormatUint(userID, 10)
	lockToken := uuid.NewString()

	ok, err := redis.TryLock(ctx, lockKey, lockToken, 5*time.Minute, 0)
	if err != nil || !ok {
		log.WarnContext(ctx, "Instagram Scrape Busy", "user_id", userID)
		return 0, true
	}
	defer redis.UnLock(ctx, lockKey, lockToken)

	posts, err := s.scraper.FetchByUsername(ctx, username)
	if err != nil {
		log.WarnContext(ctx, "Instagram Scrape Fallback", "user_id", userID, "err", err)
		posts, err = s.browser.FetchByUsername(ctx, username)
		if err != nil {
			log.WarnContext(ctx, "Instagram Scrape Failed", "user_id", userID, "err", err)
			return 0, true
		}
	}

	if _, err = s.appendPosts(ctx, userID, posts); err != nil {
		log.ErrorContext(ctx, "Instagram Scrape Persist", "user_id", userID, "err", err)
		return 0, true
	}

	return len(posts), len(posts) == 0
}

func (s *InstagramServiceImpl) appendPosts(ctx context.Context, userID uint64, posts []instagram.Post) (int64, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	records := make([]*model.InstagramPost, 0, len(posts))
	for _, post := range posts {
		records = append(records, &model.InstagramPost{
			UserID:         userID,
			ExternalPostID: post.ExternalID,
			Caption:        post.Caption,
			MediaURL:       post.MediaURL,
			Permalink:      post.Permalink,
			LikeCount:      post.LikeCount,
			CommentCount:   post.CommentCount,
			MediaType:      post.MediaType,
			PostedAt:       post.PostedAt,
		})
	}

	return s.postRepo.AppendBatch(ctx, records)
}
