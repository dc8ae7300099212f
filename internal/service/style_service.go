package service

import (
	"Lumen/internal/api/dto"
	"Lumen/internal/model"
	"Lumen/internal/pkg/styling"
	"Lumen/internal/repository"
	"context"
	log "log/slog"
)

// PostRefresher 语料为空时触发一次采集刷新，由 Instagram 服务实现
type PostRefresher interface {
	RefreshPosts(ctx context.Context, userID uint64) (*dto.RefreshResultDTO, error)
}

type StyleService interface {
	GetStyleProfile(ctx context.Context, userID uint64) (*styling.Profile, error)
	SaveManualStyle(ctx context.Context, userID uint64, dto *dto.ManualStyleDTO) (*styling.Profile, error)
	ComposeInstruction(ctx context.Context, userID uint64, base string) string
}

type StyleServiceImpl struct {
	profileRepo repository.StyleProfileRepo
	postRepo    repository.InstagramPostRepo
	refresher   PostRefresher
}

func NewStyleService(
	profileRepo repository.StyleProfileRepo,
	postRepo repository.InstagramPostRepo,
	refresher PostRefresher,
) StyleService {
	return &StyleServiceImpl{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		refresher:   refresher,
	}
}

// GetStyleProfile 画像优先级：手动声明 > 自动分析 > 默认画像。
// 语料为空时先尝试一次刷新，刷新失败按空语料处理。
func (s *StyleServiceImpl) GetStyleProfile(ctx context.Context, userID uint64) (*styling.Profile, error) {
	manual, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if manual != nil {
		return manualToProfile(manual), nil
	}

	posts, err := s.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		if _, err = s.refresher.RefreshPosts(ctx, userID); err != nil {
			log.WarnContext(ctx, "Style Refresh Skipped", "user_id", userID, "err", err)
		}
		if posts, err = s.postRepo.ListByUser(ctx, userID); err != nil {
			return nil, err
		}
	}

	return styling.Analyze(posts), nil
}

// SaveManualStyle 手动画像落库后永久优先于自动分析
func (s *StyleServiceImpl) SaveManualStyle(ctx context.Context, userID uint64, styleDTO *dto.ManualStyleDTO) (*styling.Profile, error) {
	profile := styling.FromDeclaration(styling.Declaration{
		CaptionLength: styleDTO.CaptionLength,
		EmojiUsage:    styleDTO.EmojiUsage,
		CaptionTone:   styleDTO.CaptionTone,
		Themes:        styleDTO.Themes,
		UseHashtags:   *styleDTO.UseHashtags,
	})

	record := &model.StyleProfile{
		UserID:              userID,
		CaptionStyles:       model.StringList(profile.CaptionStyles),
		CommonThemes:        model.StringList(profile.CommonThemes),
		CaptionLength:       profile.CaptionLengthPreference,
		EmojiUsage:          profile.EmojiUsage,
		CaptionTone:         model.StringList(profile.CaptionTone),
		MentionFrequency:    profile.MentionFrequency,
		HashtagsPerPost:     profile.HashtagsPerPost,
		RecommendedHashtags: model.StringList(profile.RecommendedHashtags),
	}
	if err := s.profileRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return profile, nil
}

// ComposeInstruction 组装个性化文案指令。
// 个性化链路上的任何故障都降级为原始指令，绝不影响文案生成本身。
func (s *StyleServiceImpl) ComposeInstruction(ctx context.Context, userID uint64, base string) string {
	profile, err := s.GetStyleProfile(ctx, userID)
	if err != nil {
		log.WarnContext(ctx, "Style Personalization Degraded", "user_id", userID, "err", err)
		return base
	}
	return styling.Compose(base, profile)
}

func manualToProfile(record *model.StyleProfile) *styling.Profile {
	return &styling.Profile{
		CaptionStyles:           record.CaptionStyles,
		CommonThemes:            record.CommonThemes,
		CaptionLengthPreference: record.CaptionLength,
		EmojiUsage:              record.EmojiUsage,
		CaptionTone:             record.CaptionTone,
		MentionFrequency:        record.MentionFrequency,
		HashtagsPerPost:         record.HashtagsPerPost,
		RecommendedHashtags:     record.RecommendedHashtags,
		Engagement:              styling.Engagement{},
		IsManual:                true,
	}
}
