package repository

import (
	"Lumen/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StyleProfileRepo interface {
	GetByUserId(ctx context.Context, userID uint64) (*model.StyleProfile, error)
	Upsert(ctx context.Context, profile *model.StyleProfile) error
}

type StyleProfileRepoImpl struct {
	db *gorm.DB
}

func NewStyleProfileRepo(db *gorm.DB) StyleProfileRepo {
	return &StyleProfileRepoImpl{db: db}
}

func (s *StyleProfileRepoImpl) GetByUserId(ctx context.Context, userID uint64) (*model.StyleProfile, error) {
	profile := &model.StyleProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return profile, nil
}

// Upsert 每个用户至多一条手动画像，重复声明直接覆盖
func (s *StyleProfileRepoImpl) Upsert(ctx context.Context, profile *model.StyleProfile) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"caption_styles", "common_themes", "caption_length", "emoji_usage",
			"caption_tone", "mention_frequency", "hashtags_per_post",
			"recommended_hashtags", "updated_at",
		}),
	}).Create(profile).Error
}
