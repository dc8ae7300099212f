package repository

import (
	"Lumen/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InstagramPostRepo 帖子语料库，只追加。
// 相同 (user_id, external_post_id) 的重复写入静默丢弃，保证采集幂等。
type InstagramPostRepo interface {
	Append(ctx context.Context, post *model.InstagramPost) error
	AppendBatch(ctx context.Context, posts []*model.InstagramPost) (int64, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.InstagramPost, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}

type InstagramPostRepoImpl struct {
	db *gorm.DB
}

func NewInstagramPostRepo(db *gorm.DB) InstagramPostRepo {
	return &InstagramPostRepoImpl{db: db}
}

func (s *InstagramPostRepoImpl) Append(ctx context.Context, post *model.InstagramPost) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(post).Error
}

// AppendBatch 批量追加，返回实际新增的行数
func (s *InstagramPostRepoImpl) AppendBatch(ctx context.Context, posts []*model.InstagramPost) (int64, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&posts)

	return result.RowsAffected, result.Error
}

func (s *InstagramPostRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.InstagramPost, error) {
	posts := make([]*model.InstagramPost, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("posted_at DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *InstagramPostRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.InstagramPost{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
