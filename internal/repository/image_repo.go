package repository

import (
	"Lumen/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ImageRepo interface {
	CreateImage(ctx context.Context, image *model.Image) error
	GetImageById(ctx context.Context, id uint64) (*model.Image, error)
	GetImageByShareToken(ctx context.Context, token string) (*model.Image, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Image, error)
}

type ImageRepoImpl struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) ImageRepo {
	return &ImageRepoImpl{db: db}
}

func (s *ImageRepoImpl) CreateImage(ctx context.Context, image *model.Image) error {
	return s.db.WithContext(ctx).Create(image).Error
}

func (s *ImageRepoImpl) GetImageById(ctx context.Context, id uint64) (*model.Image, error) {
	image := &model.Image{}
	result := s.db.WithContext(ctx).First(image, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return image, nil
}

func (s *ImageRepoImpl) GetImageByShareToken(ctx context.Context, token string) (*model.Image, error) {
	image := &model.Image{}
	result := s.db.WithContext(ctx).
		Where("share_token = ?", token).
		First(image)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return image, nil
}

func (s *ImageRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Image, error) {
	images := make([]*model.Image, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	return images, nil
}
