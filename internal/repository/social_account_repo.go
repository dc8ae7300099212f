package repository

import (
	"Lumen/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialAccountRepo interface {
	GetByUserId(ctx context.Context, userID uint64) (*model.SocialAccount, error)
	Upsert(ctx context.Context, account *model.SocialAccount) error
	Disconnect(ctx context.Context, userID uint64) error
}

type SocialAccountRepoImpl struct {
	db *gorm.DB
}

func NewSocialAccountRepo(db *gorm.DB) SocialAccountRepo {
	return &SocialAccountRepoImpl{db: db}
}

func (s *SocialAccountRepoImpl) GetByUserId(ctx context.Context, userID uint64) (*model.SocialAccount, error) {
	account := &model.SocialAccount{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(account)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return account, nil
}

// Upsert 每个用户至多一条绑定记录，重复绑定直接覆盖
func (s *SocialAccountRepoImpl) Upsert(ctx context.Context, account *model.SocialAccount) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"instagram_id", "username", "access_token", "token_expiry", "connected", "updated_at",
		}),
	}).Create(account).Error
}

func (s *SocialAccountRepoImpl) Disconnect(ctx context.Context, userID uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.SocialAccount{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"connected":    false,
			"access_token": nil,
		}).Error
}
