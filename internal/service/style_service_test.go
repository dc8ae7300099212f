package service

import (
	"Lumen/internal/api/dto"
	"Lumen/internal/model"
	"Lumen/internal/pkg/styling"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByUserId(ctx context.Context, userID uint64) (*model.StyleProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StyleProfile), args.Error(1)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *model.StyleProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) RefreshPosts(ctx context.Context, userID uint64) (*dto.RefreshResultDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RefreshResultDTO), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }

func TestGetStyleProfile_ManualAlwaysWins(t *testing.T) {
	profileRepo := &mockProfileRepo{}
	postRepo := &mockPostRepo{}
	svc := NewStyleService(profileRepo, postRepo, &mockRefresher{})

	profileRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(&model.StyleProfile{
		UserID:        7,
		CaptionStyles: model.StringList{"Concise", "Personal"},
		CommonThemes:  model.StringList{"Travel"},
		CaptionLength: styling.LengthShort,
		EmojiUsage:    styling.UsageLow,
		CaptionTone:   model.StringList{"Friendly"},
	}, nil)

	profile, err := svc.GetStyleProfile(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, profile.IsManual)
	assert.Equal(t, []string{"Concise", "Personal"}, profile.CaptionStyles)
	// 语料库不应被触碰
	postRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestGetStyleProfile_AnalyzesCorpus(t *testing.T) {
	profileRepo := &mockProfileRepo{}
	postRepo := &mockPostRepo{}
	svc := NewStyleService(profileRepo, postRepo, &mockRefresher{})

	profileRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(nil, nil)
	postRepo.On("ListByUser", mock.Anything, uint64(7)).Return([]*model.InstagramPost{
		{UserID: 7, ExternalPostID: "p1", Caption: caption("short one #beach")},
	}, nil)

	profile, err := svc.GetStyleProfile(context.Background(), 7)
	require.NoError(t, err)

	assert.False(t, profile.IsManual)
	assert.Equal(t, styling.LengthShort, profile.CaptionLengthPreference)
	assert.Equal(t, []string{"#beach"}, profile.RecommendedHashtags)
}

func TestGetStyleProfile_EmptyCorpusTriggersOneRefresh(t *testing.T) {
	profileRepo := &mockProfileRepo{}
	postRepo := &mockPostRepo{}
	refresher := &mockRefresher{}
	svc := NewStyleService(profileRepo, postRepo, refresher)

	profileRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(nil, nil)
	postRepo.On("ListByUser", mock.Anything, uint64(7)).Return([]*model.InstagramPost{}, nil)
	refresher.On("RefreshPosts", mock.Anything, uint64(7)).Return(&dto.RefreshResultDTO{Success: true, Partial: true}, nil)

	profile, err := svc.GetStyleProfile(context.Background(), 7)
	require.NoError(t, err)

	refresher.AssertNumberOfCalls(t, "RefreshPosts", 1)
	assert.Equal(t, styling.DefaultProfile(), profile)
}

func TestGetStyleProfile_RefreshFailureDegradesToDefault(t *testing.T) {
	profileRepo := &mockProfileRepo{}
	postRepo := &mockPostRepo{}
	refresher := &mockRefresher{}
	svc := NewStyleService(profileRepo, postRepo, refresher)

	profileRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(nil, nil)
	postRepo.On("ListByUser", mock.Anything, uint64(7)).Return([]*model.InstagramPost{}, nil)
	refresher.On("RefreshPosts", mock.Anything, uint64(7)).Return(nil, ErrAccountNotLinked)

	profile, err := svc.GetStyleProfile(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, styling.DefaultProfile(), profile)
}

func TestSaveManualStyle(t *testing.T) {
	profileRepo := &mockProfileRepo{}
	svc := NewStyleService(profileRepo, &mockPostRepo{}, &mockRefresher{})

	profileRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *model.StyleProfile) bool {
		return p.UserID == 7 && p.CaptionLength == styling.LengthLong && p.HashtagsPerPost == 3
	})).Return(nil)

	profile, err := svc.SaveManualStyle(context.Background(), 7, &dto.ManualStyleDTO{
		CaptionLength: styling.LengthLong,
		EmojiUsage:    styling.UsageHigh,
		CaptionTone:   []string{"Humorous"},
		Themes:        []string{"Food"},
		UseHashtags:   boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, profile.IsManual)
	assert.Contains(t, profile.CaptionStyles, "Detailed")
	profileRepo.AssertExpectations(t)
}

func TestComposeInstruction_DegradesOnError(t *testing.T) {
	profileRepo := &mockProfileRepo{}
	svc := NewStyleService(profileRepo, &mockPostRepo{}, &mockRefresher{})

	profileRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(nil, errors.New("db down"))

	base := "Generate an engaging caption for this photo."
	assert.Equal(t, base, svc.ComposeInstruction(context.Background(), 7, base))
}

func TestComposeInstruction_AppendsManualStyle(t *testing.T) {
	profileRepo := &mockProfileRepo{}
	svc := NewStyleService(profileRepo, &mockPostRepo{}, &mockRefresher{})

	profileRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(&model.StyleProfile{
		UserID:        7,
		CaptionStyles: model.StringList{"Concise"},
		CaptionLength: styling.LengthShort,
		EmojiUsage:    styling.UsageLow,
	}, nil)

	base := "Generate an engaging caption for this photo."
	out := svc.ComposeInstruction(context.Background(), 7, base)

	assert.Contains(t, out, "Additionally, consider matching this user's Instagram style:")
	assert.Contains(t, out, "do not include any hashtags")
}
