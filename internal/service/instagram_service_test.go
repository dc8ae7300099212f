package service

import (
	"Lumen/internal/model"
	"Lumen/internal/pkg/instagram"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) GetByUserId(ctx context.Context, userID uint64) (*model.SocialAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SocialAccount), args.Error(1)
}

func (m *mockAccountRepo) Upsert(ctx context.Context, account *model.SocialAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAccountRepo) Disconnect(ctx context.Context, userID uint64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Append(ctx context.Context, post *model.InstagramPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepo) AppendBatch(ctx context.Context, posts []*model.InstagramPost) (int64, error) {
	args := m.Called(ctx, posts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.InstagramPost, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.InstagramPost), args.Error(1)
}

func (m *mockPostRepo) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockGraph struct {
	mock.Mock
}

func (m *mockGraph) FetchProfile(ctx context.Context, accessToken string) (*instagram.Profile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instagram.Profile), args.Error(1)
}

func (m *mockGraph) FetchMedia(ctx context.Context, accessToken string) ([]instagram.Post, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]instagram.Post), args.Error(1)
}

func caption(s string) *string { return &s }

func TestConnectByToken(t *testing.T) {
	accountRepo := &mockAccountRepo{}
	postRepo := &mockPostRepo{}
	graph := &mockGraph{}
	svc := NewInstagramService(accountRepo, postRepo, graph, nil, nil)

	graph.On("FetchProfile", mock.Anything, "tok").Return(&instagram.Profile{ID: "ig1", Username: "alice"}, nil)
	graph.On("FetchMedia", mock.Anything, "tok").Return([]instagram.Post{
		{ExternalID: "p1", Caption: caption("hello"), PostedAt: time.Now()},
	}, nil)
	accountRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(a *model.SocialAccount) bool {
		return a.UserID == 7 && a.Username == "alice" && a.Connected && a.AccessToken != nil
	})).Return(nil)
	postRepo.On("AppendBatch", mock.Anything, mock.MatchedBy(func(posts []*model.InstagramPost) bool {
		return len(posts) == 1 && posts[0].ExternalPostID == "p1" && posts[0].UserID == 7
	})).Return(int64(1), nil)

	result, err := svc.ConnectByToken(context.Background(), 7, "tok")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Posts)
	accountRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}

func TestConnectByToken_UpstreamFailureIsHard(t *testing.T) {
	graph := &mockGraph{}
	svc := NewInstagramService(&mockAccountRepo{}, &mockPostRepo{}, graph, nil, nil)

	graph.On("FetchProfile", mock.Anything, "bad").Return(nil, errors.New("network down"))

	_, err := svc.ConnectByToken(context.Background(), 7, "bad")
	assert.ErrorIs(t, err, ErrInstagramUpstream)
}

func TestRefreshPosts_NotLinked(t *testing.T) {
	accountRepo := &mockAccountRepo{}
	svc := NewInstagramService(accountRepo, &mockPostRepo{}, &mockGraph{}, nil, nil)

	accountRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(nil, nil)

	_, err := svc.RefreshPosts(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAccountNotLinked)
}

func TestRefreshPosts_TokenPath(t *testing.T) {
	accountRepo := &mockAccountRepo{}
	postRepo := &mockPostRepo{}
	graph := &mockGraph{}
	svc := NewInstagramService(accountRepo, postRepo, graph, nil, nil)

	tok := "tok"
	accountRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(&model.SocialAccount{
		UserID: 7, Username: "alice", AccessToken: &tok, Connected: true,
	}, nil)
	graph.On("FetchMedia", mock.Anything, "tok").Return([]instagram.Post{
		{ExternalID: "p1"}, {ExternalID: "p2"},
	}, nil)
	postRepo.On("AppendBatch", mock.Anything, mock.Anything).Return(int64(2), nil)

	result, err := svc.RefreshPosts(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Partial)
	assert.Equal(t, 2, result.Posts)
}

func TestRefreshPosts_UpstreamFailureIsPartialNotError(t *testing.T) {
	accountRepo := &mockAccountRepo{}
	graph := &mockGraph{}
	svc := NewInstagramService(accountRepo, &mockPostRepo{}, graph, nil, nil)

	tok := "tok"
	accountRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(&model.SocialAccount{
		UserID: 7, AccessToken: &tok, Connected: true,
	}, nil)
	graph.On("FetchMedia", mock.Anything, "tok").Return(nil, errors.New("upstream 500"))

	result, err := svc.RefreshPosts(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.Partial)
	assert.NotEmpty(t, result.Message)
	assert.Zero(t, result.Posts)
}

func TestGetStatus(t *testing.T) {
	accountRepo := &mockAccountRepo{}
	postRepo := &mockPostRepo{}
	svc := NewInstagramService(accountRepo, postRepo, &mockGraph{}, nil, nil)

	accountRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(&model.SocialAccount{
		UserID: 7, Username: "alice", Connected: true, CreatedAt: time.Now(),
	}, nil)
	postRepo.On("CountByUser", mock.Anything, uint64(7)).Return(int64(12), nil)

	status, err := svc.GetStatus(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, status.Connected)
	assert.Equal(t, "alice", status.Username)
	assert.Equal(t, int64(12), status.PostCount)
	assert.NotNil(t, status.LinkedAt)
}

func TestDisconnect_NotLinked(t *testing.T) {
	accountRepo := &mockAccountRepo{}
	svc := NewInstagramService(accountRepo, &mockPostRepo{}, &mockGraph{}, nil, nil)

	accountRepo.On("GetByUserId", mock.Anything, uint64(7)).Return(nil, nil)

	err := svc.Disconnect(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAccountNotLinked)
}
