package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, session *model.QuizSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id string) (*model.QuizSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuizSession), args.Error(1)
}

func (m *mockSessionRepo) SaveResult(ctx context.Context, id string, result *model.QuizResult) error {
	return m.Called(ctx, id, result).Error(0)
}

func (m *mockSessionRepo) SaveAIExplanation(ctx context.Context, id, explanation string) error {
	return m.Called(ctx, id, explanation).Error(0)
}

func (m *mockSessionRepo) ListRecent(ctx context.Context, limit int64) ([]*model.QuizSession, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QuizSession), args.Error(1)
}

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *model.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *mockLeadRepo) List(ctx context.Context, limit int64) ([]*model.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Lead), args.Error(1)
}

func (m *mockLeadRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockResultCache struct {
	mock.Mock
}

func (m *mockResultCache) Get(ctx context.Context, key string, locale model.Locale) (*model.QuizResult, error) {
	args := m.Called(ctx, key, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuizResult), args.Error(1)
}

func (m *mockResultCache) Set(ctx context.Context, key string, locale model.Locale, result *model.QuizResult) error {
	return m.Called(ctx, key, locale, result).Error(0)
}

type mockAnalyticsCache struct {
	mock.Mock
}

func (m *mockAnalyticsCache) IncrEvent(ctx context.Context, event string) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockAnalyticsCache) IncrMajorRecommended(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

func (m *mockAnalyticsCache) EventCounts(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *mockAnalyticsCache) MajorCounts(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) BroadcastSessionCompleted(session *model.QuizSession) {
	m.Called(session)
}

func (m *mockBroadcaster) BroadcastLeadSubmitted(lead *model.Lead) {
	m.Called(lead)
}
