package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/cache"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

func quizAnswers() []model.Answer {
	return []model.Answer{
		{QuestionID: catalog.QuestionSubjects, Response: model.ResponseData{RankedOptions: []string{"computer", "math", "physics"}}},
		{QuestionID: catalog.QuestionProblemSolving, Response: model.ResponseData{SelectedOption: "logical"}},
	}
}

func newQuizFixture() (*QuizService, *mockSessionRepo, *mockResultCache, *mockAnalyticsCache) {
	sessionRepo := new(mockSessionRepo)
	resultCache := new(mockResultCache)
	analyticsCache := new(mockAnalyticsCache)
	svc := NewQuizService(sessionRepo, resultCache, NewAnalyticsService(analyticsCache))
	return svc, sessionRepo, resultCache, analyticsCache
}

func TestScoreAndStoreRejectsEmptyAnswers(t *testing.T) {
	svc, _, _, _ := newQuizFixture()

	session, err := svc.ScoreAndStore(context.Background(), nil, model.LocaleEN)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestScoreAndStoreComputesAndPersists(t *testing.T) {
	svc, sessionRepo, resultCache, analyticsCache := newQuizFixture()

	resultCache.On("Get", mock.Anything, mock.Anything, model.LocaleEN).Return(nil, nil)
	resultCache.On("Set", mock.Anything, mock.Anything, model.LocaleEN, mock.Anything).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	analyticsCache.On("IncrEvent", mock.Anything, cache.EventQuizCompleted).Return(nil)
	analyticsCache.On("IncrMajorRecommended", mock.Anything, "cs_ai").Return(nil)

	session, err := svc.ScoreAndStore(context.Background(), quizAnswers(), model.LocaleEN)
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, model.LocaleEN, session.Locale)
	require.NotNil(t, session.Result)
	require.NotEmpty(t, session.Result.SortedMajors)
	assert.Equal(t, "cs_ai", session.Result.SortedMajors[0].Slug)
	assert.Equal(t, catalog.BadgeFor("cs_ai"), session.Result.Badge)
	assert.NotEmpty(t, session.Result.Programs)
	assert.NotEmpty(t, session.Result.Explanations)
	assert.NotNil(t, session.CompletedAt)

	sessionRepo.AssertExpectations(t)
	resultCache.AssertExpectations(t)
	analyticsCache.AssertExpectations(t)
}

func TestScoreAndStoreUsesCachedResult(t *testing.T) {
	svc, sessionRepo, resultCache, analyticsCache := newQuizFixture()

	cached := &model.QuizResult{
		SortedMajors: []model.Recommendation{{Slug: "medicine", MatchScore: 90}},
	}
	resultCache.On("Get", mock.Anything, mock.Anything, model.LocaleEN).Return(cached, nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	analyticsCache.On("IncrEvent", mock.Anything, cache.EventQuizCompleted).Return(nil)
	analyticsCache.On("IncrMajorRecommended", mock.Anything, "medicine").Return(nil)

	session, err := svc.ScoreAndStore(context.Background(), quizAnswers(), model.LocaleEN)
	require.NoError(t, err)
	assert.Same(t, cached, session.Result)

	resultCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScoreAndStoreSurvivesPersistenceFailure(t *testing.T) {
	svc, sessionRepo, resultCache, analyticsCache := newQuizFixture()

	resultCache.On("Get", mock.Anything, mock.Anything, model.LocaleEN).Return(nil, errors.New("redis down"))
	resultCache.On("Set", mock.Anything, mock.Anything, model.LocaleEN, mock.Anything).Return(errors.New("redis down"))
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("mongo down"))
	analyticsCache.On("IncrEvent", mock.Anything, cache.EventQuizCompleted).Return(errors.New("redis down"))
	analyticsCache.On("IncrMajorRecommended", mock.Anything, "cs_ai").Return(errors.New("redis down"))

	session, err := svc.ScoreAndStore(context.Background(), quizAnswers(), model.LocaleEN)
	require.NoError(t, err)
	require.NotNil(t, session.Result)
	assert.Equal(t, "cs_ai", session.Result.SortedMajors[0].Slug)
}

func TestScoreAndStoreDefaultsUnknownLocale(t *testing.T) {
	svc, sessionRepo, resultCache, analyticsCache := newQuizFixture()

	resultCache.On("Get", mock.Anything, mock.Anything, model.LocaleEN).Return(nil, nil)
	resultCache.On("Set", mock.Anything, mock.Anything, model.LocaleEN, mock.Anything).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	analyticsCache.On("IncrEvent", mock.Anything, mock.Anything).Return(nil)
	analyticsCache.On("IncrMajorRecommended", mock.Anything, mock.Anything).Return(nil)

	session, err := svc.ScoreAndStore(context.Background(), quizAnswers(), model.Locale("fr"))
	require.NoError(t, err)
	assert.Equal(t, model.LocaleEN, session.Locale)
}

func TestScoreAndStoreBroadcasts(t *testing.T) {
	svc, sessionRepo, resultCache, analyticsCache := newQuizFixture()
	broadcaster := new(mockBroadcaster)
	svc.SetBroadcaster(broadcaster)

	resultCache.On("Get", mock.Anything, mock.Anything, model.LocaleEN).Return(nil, nil)
	resultCache.On("Set", mock.Anything, mock.Anything, model.LocaleEN, mock.Anything).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	analyticsCache.On("IncrEvent", mock.Anything, mock.Anything).Return(nil)
	analyticsCache.On("IncrMajorRecommended", mock.Anything, mock.Anything).Return(nil)
	broadcaster.On("BroadcastSessionCompleted", mock.Anything).Return()

	_, err := svc.ScoreAndStore(context.Background(), quizAnswers(), model.LocaleEN)
	require.NoError(t, err)
	broadcaster.AssertExpectations(t)
}

func TestListRecentSessionsClampsLimit(t *testing.T) {
	svc, sessionRepo, _, _ := newQuizFixture()

	sessionRepo.On("ListRecent", mock.Anything, int64(50)).Return([]*model.QuizSession{}, nil)

	_, err := svc.ListRecentSessions(context.Background(), 0)
	require.NoError(t, err)
	_, err = svc.ListRecentSessions(context.Background(), 999)
	require.NoError(t, err)

	sessionRepo.AssertNumberOfCalls(t, "ListRecent", 2)
}

func TestQuestionsReturnsCatalog(t *testing.T) {
	svc, _, _, _ := newQuizFixture()
	assert.Equal(t, catalog.Questions(), svc.Questions())
}
