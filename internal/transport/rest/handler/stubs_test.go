package handler

import (
	"context"
	"time"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// In-memory fakes backing the handler tests.

type fakeSessionRepo struct {
	sessions map[string]*model.QuizSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.QuizSession)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *model.QuizSession) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*model.QuizSession, error) {
	return r.sessions[id], nil
}

func (r *fakeSessionRepo) SaveResult(_ context.Context, id string, result *model.QuizResult) error {
	if s, ok := r.sessions[id]; ok {
		s.Result = result
	}
	return nil
}

func (r *fakeSessionRepo) SaveAIExplanation(_ context.Context, id, explanation string) error {
	if s, ok := r.sessions[id]; ok {
		s.AIExplanation = explanation
	}
	return nil
}

func (r *fakeSessionRepo) ListRecent(_ context.Context, _ int64) ([]*model.QuizSession, error) {
	out := make([]*model.QuizSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out, nil
}

type fakeLeadRepo struct {
	leads []*model.Lead
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *model.Lead) error {
	r.leads = append(r.leads, lead)
	return nil
}

func (r *fakeLeadRepo) List(_ context.Context, _ int64) ([]*model.Lead, error) {
	return r.leads, nil
}

func (r *fakeLeadRepo) CountSince(_ context.Context, _ time.Time) (int64, error) {
	return int64(len(r.leads)), nil
}

type fakeResultCache struct{}

func (fakeResultCache) Get(_ context.Context, _ string, _ model.Locale) (*model.QuizResult, error) {
	return nil, nil
}

func (fakeResultCache) Set(_ context.Context, _ string, _ model.Locale, _ *model.QuizResult) error {
	return nil
}

type fakeAnalyticsCache struct {
	events map[string]int64
	majors map[string]int64
}

func newFakeAnalyticsCache() *fakeAnalyticsCache {
	return &fakeAnalyticsCache{events: make(map[string]int64), majors: make(map[string]int64)}
}

func (c *fakeAnalyticsCache) IncrEvent(_ context.Context, event string) error {
	c.events[event]++
	return nil
}

func (c *fakeAnalyticsCache) IncrMajorRecommended(_ context.Context, slug string) error {
	c.majors[slug]++
	return nil
}

func (c *fakeAnalyticsCache) EventCounts(_ context.Context) (map[string]int64, error) {
	return c.events, nil
}

func (c *fakeAnalyticsCache) MajorCounts(_ context.Context) (map[string]int64, error) {
	return c.majors, nil
}
