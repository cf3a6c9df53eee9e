package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
)

func newAdminFixture() (*AdminHandler, *fakeSessionRepo, *fakeLeadRepo, *fakeAnalyticsCache) {
	sessionRepo := newFakeSessionRepo()
	leadRepo := &fakeLeadRepo{}
	analyticsCache := newFakeAnalyticsCache()
	analyticsSvc := service.NewAnalyticsService(analyticsCache)
	quizSvc := service.NewQuizService(sessionRepo, fakeResultCache{}, analyticsSvc)
	leadSvc := service.NewLeadService(leadRepo, analyticsSvc, "905551112233")
	return NewAdminHandler(quizSvc, leadSvc, analyticsSvc), sessionRepo, leadRepo, analyticsCache
}

func TestAdminListLeads(t *testing.T) {
	h, _, leadRepo, _ := newAdminFixture()
	leadRepo.leads = []*model.Lead{{ID: "lead_1", Name: "Sara"}}

	req := httptest.NewRequest("GET", "/v1/admin/leads?limit=10", nil)
	rec := httptest.NewRecorder()
	h.ListLeads(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Leads []*model.Lead `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Leads, 1)
	assert.Equal(t, "lead_1", resp.Leads[0].ID)
}

func TestAdminListSessions(t *testing.T) {
	h, sessionRepo, _, _ := newAdminFixture()
	require.NoError(t, sessionRepo.Create(context.Background(), &model.QuizSession{ID: "sess_1"}))

	req := httptest.NewRequest("GET", "/v1/admin/sessions", nil)
	rec := httptest.NewRecorder()
	h.ListSessions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sessions []*model.QuizSession `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Sessions, 1)
}

func TestAdminGetSession(t *testing.T) {
	h, sessionRepo, _, _ := newAdminFixture()
	require.NoError(t, sessionRepo.Create(context.Background(), &model.QuizSession{ID: "sess_1"}))

	req := httptest.NewRequest("GET", "/v1/admin/sessions/sess_1", nil)
	req = mux.SetURLVars(req, map[string]string{"sessionId": "sess_1"})
	rec := httptest.NewRecorder()
	h.GetSession(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/v1/admin/sessions/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"sessionId": "missing"})
	rec = httptest.NewRecorder()
	h.GetSession(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminGetStats(t *testing.T) {
	h, _, _, analyticsCache := newAdminFixture()
	analyticsCache.events["quiz_started"] = 7
	analyticsCache.majors["cs_ai"] = 3

	req := httptest.NewRequest("GET", "/v1/admin/stats", nil)
	rec := httptest.NewRecorder()
	h.GetStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats service.SiteStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(7), stats.Events["quiz_started"])
	assert.Equal(t, int64(3), stats.Majors["cs_ai"])
}
