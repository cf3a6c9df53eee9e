package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
)

// AdminHandler handles the staff dashboard endpoints
type AdminHandler struct {
	quizSvc   *service.QuizService
	leadSvc   *service.LeadService
	analytics *service.AnalyticsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(quizSvc *service.QuizService, leadSvc *service.LeadService, analytics *service.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		quizSvc:   quizSvc,
		leadSvc:   leadSvc,
		analytics: analytics,
	}
}

// ListLeads handles GET /v1/admin/leads
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadSvc.List(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"leads": leads})
}

// ListSessions handles GET /v1/admin/sessions
func (h *AdminHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.quizSvc.ListRecentSessions(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// GetSession handles GET /v1/admin/sessions/{sessionId}
func (h *AdminHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.quizSvc.GetSession(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// GetStats handles GET /v1/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func queryLimit(r *http.Request) int64 {
	n, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
