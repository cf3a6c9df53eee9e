package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
)

// QuizHandler handles the public quiz endpoints
type QuizHandler struct {
	quizSvc      *service.QuizService
	explainerSvc *service.ExplainerService
	analytics    *service.AnalyticsService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService, explainerSvc *service.ExplainerService, analytics *service.AnalyticsService) *QuizHandler {
	return &QuizHandler{
		quizSvc:      quizSvc,
		explainerSvc: explainerSvc,
		analytics:    analytics,
	}
}

// ScoreRequest is the request body for scoring an answer set
type ScoreRequest struct {
	Locale  model.Locale   `json:"locale"`
	Answers []model.Answer `json:"answers"`
}

// GetQuestions handles GET /v1/quiz/questions
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	h.analytics.QuizStarted(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.quizSvc.Questions(),
	})
}

// Score handles POST /v1/quiz/score
func (h *QuizHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.quizSvc.ScoreAndStore(r.Context(), req.Answers, req.Locale)
	if errors.Is(err, service.ErrNoAnswers) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Explain handles POST /v1/quiz/sessions/{sessionId}/explain
func (h *QuizHandler) Explain(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.quizSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	explanation, err := h.explainerSvc.ExplainResult(r.Context(), session)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.quizSvc.SaveAIExplanation(r.Context(), session.ID, explanation); err != nil {
		log.Printf("quiz: saving AI explanation for %s: %v", session.ID, err)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"sessionId":   session.ID,
		"explanation": explanation,
	})
}
