package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/service"
)

// LeadHandler handles WhatsApp lead capture
type LeadHandler struct {
	leadSvc *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadSvc *service.LeadService) *LeadHandler {
	return &LeadHandler{leadSvc: leadSvc}
}

// SubmitLeadRequest is the request body for submitting a lead
type SubmitLeadRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	MajorSlug string `json:"majorSlug,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Submit handles POST /v1/leads
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.leadSvc.Submit(r.Context(), &model.Lead{
		Name:      req.Name,
		Phone:     req.Phone,
		MajorSlug: req.MajorSlug,
		SessionID: req.SessionID,
	})
	if errors.Is(err, service.ErrMissingLeadFields) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}
