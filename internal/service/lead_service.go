package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/repository"
)

// ErrMissingLeadFields is returned when a lead lacks name or phone.
var ErrMissingLeadFields = errors.New("lead name and phone are required")

// LeadService captures contact-via-WhatsApp requests and builds the wa.me
// deep link the SPA opens.
type LeadService struct {
	leadRepo       repository.LeadRepo
	analytics      *AnalyticsService
	whatsAppNumber string
	broadcaster    Broadcaster
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepo, analytics *AnalyticsService, whatsAppNumber string) *LeadService {
	return &LeadService{
		leadRepo:       leadRepo,
		analytics:      analytics,
		whatsAppNumber: whatsAppNumber,
	}
}

// SetBroadcaster injects the admin event broadcaster.
func (s *LeadService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit validates and stores a lead, returning it with its WhatsApp link.
func (s *LeadService) Submit(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	if strings.TrimSpace(lead.Name) == "" || strings.TrimSpace(lead.Phone) == "" {
		return nil, ErrMissingLeadFields
	}

	lead.ID = "lead_" + uuid.New().String()[:8]
	lead.WhatsAppLink = s.buildWhatsAppLink(lead)

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.analytics.LeadSubmitted(ctx)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastLeadSubmitted(lead)
	}
	return lead, nil
}

// List returns the latest leads for the admin dashboard.
func (s *LeadService) List(ctx context.Context, limit int64) ([]*model.Lead, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.leadRepo.List(ctx, limit)
}

func (s *LeadService) buildWhatsAppLink(lead *model.Lead) string {
	message := fmt.Sprintf("Hi, I'm %s. I took the Explore quiz", lead.Name)
	if lead.MajorSlug != "" {
		message += fmt.Sprintf(" and got %s", catalog.NameFor(lead.MajorSlug).EN)
	}
	message += ". I'd like to talk about my options."
	return "https://wa.me/" + s.whatsAppNumber + "?text=" + url.QueryEscape(message)
}
