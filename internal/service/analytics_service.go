package service

import (
	"context"
	"log"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/cache"
)

// SiteStats is the admin-facing analytics snapshot
type SiteStats struct {
	Events map[string]int64 `json:"events"`
	Majors map[string]int64 `json:"majors"`
}

// AnalyticsService records site events into Redis counters. Recording is
// best-effort: a failed counter never fails the calling flow.
type AnalyticsService struct {
	analyticsCache cache.AnalyticsCache
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analyticsCache cache.AnalyticsCache) *AnalyticsService {
	return &AnalyticsService{analyticsCache: analyticsCache}
}

// QuizStarted records a quiz start.
func (s *AnalyticsService) QuizStarted(ctx context.Context) {
	s.incr(ctx, cache.EventQuizStarted)
}

// QuizCompleted records a completed quiz and the recommended major.
func (s *AnalyticsService) QuizCompleted(ctx context.Context, topSlug string) {
	s.incr(ctx, cache.EventQuizCompleted)
	if topSlug == "" {
		return
	}
	if err := s.analyticsCache.IncrMajorRecommended(ctx, topSlug); err != nil {
		log.Printf("analytics: incr major %s: %v", topSlug, err)
	}
}

// LeadSubmitted records a WhatsApp lead submission.
func (s *AnalyticsService) LeadSubmitted(ctx context.Context) {
	s.incr(ctx, cache.EventLeadSubmitted)
}

// Stats returns the counter snapshot for the admin dashboard.
func (s *AnalyticsService) Stats(ctx context.Context) (*SiteStats, error) {
	events, err := s.analyticsCache.EventCounts(ctx)
	if err != nil {
		return nil, err
	}
	majors, err := s.analyticsCache.MajorCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &SiteStats{Events: events, Majors: majors}, nil
}

func (s *AnalyticsService) incr(ctx context.Context, event string) {
	if err := s.analyticsCache.IncrEvent(ctx, event); err != nil {
		log.Printf("analytics: incr event %s: %v", event, err)
	}
}
