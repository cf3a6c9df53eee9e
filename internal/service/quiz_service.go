package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/cache"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/repository"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/scoring"
)

// ErrNoAnswers is returned when a score request carries an empty answer set.
var ErrNoAnswers = errors.New("answer set is empty")

// QuizService orchestrates the quiz flow: scoring, program matching,
// explanations, session persistence, the shared redis memo and analytics.
type QuizService struct {
	scorer      *scoring.Scorer
	picker      *scoring.ProgramPicker
	sessionRepo repository.SessionRepo
	resultCache cache.ResultCache
	analytics   *AnalyticsService
	broadcaster Broadcaster
}

// NewQuizService creates a new quiz service
func NewQuizService(sessionRepo repository.SessionRepo, resultCache cache.ResultCache, analytics *AnalyticsService) *QuizService {
	return &QuizService{
		scorer:      scoring.NewScorer(),
		picker:      scoring.NewProgramPicker(catalog.Programs),
		sessionRepo: sessionRepo,
		resultCache: resultCache,
		analytics:   analytics,
	}
}

// SetBroadcaster injects the admin event broadcaster.
func (s *QuizService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Questions returns the quiz catalog for the SPA.
func (s *QuizService) Questions() []model.Question {
	return catalog.Questions()
}

// ScoreAndStore scores an answer set, assembles the rendered result, and
// persists the session. Scoring itself cannot fail; persistence and cache
// problems are logged and degrade gracefully so the respondent always gets
// a result.
func (s *QuizService) ScoreAndStore(ctx context.Context, answers []model.Answer, locale model.Locale) (*model.QuizSession, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	if locale != model.LocaleAR {
		locale = model.LocaleEN
	}

	key := scoring.AnswerSetKeyString(answers)
	result := s.cachedResult(ctx, key, locale)
	if result == nil {
		result = s.computeResult(answers, locale)
		if err := s.resultCache.Set(ctx, key, locale, result); err != nil {
			log.Printf("quiz: result cache set: %v", err)
		}
	}

	now := time.Now()
	session := &model.QuizSession{
		ID:          uuid.New().String(),
		Locale:      locale,
		Answers:     answers,
		Result:      result,
		CreatedAt:   now,
		CompletedAt: &now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		// The result still goes back to the respondent.
		log.Printf("quiz: persisting session %s: %v", session.ID, err)
	}

	topSlug := ""
	if len(result.SortedMajors) > 0 {
		topSlug = result.SortedMajors[0].Slug
	}
	s.analytics.QuizCompleted(ctx, topSlug)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSessionCompleted(session)
	}
	return session, nil
}

// GetSession loads a stored session.
func (s *QuizService) GetSession(ctx context.Context, id string) (*model.QuizSession, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// SaveAIExplanation stores a generated explanation with its session.
func (s *QuizService) SaveAIExplanation(ctx context.Context, id, explanation string) error {
	return s.sessionRepo.SaveAIExplanation(ctx, id, explanation)
}

// ListRecentSessions returns the latest sessions for the admin dashboard.
func (s *QuizService) ListRecentSessions(ctx context.Context, limit int64) ([]*model.QuizSession, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.sessionRepo.ListRecent(ctx, limit)
}

func (s *QuizService) cachedResult(ctx context.Context, key string, locale model.Locale) *model.QuizResult {
	result, err := s.resultCache.Get(ctx, key, locale)
	if err != nil {
		log.Printf("quiz: result cache get: %v", err)
		return nil
	}
	return result
}

func (s *QuizService) computeResult(answers []model.Answer, locale model.Locale) *model.QuizResult {
	scored := s.scorer.Score(answers)

	slugs := make([]string, len(scored.SortedMajors))
	for i, rec := range scored.SortedMajors {
		slugs[i] = rec.Slug
	}

	badge := catalog.DefaultBadge
	if len(slugs) > 0 {
		badge = catalog.BadgeFor(slugs[0])
	}

	return &model.QuizResult{
		SortedMajors: scored.SortedMajors,
		Badge:        badge,
		Boosters:     scored.Boosters,
		Profile:      scored.Profile,
		Wildcard:     scored.Wildcard,
		Programs:     s.picker.Pick(slugs),
		Explanations: scoring.BuildExplanations(scored.Boosters, locale),
	}
}
