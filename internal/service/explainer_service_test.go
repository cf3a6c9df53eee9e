package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

func scoredSession(locale model.Locale, boosters []string) *model.QuizSession {
	return &model.QuizSession{
		ID:     "sess_test",
		Locale: locale,
		Result: &model.QuizResult{
			SortedMajors: []model.Recommendation{{Slug: "cs_ai", MatchScore: 92}},
			Boosters:     boosters,
			Programs:     []model.Program{{Title: "Bachelor of Computer Science (AI Focus)"}},
		},
	}
}

func TestExplainResultRequiresScoredSession(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	svc := NewExplainerService()

	_, err := svc.ExplainResult(context.Background(), nil)
	assert.Error(t, err)

	_, err = svc.ExplainResult(context.Background(), &model.QuizSession{ID: "s"})
	assert.Error(t, err)

	_, err = svc.ExplainResult(context.Background(), &model.QuizSession{
		ID:     "s",
		Result: &model.QuizResult{},
	})
	assert.Error(t, err)
}

func TestExplainResultLocalFallbackWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	svc := NewExplainerService()

	text, err := svc.ExplainResult(context.Background(), scoredSession(model.LocaleEN, []string{"logical", "coder"}))
	require.NoError(t, err)

	want := strings.Join([]string{
		catalog.BoosterPhrases["logical"].EN,
		catalog.BoosterPhrases["coder"].EN,
	}, " ")
	assert.Equal(t, want, text)
}

func TestExplainResultLocalFallbackEmptyBoosters(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	svc := NewExplainerService()

	text, err := svc.ExplainResult(context.Background(), scoredSession(model.LocaleAR, nil))
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultPhrase.AR, text)
}

func TestExplainResultAPIFailureFallsBackLocal(t *testing.T) {
	// A configured key with an unreachable endpoint must still produce the
	// local explanation, never an error.
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_BASE_URL", "http://127.0.0.1:1")
	svc := NewExplainerService()

	text, err := svc.ExplainResult(context.Background(), scoredSession(model.LocaleEN, []string{"logical"}))
	require.NoError(t, err)
	assert.Equal(t, catalog.BoosterPhrases["logical"].EN, text)
}

func TestBuildPromptUsesSessionLocale(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	svc := NewExplainerService()

	en := svc.buildPrompt(scoredSession(model.LocaleEN, []string{"logical"}))
	assert.Contains(t, en, "in English")
	assert.Contains(t, en, catalog.NameFor("cs_ai").EN)
	assert.Contains(t, en, "Bachelor of Computer Science (AI Focus)")

	ar := svc.buildPrompt(scoredSession(model.LocaleAR, []string{"logical"}))
	assert.Contains(t, ar, "in Arabic")
	assert.Contains(t, ar, catalog.NameFor("cs_ai").AR)
}
