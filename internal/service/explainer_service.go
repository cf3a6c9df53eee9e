package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/config"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/scoring"
)

// ExplainerService generates free-text result explanations via the Gemini
// API, falling back to the local phrase builder when the API key is unset
// or the call fails.
type ExplainerService struct {
	config *config.AIConfig
	client *http.Client
}

// NewExplainerService creates a new explainer service
func NewExplainerService() *ExplainerService {
	cfg := config.DefaultAIConfig()
	return &ExplainerService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// ExplainResult produces one encouraging paragraph, in the session's
// locale, explaining why the top major was recommended.
func (s *ExplainerService) ExplainResult(ctx context.Context, session *model.QuizSession) (string, error) {
	if session == nil || session.Result == nil || len(session.Result.SortedMajors) == 0 {
		return "", fmt.Errorf("session has no scored result")
	}

	if !s.config.IsEnabled() {
		return s.localExplanation(session), nil
	}

	prompt := s.buildPrompt(session)
	text, err := s.callGemini(ctx, prompt)
	if err != nil {
		// Fallback to the local phrases on any API problem
		return s.localExplanation(session), nil
	}
	return strings.TrimSpace(text), nil
}

func (s *ExplainerService) buildPrompt(session *model.QuizSession) string {
	result := session.Result
	top := result.SortedMajors[0]

	language := "English"
	if session.Locale == model.LocaleAR {
		language = "Arabic"
	}

	topName := catalog.NameFor(top.Slug).In(session.Locale)
	programs := make([]string, 0, len(result.Programs))
	for _, p := range result.Programs {
		programs = append(programs, p.Title)
	}

	return fmt.Sprintf(`You are an admissions counselor for international students.
Write ONE short, warm, encouraging paragraph (3-4 sentences) in %s explaining
why this major suits the student. Plain text only, no lists, no markdown.

Recommended major: %s (match %d%%)
Matched programs: %s
Personality summary: %s
Answer signals: %s`,
		language,
		topName, top.MatchScore,
		strings.Join(programs, "; "),
		result.Profile.Summary.In(session.Locale),
		strings.Join(result.Boosters, ", "))
}

// localExplanation joins the deterministic phrase-builder output.
func (s *ExplainerService) localExplanation(session *model.QuizSession) string {
	phrases := scoring.BuildExplanations(session.Result.Boosters, session.Locale)
	if len(phrases) == 0 {
		return catalog.DefaultPhrase.In(session.Locale)
	}
	return strings.Join(phrases, " ")
}

// callGemini makes a request to the Gemini API
func (s *ExplainerService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.Endpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}
	return "", fmt.Errorf("empty response from Gemini")
}
