package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketecho/models"

	"github.com/apex/log"
	"github.com/goccy/go-json"
)

// Outcome describes how a set of suggestions was produced
type Outcome string

const (
	OutcomeFallback    Outcome = "fallback"
	OutcomeGenerated   Outcome = "generated"
	OutcomeParseError  Outcome = "parse_error"
	OutcomeUnavailable Outcome = "unavailable"
)

var (
	parseErrorSuggestion = models.Suggestion{
		Title:       "AI Generation Error",
		Description: "Could not parse AI response. Try again.",
	}
	unavailableSuggestion = models.Suggestion{
		Title:       "Service Unavailable",
		Description: "AI service is currently offline. Please check your API key.",
	}
)

// ContentGenerator is a text generation backend
type ContentGenerator interface {
	Enabled() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SuggestionResult carries the suggestions returned to clients together with
// the way they were produced. Err is set for parse_error and unavailable.
type SuggestionResult struct {
	Suggestions []models.Suggestion
	Outcome     Outcome
	Err         error
}

// SuggestionService produces marketing suggestions for a brand
type SuggestionService struct {
	generator     ContentGenerator
	fallbackDelay time.Duration
}

// NewSuggestionService creates a suggestion service. A nil or disabled
// generator makes every call return the static fallback suggestions.
func NewSuggestionService(generator ContentGenerator, fallbackDelay time.Duration) *SuggestionService {
	return &SuggestionService{
		generator:     generator,
		fallbackDelay: fallbackDelay,
	}
}

// Suggest returns suggestions for the brand. It never fails; failures are
// reported through the result's Outcome and Err.
func (s *SuggestionService) Suggest(ctx context.Context, brand, category string) SuggestionResult {
	if s.generator == nil || !s.generator.Enabled() {
		s.wait(ctx)
		return SuggestionResult{
			Suggestions: FallbackSuggestions(brand, category),
			Outcome:     OutcomeFallback,
		}
	}

	text, err := s.generator.GenerateContent(ctx, BuildSuggestionPrompt(brand, category))
	if err != nil {
		log.WithError(err).WithField("brand", brand).Error("Suggestion generation failed")
		return UnavailableResult(err)
	}

	suggestions, err := ParseSuggestions(text)
	if err != nil {
		log.WithError(err).WithField("brand", brand).Warn("Could not parse generated suggestions")
		return SuggestionResult{
			Suggestions: []models.Suggestion{parseErrorSuggestion},
			Outcome:     OutcomeParseError,
			Err:         err,
		}
	}

	return SuggestionResult{
		Suggestions: suggestions,
		Outcome:     OutcomeGenerated,
	}
}

// UnavailableResult is the result reported when suggestions could not be
// requested at all.
func UnavailableResult(err error) SuggestionResult {
	return SuggestionResult{
		Suggestions: []models.Suggestion{unavailableSuggestion},
		Outcome:     OutcomeUnavailable,
		Err:         err,
	}
}

func (s *SuggestionService) wait(ctx context.Context) {
	if s.fallbackDelay <= 0 {
		return
	}
	timer := time.NewTimer(s.fallbackDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// FallbackSuggestions returns the static suggestions served when no
// generation backend is configured.
func FallbackSuggestions(brand, category string) []models.Suggestion {
	return []models.Suggestion{
		{
			Title:       "Leverage Short-Form Video",
			Description: fmt.Sprintf("Create 15-second localized reels for %s targeting the %s audience to boost organic reach.", brand, category),
		},
		{
			Title:       "Community Engagement",
			Description: "Host an AMA (Ask Me Anything) on Reddit communities to address product feedback directly and build trust.",
		},
		{
			Title:       "SEO Optimization",
			Description: fmt.Sprintf("Update product descriptions with high-volume keywords related to '%s' to capture search intent.", category),
		},
	}
}

// BuildSuggestionPrompt builds the generation prompt for a brand and category
func BuildSuggestionPrompt(brand, category string) string {
	return fmt.Sprintf(`Give 3 specific, actionable marketing trend suggestions for a %s brand named "%s" to increase digital visibility.
    Format the response as a valid JSON array of objects with 'title' and 'description' keys. Do not include markdown formatting.
    Example: [{"title": "Short Video", "description": "Make reels."}]`, category, brand)
}

// ParseSuggestions strips markdown code fences from generated text and decodes
// it as a JSON array of suggestions. An empty array or an entry without a title
// or description is an error.
func ParseSuggestions(text string) ([]models.Suggestion, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var suggestions []models.Suggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("generated response contained no suggestions")
	}
	for i, sg := range suggestions {
		if strings.TrimSpace(sg.Title) == "" || strings.TrimSpace(sg.Description) == "" {
			return nil, fmt.Errorf("suggestion %d is missing a title or description", i)
		}
	}
	return suggestions, nil
}
