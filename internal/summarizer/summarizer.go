package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

const (
	minSummaryChars  = 50
	maxSummaryChars  = 30000
	maxAnalysisChars = 5000

	// TruncationMarker is appended to summary input cut at maxSummaryChars.
	TruncationMarker = "\n\n[...text truncated...]"
)

// Summarize generates a summary in the requested style. Lengths and the
// compression ratio are measured in characters of the prompted text.
func (s *implSummarizer) Summarize(ctx context.Context, text string, style models.SummaryStyle, target models.Language) (models.SummaryResult, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minSummaryChars {
		return models.SummaryResult{}, fmt.Errorf("%w: need at least %d characters", models.ErrTextTooShort, minSummaryChars)
	}

	style = style.Normalize()
	text = truncateForSummary(text)
	originalLength := utf8.RuneCountInString(text)

	s.logger.Info(ctx, "Generating %s summary: %d characters, language %s", style, originalLength, target.OrOriginal().Name())

	summary, err := s.client.GenerateText(ctx, s.model, buildSummaryPrompt(text, style, target))
	if err != nil {
		return models.SummaryResult{}, fmt.Errorf("summarize: %w", err)
	}

	summaryLength := utf8.RuneCountInString(summary)
	result := models.SummaryResult{
		Summary:          summary,
		Style:            style,
		OriginalLength:   originalLength,
		SummaryLength:    summaryLength,
		CompressionRatio: float64(summaryLength) / float64(originalLength),
		TargetLanguage:   target.OrOriginal(),
		Model:            s.model,
	}

	s.logger.Info(ctx, "Summary generated: compression ratio %.2f%%", result.CompressionRatio*100)
	return result, nil
}

// Analyze produces the six-section content analysis from a text sample.
func (s *implSummarizer) Analyze(ctx context.Context, text string, target models.Language) (models.AnalysisResult, error) {
	sample := truncateRunes(text, maxAnalysisChars)
	s.logger.Info(ctx, "Analyzing content: %d characters", utf8.RuneCountInString(sample))

	analysis, err := s.client.GenerateText(ctx, s.model, buildAnalysisPrompt(sample, target))
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analyze: %w", err)
	}

	return models.AnalysisResult{
		Analysis:       analysis,
		TargetLanguage: target.OrOriginal(),
		Model:          s.model,
	}, nil
}

func truncateForSummary(text string) string {
	if utf8.RuneCountInString(text) <= maxSummaryChars {
		return text
	}
	return truncateRunes(text, maxSummaryChars) + TruncationMarker
}

func truncateRunes(text string, n int) string {
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}
