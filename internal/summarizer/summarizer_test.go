package summarizer

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-insight/internal/gemini/geminitest"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
)

func newTestSummarizer(reply string) (Summarizer, *geminitest.Fake) {
	fake := &geminitest.Fake{Generate: func(geminitest.Prompt) (string, error) {
		return reply, nil
	}}
	return New(fake, "gemini-test", logger.NewNop()), fake
}

// promptedText returns what followed the fixed header in a prompt.
func promptedText(prompt, header string) string {
	_, after, _ := strings.Cut(prompt, header)
	return after
}

func TestSummarizeTooShort(t *testing.T) {
	s, fake := newTestSummarizer("summary")

	_, err := s.Summarize(context.Background(), "   "+strings.Repeat("a", 30)+"   ", models.StyleStructured, models.LanguageUnset)
	assert.ErrorIs(t, err, models.ErrTextTooShort)
	assert.Empty(t, fake.Prompts())
}

func TestSummarizeRatio(t *testing.T) {
	text := strings.Repeat("é", 200)
	s, _ := newTestSummarizer(strings.Repeat("x", 50))

	got, err := s.Summarize(context.Background(), text, models.StyleParagraph, models.LanguageUnset)
	require.NoError(t, err)

	assert.Equal(t, 200, got.OriginalLength)
	assert.Equal(t, 50, got.SummaryLength)
	assert.Equal(t, 0.25, got.CompressionRatio)
	assert.Equal(t, models.StyleParagraph, got.Style)
	assert.Equal(t, models.LanguageOriginal, got.TargetLanguage)
	assert.Equal(t, "gemini-test", got.Model)
}

func TestSummarizeTruncationLaw(t *testing.T) {
	text := strings.Repeat("ab", 20000)
	s, fake := newTestSummarizer("short summary")

	got, err := s.Summarize(context.Background(), text, models.StyleStructured, models.LanguageUnset)
	require.NoError(t, err)

	sent := promptedText(fake.Prompts()[0].Text, "Text to summarize:\n\n")
	assert.Equal(t, text[:maxSummaryChars]+TruncationMarker, sent)
	assert.Equal(t, utf8.RuneCountInString(sent), got.OriginalLength)
	assert.InDelta(t, float64(got.SummaryLength)/float64(got.OriginalLength), got.CompressionRatio, 1e-12)
}

func TestSummarizeExactlyAtCapIsNotTruncated(t *testing.T) {
	text := strings.Repeat("z", maxSummaryChars)
	s, fake := newTestSummarizer("ok")

	_, err := s.Summarize(context.Background(), text, models.StyleStructured, models.LanguageUnset)
	require.NoError(t, err)
	assert.NotContains(t, fake.Prompts()[0].Text, TruncationMarker)
}

func TestSummarizeStyles(t *testing.T) {
	text := strings.Repeat("word ", 20)

	tests := []struct {
		style models.SummaryStyle
		want  models.SummaryStyle
		hint  string
	}{
		{models.StyleStructured, models.StyleStructured, "## 🎯 Executive Summary"},
		{models.StyleBulletPoints, models.StyleBulletPoints, "at most 10 bullet points"},
		{models.StyleParagraph, models.StyleParagraph, "between 150 and 300 words"},
		{models.SummaryStyle("haiku"), models.StyleStructured, "## 🎯 Executive Summary"},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			s, fake := newTestSummarizer("ok")

			got, err := s.Summarize(context.Background(), text, tt.style, models.LanguageUnset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Style)
			assert.Contains(t, fake.Prompts()[0].Text, tt.hint)
		})
	}
}

func TestSummarizeLanguageInstruction(t *testing.T) {
	text := strings.Repeat("word ", 20)

	s, fake := newTestSummarizer("ok")
	got, err := s.Summarize(context.Background(), text, models.StyleStructured, models.LanguageSpanish)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageSpanish, got.TargetLanguage)
	assert.Contains(t, fake.Prompts()[0].Text, "Write the entire summary in Spanish")

	s, fake = newTestSummarizer("ok")
	_, err = s.Summarize(context.Background(), text, models.StyleStructured, models.LanguageUnset)
	require.NoError(t, err)
	assert.NotContains(t, fake.Prompts()[0].Text, "IMPORTANT")
}

func TestSummarizeBackendError(t *testing.T) {
	fake := &geminitest.Fake{Generate: func(geminitest.Prompt) (string, error) {
		return "", models.ErrBackend
	}}
	s := New(fake, "gemini-test", logger.NewNop())

	_, err := s.Summarize(context.Background(), strings.Repeat("a", 60), models.StyleStructured, models.LanguageUnset)
	assert.ErrorIs(t, err, models.ErrBackend)
}

func TestAnalyze(t *testing.T) {
	t.Run("caps input", func(t *testing.T) {
		text := strings.Repeat("ç", 8000)
		s, fake := newTestSummarizer("analysis")

		got, err := s.Analyze(context.Background(), text, models.LanguageFrench)
		require.NoError(t, err)
		assert.Equal(t, "analysis", got.Analysis)
		assert.Equal(t, models.LanguageFrench, got.TargetLanguage)

		prompt := fake.Prompts()[0].Text
		assert.Equal(t, strings.Repeat("ç", maxAnalysisChars), promptedText(prompt, "Content to analyze:\n\n"))
		assert.Contains(t, prompt, "Write the entire analysis in French")
		for _, section := range []string{"Category", "Target Audience", "Tone/Sentiment", "Estimated Reading Time", "Keywords", "Complexity Level"} {
			assert.Contains(t, prompt, section)
		}
	})

	t.Run("short text still analyzed", func(t *testing.T) {
		s, fake := newTestSummarizer("analysis")

		_, err := s.Summarize(context.Background(), strings.Repeat("a", 30), models.StyleStructured, models.LanguageUnset)
		require.ErrorIs(t, err, models.ErrTextTooShort)

		got, err := s.Analyze(context.Background(), strings.Repeat("a", 30), models.LanguageUnset)
		require.NoError(t, err)
		assert.Equal(t, models.LanguageOriginal, got.TargetLanguage)
		assert.Len(t, fake.Prompts(), 1)
	})

	t.Run("backend error", func(t *testing.T) {
		fake := &geminitest.Fake{Generate: func(geminitest.Prompt) (string, error) {
			return "", models.ErrBackend
		}}
		s := New(fake, "gemini-test", logger.NewNop())

		_, err := s.Analyze(context.Background(), "text", models.LanguageUnset)
		assert.ErrorIs(t, err, models.ErrBackend)
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "héllo", truncateRunes("héllo", 5))
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "", truncateRunes("héllo", 0))
}
