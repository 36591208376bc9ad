package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

// Summarizer turns transcript text into a styled summary and a content
// analysis. The two calls are independent.
type Summarizer interface {
	// Summarize fails with models.ErrTextTooShort when the trimmed text has
	// fewer than 50 characters. Text over 30000 characters is truncated.
	Summarize(ctx context.Context, text string, style models.SummaryStyle, target models.Language) (models.SummaryResult, error)
	// Analyze only reads the first 5000 characters.
	Analyze(ctx context.Context, text string, target models.Language) (models.AnalysisResult, error)
}
