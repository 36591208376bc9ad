package processor

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/source"
)

// Request describes one analysis run.
type Request struct {
	URL       string
	Directive models.LanguageDirective
	Style     models.SummaryStyle
	// Progress, when set, receives download progress.
	Progress source.ProgressFunc
}

// Processor runs the full analysis pipeline for a single video.
type Processor interface {
	// Run executes every stage in order and stops at the first failure,
	// returning a *models.StageError. Transient audio is removed before Run
	// returns. A second Run while one is in flight fails with
	// models.ErrBusy.
	Run(ctx context.Context, req Request) (*models.PipelineRun, error)
}
