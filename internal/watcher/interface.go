package watcher

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Job is one analysis request read from an inbox file.
type Job struct {
	File      string
	URL       string
	Directive models.LanguageDirective
	Style     models.SummaryStyle
}

// EventHandler runs a job. Jobs are handled one at a time.
type EventHandler func(ctx context.Context, job Job) error
