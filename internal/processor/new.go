package processor

import (
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/normalizer"
	"github.com/nguyentantai21042004/video-insight/internal/persister"
	"github.com/nguyentantai21042004/video-insight/internal/source"
	"github.com/nguyentantai21042004/video-insight/internal/speech"
	"github.com/nguyentantai21042004/video-insight/internal/summarizer"
)

const provider = "Google Gemini"

// Components are the stage implementations a Processor sequences.
type Components struct {
	Resolver   source.Resolver
	Normalizer normalizer.Normalizer
	Speech     speech.Engine
	Summarizer summarizer.Summarizer
	Persister  persister.Persister
}

type implProcessor struct {
	resolver   source.Resolver
	normalizer normalizer.Normalizer
	speech     speech.Engine
	summarizer summarizer.Summarizer
	persister  persister.Persister
	lock       *semaphore
	logger     logger.Logger
}

// New creates a new Processor instance
func New(c Components, log logger.Logger) Processor {
	return &implProcessor{
		resolver:   c.Resolver,
		normalizer: c.Normalizer,
		speech:     c.Speech,
		summarizer: c.Summarizer,
		persister:  c.Persister,
		lock:       newSemaphore(1),
		logger:     log,
	}
}
