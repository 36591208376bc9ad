package summarizer

import (
	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
)

type implSummarizer struct {
	client gemini.Client
	logger logger.Logger
	model  string
}

// New creates a Summarizer that generates with model through client.
func New(client gemini.Client, model string, log logger.Logger) Summarizer {
	return &implSummarizer{
		client: client,
		logger: log,
		model:  model,
	}
}
