package speech

import (
	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
)

type implEngine struct {
	client   gemini.Client
	model    string
	maxBytes int64
	logger   logger.Logger
}

// New creates an Engine. maxBytes is the provider's upload ceiling.
func New(client gemini.Client, model string, maxBytes int64, log logger.Logger) Engine {
	return &implEngine{
		client:   client,
		model:    model,
		maxBytes: maxBytes,
		logger:   log,
	}
}
