package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
	"google.golang.org/genai"
)

type implClient struct {
	client       *genai.Client
	logger       logger.Logger
	pollInterval time.Duration
}

// New creates a Client for the Gemini API. The returned client is safe to
// share; it holds the credential for the lifetime of the process.
func New(ctx context.Context, apiKey string, log logger.Logger) (Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", models.ErrBackend, err)
	}

	return &implClient{
		client:       client,
		logger:       log,
		pollInterval: time.Second,
	}, nil
}
