package source

import (
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/pkg/executor"
)

type implResolver struct {
	binary   string
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Resolver backed by the yt-dlp binary. Downloads land in
// tempDir.
func New(binary, tempDir string, exec executor.Executor, log logger.Logger) Resolver {
	if binary == "" {
		binary = "yt-dlp"
	}
	return &implResolver{
		binary:   binary,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}
