package processor

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/video-insight/pkg/fsutil"
)

// tempFiles tracks every transient file a run creates.
type tempFiles struct {
	paths []string
}

func (t *tempFiles) add(path string) {
	if path == "" {
		return
	}
	for _, p := range t.paths {
		if p == path {
			return
		}
	}
	t.paths = append(t.paths, path)
}

// cleanup removes every tracked file. Missing files are not errors.
func (p *implProcessor) cleanup(ctx context.Context, files *tempFiles) {
	for _, path := range files.paths {
		p.cleanupTempFile(ctx, path)
	}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := fsutil.RemoveFile(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filepath.Base(filePath))
	}
}
