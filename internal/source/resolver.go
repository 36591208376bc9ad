package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/pkg/fsutil"
)

// FetchMetadata queries the platform without downloading media.
func (r *implResolver) FetchMetadata(ctx context.Context, url string) (models.VideoMetadata, error) {
	info, err := r.dumpInfo(ctx, url)
	if err != nil {
		return models.VideoMetadata{}, err
	}

	author := info.Uploader
	if author == "" {
		author = info.Channel
	}
	duration := int(info.Duration)

	meta := models.VideoMetadata{
		ID:                info.ID,
		URL:               url,
		Title:             info.Title,
		Author:            author,
		Duration:          duration,
		DurationFormatted: models.FormatDuration(duration),
		Views:             info.ViewCount,
		Description:       models.TruncateDescription(info.Description),
	}

	r.logger.Info(ctx, "Title: %s", meta.Title)
	r.logger.Info(ctx, "Duration: %s, Channel: %s, Views: %s", meta.DurationFormatted, meta.Author, models.FormatCount(meta.Views))
	return meta, nil
}

// AcquireAudio downloads the best audio-only stream.
func (r *implResolver) AcquireAudio(ctx context.Context, url string) (models.AudioAsset, error) {
	return r.AcquireAudioWithProgress(ctx, url, nil)
}

// AcquireAudioWithProgress is AcquireAudio with a progress callback.
func (r *implResolver) AcquireAudioWithProgress(ctx context.Context, url string, progress ProgressFunc) (models.AudioAsset, error) {
	info, err := r.dumpInfo(ctx, url)
	if err != nil {
		return models.AudioAsset{}, err
	}

	format, ok := bestAudio(info.Formats)
	if !ok {
		return models.AudioAsset{}, fmt.Errorf("%w: %s", models.ErrNoAudioStream, info.Title)
	}

	filename := fsutil.SanitizeFilename(info.Title) + "." + format.Ext
	outPath := filepath.Join(r.tempDir, filename)

	r.logger.Info(ctx, "Downloading: %s", info.Title)
	r.logger.Info(ctx, "Format: %s (%s, %.0f kbps)", format.FormatID, format.Ext, format.ABR)

	report := monotonic(progress)
	args := []string{
		"-f", format.FormatID,
		"--no-playlist",
		"--no-part",
		"--quiet",
		"--no-warnings",
		"--progress",
		"--newline",
		"--progress-template", progressTemplate,
		// yt-dlp treats % in -o as a template directive
		"-o", strings.ReplaceAll(outPath, "%", "%%"),
		url,
	}

	onLine := func(line string) {
		if f, ok := parseProgress(line); ok {
			report(f)
		}
	}
	if err := r.executor.Stream(ctx, onLine, r.binary, args...); err != nil {
		// a partial file may be left behind
		_ = fsutil.RemoveFile(outPath)
		return models.AudioAsset{}, fmt.Errorf("%w: download audio: %v", models.ErrNotFound, err)
	}

	stat, err := os.Stat(outPath)
	if err != nil {
		return models.AudioAsset{}, fmt.Errorf("%w: downloaded file missing: %v", models.ErrNotFound, err)
	}
	report(1)

	asset := models.AudioAsset{
		Path: outPath,
		Size: stat.Size(),
	}
	r.logger.Info(ctx, "Download completed: %s (%.1f MB)", filepath.Base(outPath), asset.SizeMB())
	return asset, nil
}

func (r *implResolver) dumpInfo(ctx context.Context, url string) (ytInfo, error) {
	out, err := r.executor.Execute(ctx, r.binary,
		"--dump-single-json",
		"--no-playlist",
		"--no-warnings",
		"--skip-download",
		url,
	)
	if err != nil {
		return ytInfo{}, fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}

	info, err := parseInfo(out)
	if err != nil {
		return ytInfo{}, fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}
	return info, nil
}
