package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

const displayName = "audio_to_transcribe"

func (e *implEngine) Transcribe(ctx context.Context, asset models.AudioAsset, directive models.LanguageDirective) (models.TranscriptResult, error) {
	info, err := os.Stat(asset.Path)
	if err != nil {
		return models.TranscriptResult{}, fmt.Errorf("stat audio: %w", errors.Join(models.ErrInvalidInput, err))
	}
	// The size on disk is authoritative, not the caller's record.
	asset.Size = info.Size()

	if asset.Size > e.maxBytes {
		return models.TranscriptResult{}, &models.TooLargeError{
			Size:     asset.Size,
			Limit:    e.maxBytes,
			Degraded: asset.Degraded,
		}
	}

	e.logger.Info(ctx, "Starting transcription: %s (%.1f MB)", filepath.Base(asset.Path), asset.SizeMB())
	start := time.Now()

	file, err := e.client.UploadFile(ctx, asset.Path, mimeType(asset), displayName)
	if err != nil {
		return models.TranscriptResult{}, fmt.Errorf("upload audio: %w", err)
	}
	defer e.deleteRemote(ctx, file.Name)

	text, err := e.client.GenerateWithFile(ctx, e.model, BuildPrompt(directive), file)
	if err != nil {
		return models.TranscriptResult{}, fmt.Errorf("transcribe: %w", err)
	}
	text = strings.TrimSpace(text)

	result := models.TranscriptResult{
		Text:           text,
		Language:       directive.TranscriptLanguage(),
		SourceLanguage: directive.Source,
		SourcePath:     asset.Path,
		FileSize:       asset.Size,
		Model:          e.model,
	}

	e.logger.Info(ctx, "Transcription completed in %s: %d characters, output language %s",
		time.Since(start).Round(time.Millisecond), len([]rune(text)), result.Language.Name())
	return result, nil
}

// deleteRemote runs on every path after a successful upload. It ignores
// cancellation of ctx so the remote copy is removed even on abort.
func (e *implEngine) deleteRemote(ctx context.Context, name string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := e.client.DeleteFile(cleanupCtx, name); err != nil {
		e.logger.Warn(ctx, "Failed to delete remote audio %s: %v", name, err)
		return
	}
	e.logger.Debug(ctx, "Deleted remote audio: %s", name)
}

func mimeType(asset models.AudioAsset) string {
	switch asset.Format() {
	case "mp3":
		return "audio/mp3"
	case "wav":
		return "audio/wav"
	case "flac":
		return "audio/flac"
	case "m4a":
		return "audio/mp4"
	case "ogg", "opus":
		return "audio/ogg"
	case "webm":
		return "audio/webm"
	case "aac":
		return "audio/aac"
	}

	if mt, err := mimetype.DetectFile(asset.Path); err == nil {
		return mt.String()
	}
	return "application/octet-stream"
}
