package normalizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/pkg/fsutil"
)

const optimizedSuffix = "_gemini_optimized"

// Optimize returns asset unchanged when it is already in an accepted
// container and under the safe size. Otherwise it transcodes to a small mono
// MP3. A failed transcode is not an error here.
func (n *implNormalizer) Optimize(ctx context.Context, asset models.AudioAsset) (models.AudioAsset, error) {
	stat, err := os.Stat(asset.Path)
	if err != nil {
		return models.AudioAsset{}, fmt.Errorf("%w: input %s: %v", models.ErrConversionFailed, asset.Path, err)
	}
	asset.Size = stat.Size()

	container := detectContainer(asset.Path)
	n.logger.Info(ctx, "Optimizing audio: %s (%s, %.1f MB)", filepath.Base(asset.Path), container, asset.SizeMB())

	if n.profile.accepted[container] && asset.Size <= n.profile.safeSize {
		n.logger.Info(ctx, "Audio already within limits, skipping conversion")
		return asset, nil
	}

	outPath := filepath.Join(n.tempDir, asset.Stem()+optimizedSuffix+".mp3")
	args := []string{
		"-i", asset.Path,
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", n.profile.bitrate,
		"-ac", n.profile.channels,
		"-ar", n.profile.sampleRate,
		"-loglevel", "error",
		"-y",
		outPath,
	}

	optimized, err := n.run(ctx, args, outPath)
	if err != nil {
		n.logger.Warn(ctx, "Optimization failed, using original audio: %v", err)
		asset.Degraded = true
		return asset, nil
	}

	if asset.Size > 0 {
		reduction := float64(asset.Size-optimized.Size) / float64(asset.Size) * 100
		n.logger.Info(ctx, "Optimization completed: %.1f MB (%.1f%% smaller)", optimized.SizeMB(), reduction)
	}
	return optimized, nil
}

// ConvertToWAV produces 16-bit PCM mono WAV at sampleRate.
func (n *implNormalizer) ConvertToWAV(ctx context.Context, asset models.AudioAsset, sampleRate int) (models.AudioAsset, error) {
	if sampleRate <= 0 {
		return models.AudioAsset{}, fmt.Errorf("%w: sample rate %d", models.ErrInvalidInput, sampleRate)
	}
	if _, err := os.Stat(asset.Path); err != nil {
		return models.AudioAsset{}, fmt.Errorf("%w: input %s: %v", models.ErrConversionFailed, asset.Path, err)
	}

	outPath := n.convertedPath(asset, FormatWAV)
	n.logger.Info(ctx, "Converting to WAV (%d Hz): %s", sampleRate, filepath.Base(asset.Path))

	args := []string{
		"-i", asset.Path,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", strconv.Itoa(sampleRate),
		"-loglevel", "error",
		"-y",
		outPath,
	}
	return n.run(ctx, args, outPath)
}

// Convert re-encodes asset into format.
func (n *implNormalizer) Convert(ctx context.Context, asset models.AudioAsset, format Format) (models.AudioAsset, error) {
	var codec []string
	switch format {
	case FormatMP3:
		codec = []string{"-acodec", "libmp3lame", "-b:a", "128k"}
	case FormatWAV:
		codec = []string{"-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1"}
	case FormatFLAC:
		codec = []string{"-acodec", "flac"}
	default:
		return models.AudioAsset{}, fmt.Errorf("%w: unsupported format %q", models.ErrInvalidInput, format)
	}
	if _, err := os.Stat(asset.Path); err != nil {
		return models.AudioAsset{}, fmt.Errorf("%w: input %s: %v", models.ErrConversionFailed, asset.Path, err)
	}

	outPath := n.convertedPath(asset, format)
	n.logger.Info(ctx, "Converting to %s: %s", strings.ToUpper(string(format)), filepath.Base(asset.Path))

	args := append([]string{"-i", asset.Path, "-vn"}, codec...)
	args = append(args, "-loglevel", "error", "-y", outPath)
	return n.run(ctx, args, outPath)
}

func (n *implNormalizer) convertedPath(asset models.AudioAsset, format Format) string {
	return filepath.Join(n.tempDir, asset.Stem()+"_converted."+string(format))
}

// run executes ffmpeg and checks that outPath was produced. A partial
// output is removed on failure.
func (n *implNormalizer) run(ctx context.Context, args []string, outPath string) (models.AudioAsset, error) {
	if _, err := n.executor.Execute(ctx, n.ffmpeg, args...); err != nil {
		_ = fsutil.RemoveFile(outPath)
		return models.AudioAsset{}, fmt.Errorf("%w: ffmpeg: %v", models.ErrConversionFailed, err)
	}

	stat, err := os.Stat(outPath)
	if err != nil {
		return models.AudioAsset{}, fmt.Errorf("%w: output not created: %v", models.ErrConversionFailed, err)
	}

	return models.AudioAsset{
		Path: outPath,
		Size: stat.Size(),
	}, nil
}

// detectContainer sniffs the file content and falls back to the extension
// when the content is not recognised as audio.
func detectContainer(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	mt, err := mimetype.DetectFile(path)
	if err != nil || !strings.HasPrefix(mt.String(), "audio/") {
		return ext
	}
	if detected := strings.TrimPrefix(mt.Extension(), "."); detected != "" {
		return detected
	}
	return ext
}
