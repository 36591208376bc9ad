package normalizer

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

// Format is a target container for strict conversion.
type Format string

const (
	FormatMP3  Format = "mp3"
	FormatWAV  Format = "wav"
	FormatFLAC Format = "flac"
)

// AudioInfo is what ffprobe reports about the first audio stream.
type AudioInfo struct {
	Duration   float64
	SampleRate int
	Channels   int
	Codec      string
	Bitrate    int64
}

// Normalizer turns downloaded audio into something the speech backend accepts.
//
// Optimize is lenient: a failed transcode logs and hands back the original
// asset marked Degraded. ConvertToWAV and Convert are strict and return an
// error wrapping models.ErrConversionFailed.
type Normalizer interface {
	Optimize(ctx context.Context, asset models.AudioAsset) (models.AudioAsset, error)
	ConvertToWAV(ctx context.Context, asset models.AudioAsset, sampleRate int) (models.AudioAsset, error)
	Convert(ctx context.Context, asset models.AudioAsset, format Format) (models.AudioAsset, error)
	Probe(ctx context.Context, asset models.AudioAsset) (*AudioInfo, error)
}
