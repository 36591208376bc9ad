package source

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

// ProgressFunc receives download progress as a fraction in [0,1]. Values
// never decrease within one download.
type ProgressFunc func(fraction float64)

// Resolver queries the video platform and downloads audio.
type Resolver interface {
	// FetchMetadata fails with models.ErrNotFound on any retrieval error.
	FetchMetadata(ctx context.Context, url string) (models.VideoMetadata, error)
	// AcquireAudio downloads the best audio-only encoding into the transient
	// directory. It fails with models.ErrNoAudioStream when the video has
	// none and models.ErrNotFound on retrieval errors.
	AcquireAudio(ctx context.Context, url string) (models.AudioAsset, error)
	AcquireAudioWithProgress(ctx context.Context, url string, progress ProgressFunc) (models.AudioAsset, error)
}
