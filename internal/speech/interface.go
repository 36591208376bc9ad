package speech

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

// Engine transcribes audio, translating it when the directive asks for a
// target language.
type Engine interface {
	// Transcribe fails with models.ErrTooLarge before touching the network
	// when the asset exceeds the upload ceiling, and with models.ErrBackend
	// on any provider failure. The provider-side copy of the audio is
	// always deleted before it returns.
	Transcribe(ctx context.Context, asset models.AudioAsset, directive models.LanguageDirective) (models.TranscriptResult, error)
}
