package normalizer

import (
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/config"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/pkg/executor"
)

// profile is the target the lenient path optimizes for.
type profile struct {
	accepted   map[string]bool
	safeSize   int64
	sampleRate string
	channels   string
	bitrate    string
}

type implNormalizer struct {
	ffmpeg   string
	ffprobe  string
	tempDir  string
	profile  profile
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Normalizer writing into cfg.Paths.Temp. cfg must already be
// validated.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Normalizer {
	accepted := make(map[string]bool, len(cfg.Audio.AcceptedFormats))
	for _, f := range cfg.Audio.AcceptedFormats {
		accepted[strings.ToLower(strings.TrimPrefix(f, "."))] = true
	}

	return &implNormalizer{
		ffmpeg:  cfg.Tools.FFmpeg,
		ffprobe: cfg.Tools.FFprobe,
		tempDir: cfg.Paths.Temp,
		profile: profile{
			accepted:   accepted,
			safeSize:   cfg.SafeSizeBytes(),
			sampleRate: strconv.Itoa(cfg.Audio.SampleRate),
			channels:   strconv.Itoa(cfg.Audio.Channels),
			bitrate:    cfg.Audio.Bitrate,
		},
		executor: exec,
		logger:   log,
	}
}
