package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-insight/internal/config"
	"github.com/nguyentantai21042004/video-insight/internal/gemini/geminitest"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/normalizer"
	"github.com/nguyentantai21042004/video-insight/internal/persister"
	"github.com/nguyentantai21042004/video-insight/internal/source"
	"github.com/nguyentantai21042004/video-insight/internal/speech"
	"github.com/nguyentantai21042004/video-insight/internal/summarizer"
	"github.com/nguyentantai21042004/video-insight/pkg/executor/executortest"
)

const videoInfo = `{
  "id": "abc",
  "title": "Test Video",
  "uploader": "Tester",
  "duration": 95,
  "view_count": 42,
  "description": "about testing",
  "formats": [{"format_id": "251", "ext": "webm", "acodec": "opus", "vcodec": "none", "abr": 160}]
}`

var longTranscript = strings.Repeat("This is a transcript sentence. ", 10)

type harness struct {
	processor Processor
	exec      *executortest.Fake
	gemini    *geminitest.Fake
	tempDir   string
	outDir    string

	downloadSize int64
	ffmpegErr    error
	transcript   string
	analyzeErr   error
	onTranscribe func()
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		tempDir:      t.TempDir(),
		outDir:       t.TempDir(),
		downloadSize: 4096,
		transcript:   longTranscript,
	}

	h.exec = &executortest.Fake{Handler: func(c executortest.Call) executortest.Response {
		switch c.Name {
		case "yt-dlp":
			out := executortest.ArgAfter(c.Args, "-o")
			if out == "" {
				return executortest.Response{Stdout: videoInfo}
			}
			f, err := os.Create(out)
			require.NoError(t, err)
			require.NoError(t, f.Truncate(h.downloadSize))
			require.NoError(t, f.Close())
			return executortest.Response{Lines: []string{"[progress]1/2/NA"}}
		case "ffmpeg":
			if h.ffmpegErr != nil {
				return executortest.Response{Err: h.ffmpegErr}
			}
			require.NoError(t, os.WriteFile(c.Args[len(c.Args)-1], make([]byte, 512), 0o644))
			return executortest.Response{}
		case "ffprobe":
			return executortest.Response{Stdout: `{"streams":[{"codec_type":"audio","codec_name":"mp3","sample_rate":"22050","channels":1}]}`}
		}
		return executortest.Response{Err: errors.New("unexpected command " + c.Name)}
	}}

	h.gemini = &geminitest.Fake{Generate: func(p geminitest.Prompt) (string, error) {
		switch {
		case p.File != nil:
			if h.onTranscribe != nil {
				h.onTranscribe()
			}
			return h.transcript, nil
		case strings.Contains(p.Text, "Text to summarize:"):
			return "A short summary.", nil
		case strings.Contains(p.Text, "Content to analyze:"):
			if h.analyzeErr != nil {
				return "", h.analyzeErr
			}
			return "## Category\nTesting", nil
		}
		return "", errors.New("unexpected prompt")
	}}

	cfg := config.Default()
	cfg.Paths.Temp = h.tempDir
	cfg.Paths.Output = h.outDir
	log := logger.NewNop()

	h.processor = New(Components{
		Resolver:   source.New(cfg.Tools.YtDlp, cfg.Paths.Temp, h.exec, log),
		Normalizer: normalizer.New(cfg, h.exec, log),
		Speech:     speech.New(h.gemini, cfg.Gemini.TranscribeModel, cfg.MaxUploadBytes(), log),
		Summarizer: summarizer.New(h.gemini, cfg.Gemini.Model, log),
		Persister:  persister.New(cfg.Paths.Output, false, log),
	}, log)
	return h
}

func (h *harness) assertTempEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(h.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "transient files left behind")
}

func TestRunDefaults(t *testing.T) {
	h := newHarness(t)

	var progress []float64
	run, err := h.processor.Run(context.Background(), Request{
		URL:      "https://youtu.be/abc",
		Progress: func(f float64) { progress = append(progress, f) },
	})
	require.NoError(t, err)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "Test Video", run.Metadata.Title)
	assert.Equal(t, models.LanguageAuto, run.Transcript.Language)
	assert.Equal(t, models.StyleStructured, run.Summary.Style)
	assert.Equal(t, models.LanguageOriginal, run.Summary.TargetLanguage)
	require.NotNil(t, run.Analysis)
	assert.Equal(t, "Google Gemini", run.Provider)
	assert.Equal(t, []float64{0.5, 1}, progress)

	assert.Equal(t, filepath.Join(h.tempDir, "Test Video.webm"), run.Assets.Original)
	assert.Equal(t, filepath.Join(h.tempDir, "Test Video_gemini_optimized.mp3"), run.Assets.Converted)
	assert.Equal(t, []string{run.Assets.Converted}, h.gemini.Uploads())
	assert.Len(t, h.gemini.Deleted(), 1)

	assert.FileExists(t, run.Outputs.Transcript)
	assert.FileExists(t, run.Outputs.Summary)
	assert.FileExists(t, run.Outputs.Report)
	assert.Equal(t, h.outDir, filepath.Dir(run.Outputs.Report))

	h.assertTempEmpty(t)
}

func TestRunPropagatesLanguage(t *testing.T) {
	h := newHarness(t)

	run, err := h.processor.Run(context.Background(), Request{
		URL:       "https://www.youtube.com/watch?v=abc",
		Directive: models.LanguageDirective{Source: models.LanguageEnglish, Target: models.LanguageSpanish},
		Style:     models.StyleParagraph,
	})
	require.NoError(t, err)

	assert.Equal(t, models.LanguageSpanish, run.Transcript.Language)
	assert.Equal(t, models.LanguageSpanish, run.Summary.TargetLanguage)
	require.NotNil(t, run.Analysis)
	assert.Equal(t, models.LanguageSpanish, run.Analysis.TargetLanguage)
	assert.True(t, strings.HasSuffix(run.Outputs.Report, "_es_report.md"))

	for _, p := range h.gemini.Prompts() {
		assert.Contains(t, p.Text, "Spanish")
	}
}

func TestRunRejectsInvalidURL(t *testing.T) {
	h := newHarness(t)

	_, err := h.processor.Run(context.Background(), Request{URL: "https://vimeo.com/123"})
	require.ErrorIs(t, err, models.ErrInvalidInput)

	stage, ok := models.FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, models.StageValidate, stage)
	assert.Empty(t, h.exec.Calls())
}

func TestRunSummarizeFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.transcript = "too short to summarize"

	run, err := h.processor.Run(context.Background(), Request{URL: "https://youtu.be/abc"})
	assert.Nil(t, run)
	require.ErrorIs(t, err, models.ErrTextTooShort)

	stage, _ := models.FailedStage(err)
	assert.Equal(t, models.StageSummarize, stage)

	entries, err := os.ReadDir(h.outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	h.assertTempEmpty(t)
}

func TestRunToleratesAnalyzeFailure(t *testing.T) {
	h := newHarness(t)
	h.analyzeErr = models.ErrBackend

	run, err := h.processor.Run(context.Background(), Request{URL: "https://youtu.be/abc"})
	require.NoError(t, err)
	assert.Nil(t, run.Analysis)
	assert.NotEmpty(t, run.Summary.Summary)
	assert.FileExists(t, run.Outputs.Report)
}

func TestRunTooLargeAfterFailedOptimization(t *testing.T) {
	h := newHarness(t)
	h.downloadSize = 21 << 20
	h.ffmpegErr = errors.New("encoder missing")

	_, err := h.processor.Run(context.Background(), Request{URL: "https://youtu.be/abc"})
	require.ErrorIs(t, err, models.ErrTooLarge)
	assert.Contains(t, err.Error(), "never optimized")

	stage, _ := models.FailedStage(err)
	assert.Equal(t, models.StageTranscribe, stage)
	assert.Empty(t, h.gemini.Uploads())
	h.assertTempEmpty(t)
}

func TestRunMetadataFailure(t *testing.T) {
	h := newHarness(t)
	h.exec.Handler = func(executortest.Call) executortest.Response {
		return executortest.Response{Err: errors.New("Video unavailable")}
	}

	_, err := h.processor.Run(context.Background(), Request{URL: "https://youtu.be/gone"})
	require.ErrorIs(t, err, models.ErrNotFound)

	stage, _ := models.FailedStage(err)
	assert.Equal(t, models.StageMetadata, stage)
}

func TestRunIsExclusive(t *testing.T) {
	h := newHarness(t)

	started := make(chan struct{})
	proceed := make(chan struct{})
	h.onTranscribe = func() {
		close(started)
		<-proceed
	}

	done := make(chan error, 1)
	go func() {
		_, err := h.processor.Run(context.Background(), Request{URL: "https://youtu.be/abc"})
		done <- err
	}()

	<-started
	_, err := h.processor.Run(context.Background(), Request{URL: "https://youtu.be/abc"})
	assert.ErrorIs(t, err, models.ErrBusy)

	close(proceed)
	require.NoError(t, <-done)
}
