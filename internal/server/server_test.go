package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/processor"
)

type fakeProcessor struct {
	run  *models.PipelineRun
	err  error
	reqs []processor.Request
}

func (f *fakeProcessor) Run(ctx context.Context, req processor.Request) (*models.PipelineRun, error) {
	f.reqs = append(f.reqs, req)
	return f.run, f.err
}

func post(t *testing.T, h http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestForm(t *testing.T) {
	h := New("127.0.0.1:0", &fakeProcessor{}, logger.NewNop()).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<form method="post" action="/analyze">`)
	assert.Contains(t, body, `<option value="pt" selected>Portuguese</option>`)
	assert.Contains(t, body, "Bullet Points")
}

func TestHealth(t *testing.T) {
	h := New("127.0.0.1:0", &fakeProcessor{}, logger.NewNop()).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAnalyzeValidation(t *testing.T) {
	tests := map[string]url.Values{
		"missing url":      {},
		"not youtube":      {"url": {"https://vimeo.com/123"}},
		"bad language":     {"url": {"https://youtu.be/abc"}, "target": {"de"}},
		"bad style":        {"url": {"https://youtu.be/abc"}, "style": {"haiku"}},
		"not a url at all": {"url": {"youtube"}},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			fp := &fakeProcessor{}
			rec := post(t, New("", fp, logger.NewNop()).Handler(), values)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `class="error"`)
			assert.Empty(t, fp.reqs)
		})
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	fp := &fakeProcessor{run: &models.PipelineRun{
		Metadata:   models.VideoMetadata{Title: "Gophers <3", Author: "Go Team", Views: 12345},
		Transcript: models.TranscriptResult{Text: "hello world"},
		Summary:    models.SummaryResult{Summary: "a summary", Style: models.StyleParagraph, CompressionRatio: 0.5},
		Analysis:   &models.AnalysisResult{Analysis: "an analysis"},
		Directive:  models.LanguageDirective{Target: models.LanguageSpanish},
	}}

	rec := post(t, New("", fp, logger.NewNop()).Handler(), url.Values{
		"url":    {"https://youtu.be/abc"},
		"source": {"en"},
		"target": {"es"},
		"style":  {"paragraph"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Gophers &lt;3")
	assert.Contains(t, body, "12,345")
	assert.Contains(t, body, "an analysis")
	assert.Contains(t, body, "50.0%")

	require.Len(t, fp.reqs, 1)
	assert.Equal(t, models.LanguageDirective{Source: models.LanguageEnglish, Target: models.LanguageSpanish}, fp.reqs[0].Directive)
	assert.Equal(t, models.StyleParagraph, fp.reqs[0].Style)
}

func TestAnalyzeAcceptsResolverURLShapes(t *testing.T) {
	urls := []string{
		"youtu.be/abc",
		"www.youtube.com/watch?v=abc",
		"https://www.youtube.com/embed/abc",
		"http://youtube.com/v/abc",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			fp := &fakeProcessor{run: &models.PipelineRun{}}
			rec := post(t, New("", fp, logger.NewNop()).Handler(), url.Values{"url": {u}})

			require.Equal(t, http.StatusOK, rec.Code)
			require.Len(t, fp.reqs, 1)
			assert.Equal(t, u, fp.reqs[0].URL)
		})
	}
}

func TestAnalyzeUnsupportedURLMessage(t *testing.T) {
	fp := &fakeProcessor{}
	rec := post(t, New("", fp, logger.NewNop()).Handler(), url.Values{"url": {"https://vimeo.com/123"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported video URL")
	assert.Empty(t, fp.reqs)
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		text   string
	}{
		{models.ErrBusy, http.StatusConflict, "already running"},
		{&models.StageError{Stage: models.StageAcquire, Err: models.ErrNoAudioStream}, http.StatusNotFound, "acquire step failed"},
		{&models.StageError{Stage: models.StageTranscribe, Err: &models.TooLargeError{Size: 30 << 20, Limit: 20 << 20}}, http.StatusUnprocessableEntity, "even after optimization"},
		{&models.StageError{Stage: models.StageSummarize, Err: models.ErrBackend}, http.StatusBadGateway, "summarize step failed"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			fp := &fakeProcessor{err: tt.err}
			rec := post(t, New("", fp, logger.NewNop()).Handler(), url.Values{"url": {"https://youtu.be/abc"}})

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.text)
		})
	}
}
