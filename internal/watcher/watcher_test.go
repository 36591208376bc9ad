package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
)

func TestParseJob(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Job
		wantErr error
	}{
		{
			name:    "url only",
			content: "https://youtu.be/abc\n",
			want:    Job{URL: "https://youtu.be/abc", Style: models.StyleStructured},
		},
		{
			name: "full directive",
			content: `# weekly talk
https://www.youtube.com/watch?v=xyz

source = en
target=pt-BR
style=bullet_points
`,
			want: Job{
				URL:       "https://www.youtube.com/watch?v=xyz",
				Directive: models.LanguageDirective{Source: models.LanguageEnglish, Target: models.LanguagePortuguese},
				Style:     models.StyleBulletPoints,
			},
		},
		{
			name:    "unknown style falls back",
			content: "https://youtu.be/abc\nstyle=poem",
			want:    Job{URL: "https://youtu.be/abc", Style: models.StyleStructured},
		},
		{
			name:    "empty",
			content: "# nothing here\n\n",
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "unsupported url",
			content: "https://vimeo.com/123",
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "unsupported language",
			content: "https://youtu.be/abc\ntarget=de",
			wantErr: models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJob(tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsJobFile(t *testing.T) {
	assert.True(t, isJobFile("/inbox/talk.url"))
	assert.True(t, isJobFile("TALK.URL"))
	assert.False(t, isJobFile("/inbox/.hidden.url"))
	assert.False(t, isJobFile("/inbox/talk.txt"))
	assert.False(t, isJobFile("/inbox/talk.url.tmp"))
}

func newTestWatcher(t *testing.T, handler EventHandler) (*implWatcher, string) {
	t.Helper()
	dir := t.TempDir()

	w, err := New(dir, handler, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	impl := w.(*implWatcher)
	impl.settle = 50 * time.Millisecond
	return impl, dir
}

func TestHandleFileRemovesJob(t *testing.T) {
	var got []Job
	w, dir := newTestWatcher(t, func(ctx context.Context, job Job) error {
		got = append(got, job)
		return assert.AnError
	})

	good := filepath.Join(dir, "a.url")
	bad := filepath.Join(dir, "b.url")
	require.NoError(t, os.WriteFile(good, []byte("https://youtu.be/abc"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("not a url"), 0o644))

	w.handleFile(context.Background(), good)
	w.handleFile(context.Background(), bad)
	w.handleFile(context.Background(), filepath.Join(dir, "missing.url"))

	require.Len(t, got, 1)
	assert.Equal(t, good, got[0].File)
	assert.NoFileExists(t, good)
	assert.NoFileExists(t, bad)
}

func TestStartProcessesInboxSequentially(t *testing.T) {
	jobs := make(chan Job, 4)
	w, dir := newTestWatcher(t, func(ctx context.Context, job Job) error {
		jobs <- job
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-existing.url"), []byte("https://youtu.be/one"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	select {
	case job := <-jobs:
		assert.Equal(t, "https://youtu.be/one", job.URL)
	case <-time.After(5 * time.Second):
		t.Fatal("existing job not handled")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2-new.url"), []byte("https://youtu.be/two\ntarget=fr"), 0o644))

	select {
	case job := <-jobs:
		assert.Equal(t, "https://youtu.be/two", job.URL)
		assert.Equal(t, models.LanguageFrench, job.Directive.Target)
	case <-time.After(5 * time.Second):
		t.Fatal("new job not handled")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
