// Package geminitest provides an in-memory gemini.Client for tests.
package geminitest

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/video-insight/internal/gemini"
)

// Prompt is one recorded generation request.
type Prompt struct {
	Model string
	Text  string
	File  *gemini.File
}

// Fake records uploads, prompts and deletes. Generate answers every
// generation call; UploadErr fails uploads.
type Fake struct {
	Generate  func(p Prompt) (string, error)
	UploadErr error

	mu       sync.Mutex
	uploads  []string
	prompts  []Prompt
	deleted  []string
	sequence int
}

var _ gemini.Client = (*Fake)(nil)

func (f *Fake) UploadFile(ctx context.Context, path, mimeType, displayName string) (gemini.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.uploads = append(f.uploads, path)
	if f.UploadErr != nil {
		return gemini.File{}, f.UploadErr
	}
	f.sequence++
	name := fmt.Sprintf("files/fake-%d", f.sequence)
	return gemini.File{Name: name, URI: "https://example.invalid/" + name, MIMEType: mimeType}, nil
}

func (f *Fake) DeleteFile(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, name)
	return nil
}

func (f *Fake) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return f.generate(Prompt{Model: model, Text: prompt})
}

func (f *Fake) GenerateWithFile(ctx context.Context, model, prompt string, file gemini.File) (string, error) {
	return f.generate(Prompt{Model: model, Text: prompt, File: &file})
}

func (f *Fake) generate(p Prompt) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, p)
	f.mu.Unlock()

	if f.Generate == nil {
		return "ok", nil
	}
	return f.Generate(p)
}

// Uploads returns the local paths passed to UploadFile.
func (f *Fake) Uploads() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...)
}

// Prompts returns every generation request in order.
func (f *Fake) Prompts() []Prompt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Prompt(nil), f.prompts...)
}

// Deleted returns the remote file names passed to DeleteFile.
func (f *Fake) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}
