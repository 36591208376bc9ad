package gemini

import "context"

// File is a provider-side copy of an uploaded local file.
type File struct {
	Name     string
	URI      string
	MIMEType string
}

// Client exposes the two backend capabilities the pipeline needs:
// generating text from a prompt, optionally grounded on an uploaded file.
// Every error it returns wraps models.ErrBackend.
type Client interface {
	UploadFile(ctx context.Context, path, mimeType, displayName string) (File, error)
	DeleteFile(ctx context.Context, name string) error
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	GenerateWithFile(ctx context.Context, model, prompt string, file File) (string, error)
}
