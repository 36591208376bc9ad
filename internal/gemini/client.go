package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-insight/internal/models"
	"google.golang.org/genai"
)

// UploadFile uploads a local file and waits until the provider marks it
// usable.
func (c *implClient) UploadFile(ctx context.Context, path, mimeType, displayName string) (File, error) {
	f, err := c.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return File{}, fmt.Errorf("%w: upload file: %v", models.ErrBackend, err)
	}
	c.logger.Debug(ctx, "Uploaded %s as %s (%s)", path, f.Name, f.State)

	for f.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			c.deleteQuietly(f.Name)
			return File{}, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		f, err = c.client.Files.Get(ctx, f.Name, nil)
		if err != nil {
			return File{}, fmt.Errorf("%w: get file: %v", models.ErrBackend, err)
		}
	}

	if f.State == genai.FileStateFailed {
		c.deleteQuietly(f.Name)
		return File{}, fmt.Errorf("%w: provider could not process %s", models.ErrBackend, path)
	}

	return File{Name: f.Name, URI: f.URI, MIMEType: f.MIMEType}, nil
}

// DeleteFile removes the provider-side copy.
func (c *implClient) DeleteFile(ctx context.Context, name string) error {
	if _, err := c.client.Files.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("%w: delete file: %v", models.ErrBackend, err)
	}
	return nil
}

// GenerateText sends a text-only prompt.
func (c *implClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return c.generate(ctx, model, genai.Text(prompt))
}

// GenerateWithFile sends a prompt together with an uploaded file.
func (c *implClient) GenerateWithFile(ctx context.Context, model, prompt string, file File) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	}
	return c.generate(ctx, model, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)})
}

func (c *implClient) generate(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: generate content: %v", models.ErrBackend, err)
	}

	text := responseText(result)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response from Gemini", models.ErrBackend)
	}
	return text, nil
}

// deleteQuietly runs with its own context so cleanup survives cancellation.
func (c *implClient) deleteQuietly(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.DeleteFile(ctx, name); err != nil {
		c.logger.Warn(ctx, "Failed to delete remote file %s: %v", name, err)
	}
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
