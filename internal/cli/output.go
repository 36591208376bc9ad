package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

const previewChars = 500

// PrintResult shows saved files, a summary preview and statistics.
func PrintResult(out io.Writer, run *models.PipelineRun) {
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "✅ ANALYSIS COMPLETED")
	if run.Directive.Translates() {
		fmt.Fprintf(out, "🌐 Content generated in: %s\n", run.Directive.Target.Name())
	}
	fmt.Fprintln(out, strings.Repeat("=", 60))

	fmt.Fprintf(out, "\n📺 %s\n", run.Metadata.Title)
	fmt.Fprintf(out, "👤 %s  ⏱️ %s  👁️ %s\n", run.Metadata.Author, run.Metadata.DurationFormatted, models.FormatCount(run.Metadata.Views))

	fmt.Fprintln(out, "\n📁 Files:")
	for _, f := range []struct{ label, path string }{
		{"Transcript", run.Outputs.Transcript},
		{"Summary", run.Outputs.Summary},
		{"Report", run.Outputs.Report},
		{"Word", run.Outputs.Docx},
	} {
		if f.path != "" {
			fmt.Fprintf(out, "   %s: %s\n", f.label, f.path)
		}
	}

	fmt.Fprintln(out, "\n📋 Summary preview:")
	fmt.Fprintln(out, RenderMarkdown(preview(run.Summary.Summary, previewChars)))

	fmt.Fprintln(out, "📊 Statistics:")
	fmt.Fprintf(out, "   Provider: %s\n", run.Provider)
	fmt.Fprintf(out, "   Output language: %s\n", run.Transcript.Language.Name())
	fmt.Fprintf(out, "   Transcript: %s characters\n", models.FormatCount(int64(utf8.RuneCountInString(run.Transcript.Text))))
	fmt.Fprintf(out, "   Summary: %s characters\n", models.FormatCount(int64(run.Summary.SummaryLength)))
	fmt.Fprintf(out, "   Compression ratio: %.1f%%\n", run.Summary.CompressionRatio*100)
	if run.Analysis == nil {
		fmt.Fprintln(out, "   Analysis: unavailable")
	}
}

func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// RenderMarkdown renders markdown for the terminal, returning the input
// unchanged when rendering fails.
func RenderMarkdown(content string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// terminalWidth gets terminal width with fallback
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 10 {
		return 80
	}
	return width - 4
}

// PromptAPIKey asks for the Gemini key without echoing it.
func PromptAPIKey(in *os.File, out io.Writer) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal")
	}

	fmt.Fprint(out, "🔑 Google API key: ")
	key, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read API key: %w", err)
	}
	return strings.TrimSpace(string(key)), nil
}
