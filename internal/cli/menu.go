package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/processor"
	"github.com/nguyentantai21042004/video-insight/internal/source"
)

var errInputClosed = errors.New("input closed")

func (m *implMenu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "🎬 VIDEO INSIGHT - GOOGLE GEMINI")
	fmt.Fprintln(m.out, strings.Repeat("=", 50))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "1. Analyze a video")
		fmt.Fprintln(m.out, "2. API information")
		fmt.Fprintln(m.out, "3. Exit")

		choice, err := m.ask("Choose an option (1-3): ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			if err := m.analyze(ctx); err != nil {
				if errors.Is(err, errInputClosed) {
					return nil
				}
				fmt.Fprintf(m.out, "\n❌ %s\n", logger.FormatError(err))
			}
		case "2":
			m.apiInfo()
		case "3":
			fmt.Fprintln(m.out, "👋 Bye!")
			return nil
		default:
			fmt.Fprintln(m.out, "❌ Invalid option")
		}
	}
}

func (m *implMenu) analyze(ctx context.Context) error {
	url, err := m.ask("\n🔗 Video URL: ")
	if err != nil {
		return err
	}
	if err := source.ValidateURL(url); err != nil {
		return err
	}

	src, err := m.chooseLanguage("🎤 Audio language", "Auto-detect")
	if err != nil {
		return err
	}
	dst, err := m.chooseLanguage("🌐 Output language", "Same as audio")
	if err != nil {
		return err
	}
	style, err := m.chooseStyle()
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\n🚀 Starting analysis...")
	run, err := m.processor.Run(ctx, processor.Request{
		URL:       url,
		Directive: models.LanguageDirective{Source: src, Target: dst},
		Style:     style,
		Progress:  progressPrinter(m.out),
	})
	fmt.Fprintln(m.out)
	if err != nil {
		return err
	}

	PrintResult(m.out, run)
	return nil
}

// chooseLanguage offers option 0 for "unset" and the supported languages
// after it. Empty input picks 0.
func (m *implMenu) chooseLanguage(title, unset string) (models.Language, error) {
	langs := models.SupportedLanguages()

	fmt.Fprintf(m.out, "\n%s:\n", title)
	fmt.Fprintf(m.out, "0. %s\n", unset)
	for i, l := range langs {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, l.Name())
	}

	for {
		answer, err := m.ask(fmt.Sprintf("Choose (0-%d, default 0): ", len(langs)))
		if err != nil {
			return models.LanguageUnset, err
		}
		if answer == "" || answer == "0" {
			return models.LanguageUnset, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(langs) {
			return langs[n-1], nil
		}
		fmt.Fprintln(m.out, "❌ Invalid option")
	}
}

func (m *implMenu) chooseStyle() (models.SummaryStyle, error) {
	styles := models.SummaryStyles()

	fmt.Fprintln(m.out, "\n📋 Summary style:")
	for i, s := range styles {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, s.Label())
	}

	answer, err := m.ask(fmt.Sprintf("Choose (1-%d, default 1): ", len(styles)))
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(styles) {
		return styles[n-1], nil
	}
	return models.StyleStructured, nil
}

func (m *implMenu) apiInfo() {
	fmt.Fprintln(m.out, "\n🤖 GOOGLE GEMINI")
	fmt.Fprintf(m.out, "Transcription model: %s\n", m.cfg.Gemini.TranscribeModel)
	fmt.Fprintf(m.out, "Summary model: %s\n", m.cfg.Gemini.Model)
	fmt.Fprintf(m.out, "Maximum audio upload: %d MB\n", m.cfg.Audio.MaxUploadMB)
	fmt.Fprintf(m.out, "Accepted audio formats: %s\n", strings.Join(m.cfg.Audio.AcceptedFormats, ", "))

	names := make([]string, 0, len(models.SupportedLanguages()))
	for _, l := range models.SupportedLanguages() {
		names = append(names, fmt.Sprintf("%s (%s)", l.Name(), l))
	}
	fmt.Fprintf(m.out, "Languages: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(m.out, "Reports are saved to: %s\n", m.cfg.Paths.Output)
}

func (m *implMenu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// progressPrinter rewrites a single percentage line in place.
func progressPrinter(out io.Writer) source.ProgressFunc {
	last := -1
	return func(f float64) {
		pct := int(f * 100)
		if pct == last {
			return
		}
		last = pct
		fmt.Fprintf(out, "\r📥 Downloading: %3d%%", pct)
	}
}
