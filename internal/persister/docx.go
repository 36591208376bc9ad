package persister

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

const (
	docFont        = "Times New Roman"
	titleSize      = 16
	sectionSize    = 14
	subheadingSize = 12
	bodySize       = 11
)

var (
	reHeadingMark = regexp.MustCompile(`^#{1,6}\s+`)
	reBulletMark  = regexp.MustCompile(`^[-*•]\s+`)
)

type paragraphAdder interface {
	AddParagraph(text string) *docx.Paragraph
}

// writeReportDocx exports the report as a Word document. Fields become a
// bold label followed by the plain value, and the transcript is never
// parsed as markdown.
func writeReportDocx(run *models.PipelineRun, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), reportTitle, titleSize, true)

	for _, sec := range reportSections(run) {
		addRun(doc.AddParagraph(""), sec.heading, sectionSize, true)

		for _, f := range sec.fields {
			p := doc.AddParagraph("")
			addRun(p, f.label+": ", bodySize, true)
			addRun(p, f.value, bodySize, false)
		}

		switch sec.kind {
		case bodyMarkdown:
			addMarkdown(doc, sec.body)
		case bodyVerbatim:
			addVerbatim(doc, sec.body)
		}
	}

	return doc.SaveTo(path)
}

// addMarkdown handles the subset of markdown the model writes. Numbered
// items keep their number as text.
func addMarkdown(doc paragraphAdder, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "---" {
			continue
		}

		p := doc.AddParagraph("")
		if loc := reHeadingMark.FindStringIndex(line); loc != nil {
			addRun(p, stripInline(strings.ReplaceAll(line[loc[1]:], "**", "")), subheadingSize, true)
			continue
		}
		if loc := reBulletMark.FindStringIndex(line); loc != nil {
			line = "• " + line[loc[1]:]
		}
		addInline(p, line)
	}
}

func addVerbatim(doc paragraphAdder, text string) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		addRun(doc.AddParagraph(""), line, bodySize, false)
	}
}

// addInline toggles bold at every ** marker.
func addInline(p *docx.Paragraph, text string) {
	bold := false
	for {
		before, after, found := strings.Cut(text, "**")
		if before != "" {
			addRun(p, stripInline(before), bodySize, bold)
		}
		if !found {
			return
		}
		bold = !bold
		text = after
	}
}

func addRun(p *docx.Paragraph, text string, size uint64, bold bool) {
	run := p.AddText(text).Font(docFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func stripInline(s string) string {
	return strings.NewReplacer("__", "", "`", "").Replace(s)
}
