package persister

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

const reportTitle = "🎬 FULL REPORT - GOOGLE GEMINI ANALYSIS"

type bodyKind int

const (
	bodyNone bodyKind = iota
	// bodyMarkdown is model output: headings, bullets and bold spans.
	bodyMarkdown
	// bodyVerbatim is copied as is, line by line.
	bodyVerbatim
)

type field struct {
	label string
	value string
}

type section struct {
	heading string
	fields  []field
	body    string
	kind    bodyKind
}

// reportSections keeps a fixed order: video, languages, technical data,
// analysis, summary, transcript. Both the markdown and docx reports render
// from it.
func reportSections(run *models.PipelineRun) []section {
	m := run.Metadata
	d := run.Directive

	source := "Auto-detected"
	if d.Source.IsSet() {
		source = d.Source.Name()
	}
	target := "Same as audio"
	if d.Target.IsSet() {
		target = d.Target.Name()
	}
	languages := []field{
		{"Audio language", source},
		{"Output language", target},
	}
	if d.Translates() {
		languages = append(languages, field{"✨ Translation applied", "Yes"})
	}

	sections := []section{
		{heading: "📺 Video Information", fields: []field{
			{"Title", m.Title},
			{"Channel", m.Author},
			{"Duration", m.DurationFormatted},
			{"Views", models.FormatCount(m.Views)},
			{"Description", m.Description},
		}},
		{heading: "🌐 Language Settings", fields: languages},
		{heading: "⚙️ Technical Data", fields: []field{
			{"Processed at", run.ProcessedAt.Format("2006-01-02 15:04:05")},
			{"AI provider", run.Provider},
			{"Transcription model", run.Transcript.Model},
			{"Summary model", run.Summary.Model},
			{"Compression ratio", fmt.Sprintf("%.1f%%", run.Summary.CompressionRatio*100)},
		}},
	}

	if run.Analysis != nil {
		sections = append(sections, section{heading: "🔍 Detailed Analysis", body: run.Analysis.Analysis, kind: bodyMarkdown})
	}

	return append(sections,
		section{heading: "📋 Summary", body: run.Summary.Summary, kind: bodyMarkdown},
		section{heading: "📝 Full Transcript", body: run.Transcript.Text, kind: bodyVerbatim},
	)
}

func renderReport(run *models.PipelineRun) string {
	var b strings.Builder
	b.WriteString("# " + reportTitle + "\n\n")

	for _, sec := range reportSections(run) {
		b.WriteString("## " + sec.heading + "\n\n")
		for _, f := range sec.fields {
			fmt.Fprintf(&b, "**%s:** %s\n", f.label, f.value)
		}
		if len(sec.fields) > 0 {
			b.WriteString("\n")
		}
		if sec.kind != bodyNone {
			b.WriteString(sec.body + "\n\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n\n")
}
