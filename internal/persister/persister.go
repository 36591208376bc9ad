package persister

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/pkg/fsutil"
)

const timestampLayout = "20060102_150405"

var artifactKinds = []string{"_transcript.txt", "_summary.md", "_report.md", "_report.docx"}

// Persist writes the transcript, summary and report files.
func (p *implPersister) Persist(ctx context.Context, run *models.PipelineRun) Paths {
	var paths Paths
	if run == nil {
		return paths
	}

	if err := fsutil.EnsureDirs(p.outputDir); err != nil {
		p.logger.Error(ctx, "Cannot create output directory: %v", err)
		return paths
	}

	base := uniqueBase(filepath.Join(p.outputDir, BaseName(run)))

	paths.Transcript = p.write(ctx, base+"_transcript.txt", renderTranscript(run))
	paths.Summary = p.write(ctx, base+"_summary.md", renderSummary(run))

	report := renderReport(run)
	paths.Report = p.write(ctx, base+"_report.md", report)

	if p.docx {
		docxPath := base + "_report.docx"
		if err := writeReportDocx(run, docxPath); err != nil {
			p.logger.Error(ctx, "Failed to write %s: %v", docxPath, err)
		} else {
			paths.Docx = docxPath
		}
	}

	p.logger.Info(ctx, "Results saved with prefix: %s", filepath.Base(base))
	return paths
}

// BaseName is "<sanitized title>_<timestamp>[_<target language>]".
func BaseName(run *models.PipelineRun) string {
	name := fsutil.SanitizeFilename(run.Metadata.Title) + "_" + run.ProcessedAt.Format(timestampLayout)
	if run.Directive.Translates() {
		name += "_" + run.Directive.Target.String()
	}
	return name
}

// uniqueBase appends _2, _3, ... when a run with the same name already
// left artifacts in the directory, so earlier results are never overwritten.
func uniqueBase(base string) string {
	candidate := base
	for n := 2; taken(candidate); n++ {
		candidate = fmt.Sprintf("%s_%d", base, n)
	}
	return candidate
}

func taken(base string) bool {
	for _, kind := range artifactKinds {
		if _, err := os.Stat(base + kind); err == nil {
			return true
		}
	}
	return false
}

func (p *implPersister) write(ctx context.Context, path, content string) string {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		p.logger.Error(ctx, "Failed to write %s: %v", path, err)
		return ""
	}
	p.logger.Debug(ctx, "Wrote %s", path)
	return path
}

func renderTranscript(run *models.PipelineRun) string {
	t := run.Transcript

	var b strings.Builder
	b.WriteString("=== AUDIO TRANSCRIPT - GEMINI ===\n\n")
	fmt.Fprintf(&b, "File: %s\n", t.SourcePath)
	fmt.Fprintf(&b, "Size: %.1f MB\n", float64(t.FileSize)/1024/1024)
	fmt.Fprintf(&b, "Output language: %s\n", t.Language.Name())
	if t.SourceLanguage.IsSet() {
		fmt.Fprintf(&b, "Source language: %s\n", t.SourceLanguage.Name())
	}
	fmt.Fprintf(&b, "Model: %s\n", t.Model)
	b.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")
	b.WriteString(t.Text)
	return b.String()
}

func renderSummary(run *models.PipelineRun) string {
	s := run.Summary

	var b strings.Builder
	b.WriteString("# 📋 AI SUMMARY - GOOGLE GEMINI\n\n")
	fmt.Fprintf(&b, "**Model:** %s\n", s.Model)
	fmt.Fprintf(&b, "**Summary style:** %s\n", s.Style.Label())
	fmt.Fprintf(&b, "**Summary language:** %s\n", s.TargetLanguage.Name())
	fmt.Fprintf(&b, "**Compression ratio:** %.1f%%\n", s.CompressionRatio*100)
	fmt.Fprintf(&b, "**Original length:** %d characters\n", s.OriginalLength)
	fmt.Fprintf(&b, "**Summary length:** %d characters\n\n", s.SummaryLength)
	b.WriteString("---\n\n")
	b.WriteString(s.Summary)

	if run.Analysis != nil {
		b.WriteString("\n\n---\n\n")
		b.WriteString("# 🔍 DETAILED ANALYSIS\n\n")
		b.WriteString(run.Analysis.Analysis)
	}
	return b.String()
}

