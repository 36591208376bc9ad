package models

import "time"

// TranscriptResult is produced once per run by the speech engine.
type TranscriptResult struct {
	Text           string
	Language       Language
	SourceLanguage Language
	SourcePath     string
	FileSize       int64
	Model          string
}

// SummaryResult is the summarizer output. Lengths are character counts.
type SummaryResult struct {
	Summary          string
	Style            SummaryStyle
	OriginalLength   int
	SummaryLength    int
	CompressionRatio float64
	TargetLanguage   Language
	Model            string
}

// AnalysisResult holds the six-section content analysis as prose.
type AnalysisResult struct {
	Analysis       string
	TargetLanguage Language
	Model          string
}

// RunAssets lists the transient files a run touched.
type RunAssets struct {
	Original  string
	Converted string
}

// OutputFiles lists the persisted artifacts of a run. Empty fields were
// not written.
type OutputFiles struct {
	Transcript string
	Summary    string
	Report     string
	Docx       string
}

// PipelineRun aggregates everything one run produced. Analysis is nil when
// the analysis call failed.
type PipelineRun struct {
	ID          string
	Metadata    VideoMetadata
	Transcript  TranscriptResult
	Summary     SummaryResult
	Analysis    *AnalysisResult
	Directive   LanguageDirective
	ProcessedAt time.Time
	Provider    string
	Assets      RunAssets
	Outputs     OutputFiles
}
