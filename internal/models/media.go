package models

import (
	"path/filepath"
	"strings"
)

// VideoMetadata describes a source video. It is never modified after fetch.
type VideoMetadata struct {
	ID                string
	URL               string
	Title             string
	Author            string
	Duration          int
	DurationFormatted string
	Views             int64
	Description       string
}

// AudioAsset references an audio file in the transient directory. Every
// asset created during a run is deleted when the run ends.
type AudioAsset struct {
	Path string
	Size int64
	// Degraded is set when optimization failed and the original asset was
	// handed back unchanged.
	Degraded bool
}

// Format returns the lower-case extension without the leading dot.
func (a AudioAsset) Format() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(a.Path)), ".")
}

// Stem returns the file name without directory and extension.
func (a AudioAsset) Stem() string {
	base := filepath.Base(a.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SizeMB returns the size in mebibytes.
func (a AudioAsset) SizeMB() float64 {
	return float64(a.Size) / 1024 / 1024
}
