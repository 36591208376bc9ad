package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SummaryStyle selects one of the fixed summary prompt templates.
type SummaryStyle string

const (
	StyleStructured   SummaryStyle = "structured"
	StyleBulletPoints SummaryStyle = "bullet_points"
	StyleParagraph    SummaryStyle = "paragraph"
)

// SummaryStyles returns all styles in menu order.
func SummaryStyles() []SummaryStyle {
	return []SummaryStyle{StyleStructured, StyleBulletPoints, StyleParagraph}
}

// ParseSummaryStyle never fails: anything unrecognized becomes StyleStructured.
func ParseSummaryStyle(s string) SummaryStyle {
	return SummaryStyle(strings.ToLower(strings.TrimSpace(s))).Normalize()
}

// Normalize maps unknown values to StyleStructured.
func (s SummaryStyle) Normalize() SummaryStyle {
	switch s {
	case StyleStructured, StyleBulletPoints, StyleParagraph:
		return s
	default:
		return StyleStructured
	}
}

// Label renders the style for people, e.g. "Bullet Points".
func (s SummaryStyle) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(s.Normalize()), "_", " "))
}

func (s SummaryStyle) String() string {
	return string(s)
}
