package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is an ISO 639-1 code from the supported set, or one of the
// sentinels below.
type Language string

const (
	LanguageUnset      Language = ""
	LanguagePortuguese Language = "pt"
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"

	// LanguageAuto marks a transcript produced without a target language.
	LanguageAuto Language = "auto"
	// LanguageOriginal marks derived text kept in the transcript's language.
	LanguageOriginal Language = "original"
)

// SupportedLanguages returns the selectable languages in menu order.
func SupportedLanguages() []Language {
	return []Language{LanguagePortuguese, LanguageEnglish, LanguageSpanish, LanguageFrench}
}

// ParseLanguage accepts a code such as "pt", "pt-BR" or "EN". Empty input,
// "auto" and "original" yield LanguageUnset.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "auto", "original", "same":
		return LanguageUnset, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return LanguageUnset, fmt.Errorf("%w: unknown language %q", ErrInvalidInput, s)
	}
	base, _ := tag.Base()

	l := Language(base.String())
	if !l.Supported() {
		return LanguageUnset, fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, s)
	}
	return l, nil
}

// Supported reports whether l is one of the four selectable languages.
func (l Language) Supported() bool {
	switch l {
	case LanguagePortuguese, LanguageEnglish, LanguageSpanish, LanguageFrench:
		return true
	default:
		return false
	}
}

// IsSet reports whether a concrete language was requested.
func (l Language) IsSet() bool {
	return l.Supported()
}

// Name returns the English display name used inside prompts and reports.
func (l Language) Name() string {
	switch l {
	case LanguagePortuguese:
		return "Portuguese"
	case LanguageEnglish:
		return "English"
	case LanguageSpanish:
		return "Spanish"
	case LanguageFrench:
		return "French"
	case LanguageAuto:
		return "Auto-detected"
	case LanguageOriginal, LanguageUnset:
		return "Original"
	default:
		return string(l)
	}
}

// OrOriginal returns l when set, LanguageOriginal otherwise.
func (l Language) OrOriginal() Language {
	if l.IsSet() {
		return l
	}
	return LanguageOriginal
}

func (l Language) String() string {
	return string(l)
}

// LanguageDirective carries the optional source and target languages of a run.
type LanguageDirective struct {
	Source Language
	Target Language
}

// NewLanguageDirective parses both codes.
func NewLanguageDirective(source, target string) (LanguageDirective, error) {
	src, err := ParseLanguage(source)
	if err != nil {
		return LanguageDirective{}, fmt.Errorf("source language: %w", err)
	}
	dst, err := ParseLanguage(target)
	if err != nil {
		return LanguageDirective{}, fmt.Errorf("target language: %w", err)
	}
	return LanguageDirective{Source: src, Target: dst}, nil
}

// Translates reports whether a translation instruction will be issued.
func (d LanguageDirective) Translates() bool {
	return d.Target.IsSet()
}

// TranscriptLanguage is the language declared on the transcript: the target
// when one was requested, LanguageAuto otherwise.
func (d LanguageDirective) TranscriptLanguage() Language {
	if d.Target.IsSet() {
		return d.Target
	}
	return LanguageAuto
}
