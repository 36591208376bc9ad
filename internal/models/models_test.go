package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"", LanguageUnset, false},
		{"auto", LanguageUnset, false},
		{"pt", LanguagePortuguese, false},
		{"pt-BR", LanguagePortuguese, false},
		{"EN", LanguageEnglish, false},
		{"es-419", LanguageSpanish, false},
		{"fr", LanguageFrench, false},
		{"de", LanguageUnset, true},
		{"not a language", LanguageUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Portuguese", LanguagePortuguese.Name())
	assert.Equal(t, "English", LanguageEnglish.Name())
	assert.Equal(t, "Spanish", LanguageSpanish.Name())
	assert.Equal(t, "French", LanguageFrench.Name())
	for _, l := range SupportedLanguages() {
		assert.NotEqual(t, string(l), l.Name(), "missing display name for %s", l)
	}
}

func TestLanguageDirective(t *testing.T) {
	d, err := NewLanguageDirective("", "")
	require.NoError(t, err)
	assert.False(t, d.Translates())
	assert.Equal(t, LanguageAuto, d.TranscriptLanguage())
	assert.Equal(t, LanguageOriginal, d.Target.OrOriginal())

	d, err = NewLanguageDirective("en", "es")
	require.NoError(t, err)
	assert.True(t, d.Translates())
	assert.Equal(t, LanguageSpanish, d.TranscriptLanguage())
	assert.Equal(t, LanguageSpanish, d.Target.OrOriginal())

	_, err = NewLanguageDirective("xx-invalid-tag-!", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseSummaryStyle(t *testing.T) {
	assert.Equal(t, StyleStructured, ParseSummaryStyle(""))
	assert.Equal(t, StyleStructured, ParseSummaryStyle("haiku"))
	assert.Equal(t, StyleBulletPoints, ParseSummaryStyle("bullet_points"))
	assert.Equal(t, StyleParagraph, ParseSummaryStyle(" Paragraph "))
	assert.Equal(t, "Bullet Points", StyleBulletPoints.Label())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "01:05", FormatDuration(65))
	assert.Equal(t, "01:00:01", FormatDuration(3601))
}

func TestTruncateDescription(t *testing.T) {
	short := "short"
	assert.Equal(t, short, TruncateDescription(short))

	long := make([]rune, 250)
	for i := range long {
		long[i] = 'é'
	}
	got := []rune(TruncateDescription(string(long)))
	assert.Len(t, got, 203)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "12,345,678", FormatCount(12345678))
	assert.Equal(t, "-1,234", FormatCount(-1234))
}

func TestTooLargeError(t *testing.T) {
	var err error = &TooLargeError{Size: 25 << 20, Limit: 20 << 20}
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Contains(t, err.Error(), "even after optimization")

	err = &TooLargeError{Size: 25 << 20, Limit: 20 << 20, Degraded: true}
	assert.Contains(t, err.Error(), "never optimized")
}

func TestStageError(t *testing.T) {
	err := fmt.Errorf("run: %w", &StageError{Stage: StageSummarize, Err: ErrTextTooShort})
	assert.ErrorIs(t, err, ErrTextTooShort)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StageSummarize, stage)

	_, ok = FailedStage(errors.New("plain"))
	assert.False(t, ok)
}

func TestAudioAssetNames(t *testing.T) {
	a := AudioAsset{Path: "/tmp/media/My Talk.WEBM", Size: 3 << 20}
	assert.Equal(t, "webm", a.Format())
	assert.Equal(t, "My Talk", a.Stem())
	assert.InDelta(t, 3.0, a.SizeMB(), 0.001)
}
