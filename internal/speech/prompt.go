package speech

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

const verbatimPrompt = `Transcribe this audio completely and accurately in its original language.

Instructions:
- Keep the original language of the audio
- Include all speech literally
- Use natural punctuation
- Do not add comments or interpretations

Return only the transcribed text:`

// BuildPrompt returns the transcription instruction for directive. An unset
// target yields a verbatim transcription; a source language is only
// mentioned when a target is set.
func BuildPrompt(directive models.LanguageDirective) string {
	if !directive.Target.IsSet() {
		return verbatimPrompt
	}

	target := directive.Target.Name()

	var lead string
	if directive.Source.IsSet() {
		lead = fmt.Sprintf("The audio is in %s and must be translated into %s.", directive.Source.Name(), target)
	} else {
		lead = fmt.Sprintf("Transcribe and translate the content into %s.", target)
	}

	var b strings.Builder
	b.WriteString(lead)
	b.WriteString("\n\nImportant instructions:\n")
	b.WriteString("1. First, transcribe completely what is being said\n")
	fmt.Fprintf(&b, "2. If the audio is not in %s, translate the content faithfully and naturally\n", target)
	b.WriteString("3. Keep the original meaning and context\n")
	fmt.Fprintf(&b, "4. Use natural language in %s\n", target)
	b.WriteString("5. Preserve proper nouns and technical terms where appropriate\n")
	b.WriteString("6. Do not add comments or interpretations of your own\n")
	fmt.Fprintf(&b, "\nReturn only the final text in %s:", target)
	return b.String()
}
