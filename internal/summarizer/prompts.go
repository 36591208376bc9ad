package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

const structuredPrompt = `You are a content analysis expert. Write a structured, well-organized summary of the text provided.%s

Desired format:
## 🎯 Executive Summary
[2-3 sentence summary of the main content]

## 📋 Main Topics
- [Topic 1 with a short description]
- [Topic 2 with a short description]
- [Topic 3 with a short description]

## 💡 Key Insights
- [Relevant insight or information 1]
- [Relevant insight or information 2]

## 🎯 Conclusions
[Main conclusions of the content]

Be concise and objective, and keep the most important information.`

const bulletPointsPrompt = `Write a summary of the text provided as bullet points. Use clear, concise bullets.%s
Order the information by importance.
Use at most 10 bullet points.
Each point must be self-contained and informative.`

const paragraphPrompt = `Write a summary of the text provided as prose paragraphs.%s
The summary must be between 150 and 300 words.
Keep the most important information and preserve the context.
Use clear, objective language.`

const analysisPrompt = `Analyze the content provided and return a structured analysis:%s

## 📂 Category
[Content category: educational, entertainment, business, technology, etc.]

## 🎯 Target Audience
[Who the content is aimed at]

## 📊 Tone/Sentiment
[Tone of the content: formal, informal, technical, didactic, etc.]

## ⏱️ Estimated Reading Time
[Estimated time to read the original content]

## 🔍 Keywords
[5-7 main keywords]

## 📈 Complexity Level
[Basic, Intermediate or Advanced]`

func summaryTemplate(style models.SummaryStyle) string {
	switch style {
	case models.StyleBulletPoints:
		return bulletPointsPrompt
	case models.StyleParagraph:
		return paragraphPrompt
	case models.StyleStructured:
		return structuredPrompt
	default:
		return structuredPrompt
	}
}

func languageInstruction(target models.Language, what string) string {
	if !target.IsSet() {
		return ""
	}
	return fmt.Sprintf("\n\n**IMPORTANT: Write the entire %s in %s, regardless of the language of the original text.**", what, target.Name())
}

func buildSummaryPrompt(text string, style models.SummaryStyle, target models.Language) string {
	system := fmt.Sprintf(summaryTemplate(style), languageInstruction(target, "summary"))
	return system + "\n\nText to summarize:\n\n" + text
}

func buildAnalysisPrompt(text string, target models.Language) string {
	system := fmt.Sprintf(analysisPrompt, languageInstruction(target, "analysis"))
	return system + "\n\nContent to analyze:\n\n" + text
}
