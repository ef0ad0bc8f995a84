package roadmap

import (
	"strings"
	"unicode/utf8"

	"github.com/studyforge/roadmap/internal/prompt"
)

// MaxPromptChars bounds the document text embedded in a generation request.
// The bound is a fixed character count, not tokens; it may cut mid-sentence
// but always cuts at the same place for the same input.
const MaxPromptChars = 15000

const truncationMarker = "\n\n[Content truncated due to length]"

const segmentationTemplate = `You are an expert curriculum designer. Analyze the following document and break it into 4-8 sequential, non-overlapping learning topics.

Document title: {{title}}

Document content:
{{content}}

Respond with ONLY a single valid JSON object matching this schema:

{
  "title": <string> // overall roadmap title
  "overview": <string> // 2-3 sentence summary of the document
  "estimatedTime": <string> // total reading time as a free-text range, e.g. "2-3 hours"
  "segments": [
    {
      "id": <number> // 1-based sequential position
      "title": <string> // topic title
      "description": <string> // what this topic covers
      "keyPoints": [<string>] // 2-4 key points
      "difficulty": <string> // exactly one of: beginner, intermediate, advanced
      "estimatedTime": <string> // reading time range, e.g. "15-20 minutes"
      "learningObjectives": [<string>] // what the reader will be able to do
    }
  ]
}

Do not include any text outside the JSON object. No markdown, no code fences, no explanation.`

// BuildPrompt constructs the generation request for the given document
// label and extracted text. Text beyond MaxPromptChars is truncated
// deterministically and marked as such; the cut backs up to the nearest
// rune boundary so multi-byte text is never split.
func BuildPrompt(label, text string) string {
	if len(text) > MaxPromptChars {
		cut := MaxPromptChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + truncationMarker
	}

	rendered, err := prompt.Render(segmentationTemplate, map[string]string{
		"title":   label,
		"content": text,
	})
	if err != nil {
		// The template and its variables are fixed at compile time.
		panic(err)
	}
	return strings.TrimSpace(rendered)
}
