package roadmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studyforge/roadmap/internal/models"
)

const validResponse = `{
	"title": "Go Concurrency",
	"overview": "Goroutines, channels, and the memory model.",
	"estimatedTime": "2-3 hours",
	"segments": [
		{
			"id": 1,
			"title": "Goroutines",
			"description": "Lightweight threads managed by the runtime.",
			"keyPoints": ["go keyword", "scheduling"],
			"difficulty": "beginner",
			"estimatedTime": "20-30 minutes",
			"learningObjectives": ["Start a goroutine"]
		},
		{
			"id": 2,
			"title": "Channels",
			"description": "Typed conduits for communication.",
			"keyPoints": ["send", "receive", "select"],
			"difficulty": "intermediate",
			"estimatedTime": "30-40 minutes",
			"learningObjectives": ["Coordinate goroutines with channels"]
		}
	]
}`

func TestParseResponseValid(t *testing.T) {
	body, err := ParseResponse("Doc", validResponse)
	require.NoError(t, err)
	require.Equal(t, "Go Concurrency", body.Title)
	require.Equal(t, models.MethodGenerated, body.Method)
	require.Equal(t, 2, body.TotalSegments)
	require.Len(t, body.Segments, 2)
	require.Equal(t, 1, body.Segments[0].ID)
	require.Equal(t, 2, body.Segments[1].ID)
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	wrapped := "Here is your roadmap:\n```json\n" + validResponse + "\n```\nLet me know if you need anything else."

	body, err := ParseResponse("Doc", wrapped)
	require.NoError(t, err)
	require.Equal(t, 2, body.TotalSegments)
}

func TestParseResponseBareFences(t *testing.T) {
	wrapped := "```\n" + validResponse + "\n```"

	body, err := ParseResponse("Doc", wrapped)
	require.NoError(t, err)
	require.Equal(t, 2, body.TotalSegments)
}

func TestParseResponseRecomputesTotalSegments(t *testing.T) {
	// A payload lying about its own count is corrected from the array.
	lying := `{"title":"T","overview":"O","estimatedTime":"1 hour","totalSegments":99,"segments":[
		{"id":7,"title":"Only","description":"d","keyPoints":["k"],"difficulty":"beginner","estimatedTime":"5 minutes","learningObjectives":["o"]}
	]}`

	body, err := ParseResponse("Doc", lying)
	require.NoError(t, err)
	require.Equal(t, 1, body.TotalSegments)
	require.Equal(t, 1, body.Segments[0].ID)
}

func TestParseResponseRejects(t *testing.T) {
	segment := func(field, value string) string {
		seg := map[string]string{
			"title":         `"t"`,
			"description":   `"d"`,
			"keyPoints":     `["k"]`,
			"difficulty":    `"beginner"`,
			"estimatedTime": `"5m"`,
			"objectives":    `["o"]`,
		}
		seg[field] = value
		return fmt.Sprintf(`{"title":"T","overview":"O","segments":[{"id":1,"title":%s,"description":%s,"keyPoints":%s,"difficulty":%s,"estimatedTime":%s,"learningObjectives":%s}]}`,
			seg["title"], seg["description"], seg["keyPoints"], seg["difficulty"], seg["estimatedTime"], seg["objectives"])
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "I could not produce a roadmap for this document."},
		{"missing segments", `{"title":"T","overview":"O"}`},
		{"empty segments", `{"title":"T","overview":"O","segments":[]}`},
		{"empty title", segment("title", `""`)},
		{"empty description", segment("description", `""`)},
		{"no key points", segment("keyPoints", `[]`)},
		{"no objectives", segment("objectives", `[]`)},
		{"no estimated time", segment("estimatedTime", `""`)},
		{"bad difficulty", segment("difficulty", `"expert"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse("Doc", tt.raw)
			require.Error(t, err)
		})
	}
}

func TestParseResponseFallsBackToLabelTitle(t *testing.T) {
	raw := `{"overview":"O","segments":[{"id":1,"title":"t","description":"d","keyPoints":["k"],"difficulty":"advanced","estimatedTime":"5m","learningObjectives":["o"]}]}`

	body, err := ParseResponse("My Document", raw)
	require.NoError(t, err)
	require.Equal(t, "My Document", body.Title)
}
