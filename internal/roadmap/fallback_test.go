package roadmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studyforge/roadmap/internal/models"
)

func TestFallbackIsTotal(t *testing.T) {
	labels := []string{"Physics Notes", "x", "日本語の文書", "a very long document title that goes on"}

	for _, label := range labels {
		body := Fallback(label)

		require.Equal(t, models.MethodFallback, body.Method)
		require.Len(t, body.Segments, 4)
		require.Equal(t, 4, body.TotalSegments)
		require.NotEmpty(t, body.Title)
		require.NotEmpty(t, body.Overview)
		require.NotEmpty(t, body.EstimatedTime)
	}
}

func TestFallbackSegmentsAreValid(t *testing.T) {
	body := Fallback("Doc")

	for i, s := range body.Segments {
		require.Equal(t, i+1, s.ID)
		require.NotEmpty(t, s.Title)
		require.NotEmpty(t, s.Description)
		require.NotEmpty(t, s.KeyPoints)
		require.NotEmpty(t, s.LearningObjectives)
		require.NotEmpty(t, s.EstimatedTime)
		require.True(t, validDifficulty(s.Difficulty))
	}

	require.Equal(t, "Introduction", body.Segments[0].Title)
	require.Equal(t, "Core Concepts", body.Segments[1].Title)
	require.Equal(t, "Advanced Topics", body.Segments[2].Title)
	require.Equal(t, "Summary & Review", body.Segments[3].Title)

	require.Equal(t, models.DifficultyBeginner, body.Segments[0].Difficulty)
	require.Equal(t, models.DifficultyAdvanced, body.Segments[2].Difficulty)
}

func TestFallbackIsDeterministic(t *testing.T) {
	first := Fallback("Doc")
	second := Fallback("Doc")
	require.Equal(t, first, second)
}
