package roadmap

import (
	"fmt"

	"github.com/studyforge/roadmap/internal/models"
)

// Fallback produces a deterministic, schema-valid roadmap for the given
// document label. It depends on nothing and cannot fail: it is the
// pipeline's guaranteed terminal output when every generative path is down.
func Fallback(label string) *models.RoadmapBody {
	segments := []models.Segment{
		{
			ID:          1,
			Title:       "Introduction",
			Description: fmt.Sprintf("Get oriented with %s: what it covers and how it is organized.", label),
			KeyPoints: []string{
				"Purpose and scope of the document",
				"How the material is structured",
			},
			Difficulty:    models.DifficultyBeginner,
			EstimatedTime: "10-15 minutes",
			LearningObjectives: []string{
				"Describe what the document is about",
				"Identify the main sections to focus on",
			},
		},
		{
			ID:          2,
			Title:       "Core Concepts",
			Description: "Work through the central ideas and terminology the rest of the material builds on.",
			KeyPoints: []string{
				"Key terms and definitions",
				"Fundamental principles",
				"How the core ideas relate to each other",
			},
			Difficulty:    models.DifficultyIntermediate,
			EstimatedTime: "30-45 minutes",
			LearningObjectives: []string{
				"Explain the core concepts in your own words",
				"Recognize the key terminology in context",
			},
		},
		{
			ID:          3,
			Title:       "Advanced Topics",
			Description: "Dig into the deeper material: edge cases, nuances, and advanced applications.",
			KeyPoints: []string{
				"Advanced techniques and details",
				"Common pitfalls and exceptions",
				"Practical applications",
			},
			Difficulty:    models.DifficultyAdvanced,
			EstimatedTime: "45-60 minutes",
			LearningObjectives: []string{
				"Apply the material to non-trivial problems",
				"Identify where the subtleties matter",
			},
		},
		{
			ID:          4,
			Title:       "Summary & Review",
			Description: "Consolidate what you learned and check your understanding against the full document.",
			KeyPoints: []string{
				"Recap of the main takeaways",
				"Self-assessment questions",
			},
			Difficulty:    models.DifficultyIntermediate,
			EstimatedTime: "15-20 minutes",
			LearningObjectives: []string{
				"Summarize the document end to end",
				"Spot the areas worth a second pass",
			},
		},
	}

	return &models.RoadmapBody{
		Title:         fmt.Sprintf("Learning Roadmap: %s", label),
		Overview:      fmt.Sprintf("A structured reading plan for %s, moving from orientation through core concepts to advanced material and review.", label),
		Segments:      segments,
		TotalSegments: len(segments),
		EstimatedTime: "2-3 hours",
		Method:        models.MethodFallback,
	}
}
