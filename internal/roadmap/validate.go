package roadmap

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studyforge/roadmap/internal/models"
)

// rawRoadmap mirrors the schema requested from the generation service. All
// fields are untrusted until validated; totalSegments in particular is
// never read from the payload.
type rawRoadmap struct {
	Title         string       `json:"title"`
	Overview      string       `json:"overview"`
	EstimatedTime string       `json:"estimatedTime"`
	Segments      []rawSegment `json:"segments"`
}

type rawSegment struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	KeyPoints          []string `json:"keyPoints"`
	Difficulty         string   `json:"difficulty"`
	EstimatedTime      string   `json:"estimatedTime"`
	LearningObjectives []string `json:"learningObjectives"`
}

// ParseResponse validates raw generation output and normalizes it into a
// roadmap body. Segment ids are renumbered by position and totalSegments is
// recomputed from the actual segment count.
func ParseResponse(label, raw string) (*models.RoadmapBody, error) {
	content := stripCodeFences(raw)

	var parsed rawRoadmap
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse generation output: %w", err)
	}

	if len(parsed.Segments) == 0 {
		return nil, fmt.Errorf("generation output has no segments")
	}

	segments := make([]models.Segment, len(parsed.Segments))
	for i, s := range parsed.Segments {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("segment %d: missing title", i+1)
		}
		if strings.TrimSpace(s.Description) == "" {
			return nil, fmt.Errorf("segment %d: missing description", i+1)
		}
		if len(s.KeyPoints) == 0 {
			return nil, fmt.Errorf("segment %d: missing key points", i+1)
		}
		if len(s.LearningObjectives) == 0 {
			return nil, fmt.Errorf("segment %d: missing learning objectives", i+1)
		}
		if strings.TrimSpace(s.EstimatedTime) == "" {
			return nil, fmt.Errorf("segment %d: missing estimated time", i+1)
		}
		if !validDifficulty(s.Difficulty) {
			return nil, fmt.Errorf("segment %d: invalid difficulty %q", i+1, s.Difficulty)
		}

		segments[i] = models.Segment{
			ID:                 i + 1,
			Title:              s.Title,
			Description:        s.Description,
			KeyPoints:          s.KeyPoints,
			Difficulty:         s.Difficulty,
			EstimatedTime:      s.EstimatedTime,
			LearningObjectives: s.LearningObjectives,
		}
	}

	title := strings.TrimSpace(parsed.Title)
	if title == "" {
		title = label
	}

	return &models.RoadmapBody{
		Title:         title,
		Overview:      parsed.Overview,
		Segments:      segments,
		TotalSegments: len(segments),
		EstimatedTime: parsed.EstimatedTime,
		Method:        models.MethodGenerated,
	}, nil
}

func validDifficulty(d string) bool {
	switch d {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
		return true
	}
	return false
}

// stripCodeFences removes markdown code fencing around the payload. When the
// response wraps JSON in a fenced block with prose around it, the fenced
// block wins.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "```"); start >= 0 {
		rest := s[start+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	return s
}
