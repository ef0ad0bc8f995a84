package models

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty levels a segment may carry. Anything else coming back from a
// generation provider is rejected during validation.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Methods describing how a roadmap was produced.
const (
	MethodGenerated = "generated"
	MethodFallback  = "fallback"
)

// Segment is one ordered topic unit within a roadmap. IDs are 1-based and
// strictly increasing by position.
type Segment struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	KeyPoints          []string `json:"keyPoints"`
	Difficulty         string   `json:"difficulty"`
	EstimatedTime      string   `json:"estimatedTime"`
	LearningObjectives []string `json:"learningObjectives"`
}

// RoadmapBody is the identity-free part of a roadmap: what generation (or
// fallback) produces before the store assigns id and timestamps.
type RoadmapBody struct {
	Title         string    `json:"title"`
	Overview      string    `json:"overview"`
	Segments      []Segment `json:"segments"`
	TotalSegments int       `json:"totalSegments"`
	EstimatedTime string    `json:"estimatedTime"`
	Method        string    `json:"method"`
}

// Roadmap is the full structured learning roadmap for one document, scoped
// to its owner. Immutable once stored; re-generation requires an explicit
// delete first.
type Roadmap struct {
	ID            uuid.UUID `json:"id"`
	DocumentID    uuid.UUID `json:"documentId"`
	OwnerID       uuid.UUID `json:"ownerId"`
	Title         string    `json:"title"`
	Overview      string    `json:"overview"`
	Segments      []Segment `json:"segments"`
	TotalSegments int       `json:"totalSegments"`
	EstimatedTime string    `json:"estimatedTime"`
	Method        string    `json:"method"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Body returns the identity-free view of a stored roadmap.
func (r *Roadmap) Body() RoadmapBody {
	return RoadmapBody{
		Title:         r.Title,
		Overview:      r.Overview,
		Segments:      r.Segments,
		TotalSegments: r.TotalSegments,
		EstimatedTime: r.EstimatedTime,
		Method:        r.Method,
	}
}
