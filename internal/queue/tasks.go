package queue

const (
	TypeRoadmapGenerate = "roadmap:generate"
)

type RoadmapGeneratePayload struct {
	DocumentID string `json:"document_id"`
	OwnerID    string `json:"owner_id"`
}
