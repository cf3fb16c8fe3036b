package assessment

import (
	"concord/models/dtos"

	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running       = "Running"
	Done          = "Done"
	Error         = "Error"
)

// GenotypeSite is one already-categorized truth/call comparison to classify.
// Genotype categorization itself happens upstream of this service.
type GenotypeSite struct {
	SampleId   string `json:"sampleId"`
	Chrom      string `json:"chrom"`
	Pos        int    `json:"pos"`
	TruthState string `json:"truthState"`
	CallState  string `json:"callState"`
}

type AssessmentRequest struct {
	Id        uuid.UUID               `json:"id"`
	Name      string                  `json:"name"`
	State     State                   `json:"state"`
	Message   string                  `json:"message"`
	Counts    *dtos.ConcordanceCounts `json:"counts,omitempty"`
	CreatedAt string                  `json:"createdAt"`
	UpdatedAt string                  `json:"updatedAt"`
}

type AssessmentRunRequestDTO struct {
	Name  string         `json:"name"`
	Sites []GenotypeSite `json:"sites"`
}

type AssessmentResponseDTO struct {
	Id      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	State   State     `json:"state"`
	Message string    `json:"message"`
}
