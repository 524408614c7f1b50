package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type SavedJobResponse struct {
	ID      uuid.UUID   `json:"id"`
	SavedAt time.Time   `json:"saved_at"`
	Job     JobResponse `json:"job"`
}

type SaveJobResponse struct {
	JobID   uuid.UUID `json:"job_id"`
	IsSaved bool      `json:"is_saved"`
}

func NewSavedJobResponses(items []job.SavedJob) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SavedJobResponse{ID: it.ID, SavedAt: it.SavedAt, Job: NewJobResponse(it.Posting)})
	}
	return out
}
