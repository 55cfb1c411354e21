package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReviewTaskDTO struct {
	ID              uuid.UUID `json:"id"`
	Status          string    `json:"status"` // e.g. "processing", "completed", "failed"
	TargetRole      string    `json:"target_role,omitempty"`
	OverallScore    int       `json:"overall_score"`
	Breakdown       string    `json:"breakdown"`
	Recommendations string    `json:"recommendations"`
	Feedback        string    `json:"feedback"`
	Error           string    `json:"error,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
