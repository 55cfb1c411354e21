package model

import (
	"time"

	"github.com/google/uuid"
)

type ReviewTask struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Status          string    `gorm:"type:varchar(50)" json:"status"` // e.g. "processing", "completed", "failed"
	CVText          string    `gorm:"type:text" json:"cv_text"`
	JobDescription  string    `gorm:"type:text" json:"job_description"`
	TargetRole      string    `gorm:"type:varchar(255)" json:"target_role"`
	TotalPages      int       `json:"total_pages"`
	PageStart       int       `json:"page_start"`
	PageEnd         int       `json:"page_end"`
	EmptyPages      string    `gorm:"type:jsonb" json:"empty_pages"`
	OverallScore    int       `json:"overall_score"`
	Breakdown       string    `gorm:"type:jsonb" json:"breakdown"`
	Recommendations string    `gorm:"type:jsonb" json:"recommendations"`
	Feedback        string    `gorm:"type:text" json:"feedback"`
	Error           string    `gorm:"type:text" json:"error"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
