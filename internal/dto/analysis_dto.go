package dto

import "github.com/fadilmartias/cv-reviewer/internal/analyzer"

// ExtractionMetaDTO describes how the PDF was read, without the raw content.
type ExtractionMetaDTO struct {
	TotalPages     int    `json:"total_pages"`
	ExtractedRange [2]int `json:"extracted_range"`
	EmptyPages     []int  `json:"empty_pages"`
	Note           string `json:"note,omitempty"`
}

// AnalysisResultDTO is the synchronous output of the deterministic pipeline.
type AnalysisResultDTO struct {
	Extraction      ExtractionMetaDTO            `json:"extraction"`
	Sections        *analyzer.Segmentation       `json:"sections"`
	Score           *analyzer.ScoreBreakdown     `json:"score"`
	Recommendations []analyzer.JobRecommendation `json:"recommendations"`
}
