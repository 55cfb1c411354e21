package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/cv-reviewer/internal/analyzer"
	"github.com/fadilmartias/cv-reviewer/internal/config"
	"github.com/fadilmartias/cv-reviewer/internal/dto"
	"github.com/fadilmartias/cv-reviewer/internal/model"
	"github.com/fadilmartias/cv-reviewer/internal/repository"
	"github.com/fadilmartias/cv-reviewer/internal/response"
	"github.com/fadilmartias/cv-reviewer/internal/service"
	"github.com/pgvector/pgvector-go"
)

const scannedPDFNote = "Pages without extractable text detected. The PDF may be a scan; run OCR and re-submit a text-based PDF if content is missing."

type ReviewUsecase struct {
	taskRepo *repository.ReviewTaskRepository
	jobRepo  *repository.JobRepository
	gemini   service.GeminiServiceInterface
	agent    service.AgentServiceInterface
}

func NewReviewUsecase(taskRepo *repository.ReviewTaskRepository, jobRepo *repository.JobRepository, gemini service.GeminiServiceInterface, agent service.AgentServiceInterface) *ReviewUsecase {
	return &ReviewUsecase{taskRepo: taskRepo, jobRepo: jobRepo, gemini: gemini, agent: agent}
}

// ReviewInput carries one review request. Nil pointer fields mean the caller
// did not supply the value, which is distinct from an empty one.
type ReviewInput struct {
	FilePath       string
	PageStart      *int
	PageEnd        *int
	JobDescription *string
	TargetRole     *string
	TopK           *int
}

func (in ReviewInput) topK() int {
	if in.TopK != nil {
		return *in.TopK
	}
	return 5
}

// Analyze runs the deterministic pipeline synchronously: extraction,
// segmentation, scoring, recommendation. No LLM is involved.
func (uc *ReviewUsecase) Analyze(in ReviewInput) (*dto.AnalysisResultDTO, error) {
	extraction, err := analyzer.ExtractPDF(in.FilePath, in.PageStart, in.PageEnd)
	if err != nil {
		return nil, err
	}

	seg := analyzer.Segment(extraction.Content)
	score := analyzer.Score(seg, in.JobDescription, in.TargetRole)
	recs := analyzer.Recommend(seg, in.topK())

	meta := dto.ExtractionMetaDTO{
		TotalPages:     extraction.TotalPages,
		ExtractedRange: [2]int{extraction.PageStart, extraction.PageEnd},
		EmptyPages:     extraction.EmptyPages,
	}
	if len(extraction.EmptyPages) > 0 {
		meta.Note = scannedPDFNote
	}

	return &dto.AnalysisResultDTO{
		Extraction:      meta,
		Sections:        seg,
		Score:           score,
		Recommendations: recs,
	}, nil
}

// Submit runs the deterministic pipeline, stores the task and kicks off
// narrative synthesis in the background. The returned id can be polled.
func (uc *ReviewUsecase) Submit(in ReviewInput) (string, error) {
	extraction, err := analyzer.ExtractPDF(in.FilePath, in.PageStart, in.PageEnd)
	if err != nil {
		return "", err
	}

	seg := analyzer.Segment(extraction.Content)
	score := analyzer.Score(seg, in.JobDescription, in.TargetRole)
	recs := analyzer.Recommend(seg, in.topK())

	breakdown, err := json.Marshal(score)
	if err != nil {
		return "", err
	}
	recommendations, err := json.Marshal(recs)
	if err != nil {
		return "", err
	}
	emptyPages, _ := json.Marshal(extraction.EmptyPages)

	task := model.ReviewTask{
		Status:          "processing",
		CVText:          extraction.Content,
		TotalPages:      extraction.TotalPages,
		PageStart:       extraction.PageStart,
		PageEnd:         extraction.PageEnd,
		EmptyPages:      string(emptyPages),
		OverallScore:    score.OverallScore,
		Breakdown:       string(breakdown),
		Recommendations: string(recommendations),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if in.JobDescription != nil {
		task.JobDescription = *in.JobDescription
	}
	if in.TargetRole != nil {
		task.TargetRole = *in.TargetRole
	}

	if err := uc.taskRepo.CreateTask(&task); err != nil {
		return "", err
	}

	go uc.synthesizeFeedback(&task)

	return task.ID.String(), nil
}

// synthesizeFeedback asks the agent runtime (or Gemini directly) to turn the
// deterministic results into narrative feedback. The heuristic results stand
// on their own: a synthesis failure marks the task failed but keeps them.
func (uc *ReviewUsecase) synthesizeFeedback(task *model.ReviewTask) {
	ctx := context.Background()

	if (uc.agent == nil || !uc.agent.Configured()) && uc.gemini == nil {
		task.Status = "completed"
		task.UpdatedAt = time.Now()
		if err := uc.taskRepo.UpdateTask(task); err != nil {
			log.Printf("failed to update task %s: %v", task.ID, err)
		}
		return
	}

	prompt := buildReviewPrompt(task, uc.buildJobContext(ctx, task.CVText))

	var feedback string
	var err error
	if uc.agent != nil && uc.agent.Configured() {
		feedback, err = uc.agent.Run(ctx, prompt)
	} else {
		feedback, err = uc.gemini.GenerateContent(ctx, config.LoadGeminiConfig().Model, prompt)
	}

	if err != nil {
		log.Printf("narrative synthesis failed for task %s: %v", task.ID, err)
		task.Status = "failed"
		task.Error = err.Error()
	} else {
		task.Status = "completed"
		task.Feedback = feedback
	}
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.UpdateTask(task); err != nil {
		log.Printf("failed to update task %s: %v", task.ID, err)
	}
}

// buildJobContext retrieves the vacancies closest to the CV embedding and
// formats them as prompt context. Any failure degrades to no context.
func (uc *ReviewUsecase) buildJobContext(ctx context.Context, cvText string) string {
	if uc.gemini == nil || uc.jobRepo == nil {
		return ""
	}

	embedding, err := uc.gemini.GenerateEmbedding(ctx, cvText)
	if err != nil {
		log.Printf("cv embedding failed, skipping job context: %v", err)
		return ""
	}

	jobs, err := uc.jobRepo.SearchJobs(pgvector.NewVector(embedding), 3)
	if err != nil {
		log.Printf("vacancy search failed, skipping job context: %v", err)
		return ""
	}

	jobContext := ""
	for i, j := range jobs {
		jobContext += fmt.Sprintf("Job %d: %s\nRequirements: %s\n\n", i+1, j.Title, j.Content)
	}
	return jobContext
}

func buildReviewPrompt(task *model.ReviewTask, jobContext string) string {
	prompt := `You are a CV review specialist. A deterministic analyzer already segmented and scored the CV below; your job is narrative synthesis only. Do not recompute scores.

Return your answer STRICTLY in JSON format with this schema:
{
	"overall_summary": "<summary of overall impression>",
	"strengths": ["<specific strength>"],
	"weaknesses": ["<specific weakness>"],
	"recommendations": ["<concrete, actionable improvement>"],
	"risks_or_red_flags": ["<risk or red flag, empty list if none>"]
}

Heuristic analysis (overall score ` + fmt.Sprintf("%d", task.OverallScore) + `/100):
` + task.Breakdown + `

Suggested job families:
` + task.Recommendations + `
`
	if task.TargetRole != "" {
		prompt += "\nTarget role: " + task.TargetRole + "\n"
	}
	if task.JobDescription != "" {
		prompt += "\nJob description supplied by the candidate:\n" + task.JobDescription + "\n"
	}
	if jobContext != "" {
		prompt += "\nSimilar vacancies in our catalogue:\n" + jobContext
	}
	prompt += "\nCV:\n" + task.CVText + "\n"
	return prompt
}

func (uc *ReviewUsecase) GetResult(id string) (*model.ReviewTask, error) {
	return uc.taskRepo.FindTaskByID(id)
}

func (uc *ReviewUsecase) ListReviews(page, pageSize int) ([]model.ReviewTask, *response.Pagination, error) {
	return uc.taskRepo.ListTasks(page, pageSize)
}

// CreateJob stores a vacancy together with its embedding so it can serve as
// retrieval context for future reviews.
func (uc *ReviewUsecase) CreateJob(title, content string) (*model.Job, error) {
	if uc.gemini == nil {
		return nil, fmt.Errorf("embedding service unavailable")
	}

	ctx := context.Background()
	embedding, err := uc.gemini.GenerateEmbedding(ctx, content)
	if err != nil {
		return nil, err
	}

	job := model.Job{
		Title:     title,
		Content:   content,
		Embedding: pgvector.NewVector(embedding),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.jobRepo.CreateJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (uc *ReviewUsecase) GetJobs() ([]model.Job, error) {
	return uc.jobRepo.GetJobs()
}
