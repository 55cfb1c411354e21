package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/cv-reviewer/internal/analyzer"
	"github.com/fadilmartias/cv-reviewer/internal/config"
	"github.com/fadilmartias/cv-reviewer/internal/dto"
	"github.com/fadilmartias/cv-reviewer/internal/middleware"
	"github.com/fadilmartias/cv-reviewer/internal/model"
	"github.com/fadilmartias/cv-reviewer/internal/usecase"
	"github.com/fadilmartias/cv-reviewer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/analyze", middleware.RateLimiter(10, 1*time.Minute), h.Analyze)
	app.Post("/review", middleware.RateLimiter(1, 4*time.Second), h.Review)
	app.Get("/result/:id", h.Result)
	app.Get("/reviews", h.Reviews)
	app.Get("/jobs", h.Jobs)
	app.Post("/jobs", h.CreateJob)
}

// Analyze runs the deterministic pipeline synchronously and returns the full
// segmentation, score breakdown and recommendations.
func (h *ReviewHandler) Analyze(c *fiber.Ctx) error {
	in, err := h.reviewInput(c)
	if err != nil {
		return err
	}

	result, err := h.uc.Analyze(*in)
	if err != nil {
		return analyzerError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success analyze CV",
		Data:    result,
	})
}

// Review submits an asynchronous review: deterministic analysis now,
// narrative synthesis in the background.
func (h *ReviewHandler) Review(c *fiber.Ctx) error {
	in, err := h.reviewInput(c)
	if err != nil {
		return err
	}

	id, err := h.uc.Submit(*in)
	if err != nil {
		var notFound *analyzer.FileNotFoundError
		var invalidRange *analyzer.InvalidRangeError
		var readErr *analyzer.PDFReadError
		if errors.As(err, &notFound) || errors.As(err, &invalidRange) || errors.As(err, &readErr) {
			return analyzerError(c, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit review",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "Success submit review",
		Data:    fiber.Map{"id": id, "status": "processing"},
	})
}

func (h *ReviewHandler) Result(c *fiber.Ctx) error {
	id := c.Params("id")
	task, err := h.uc.GetResult(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "review not found",
		}, nil)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get review result",
		Data:    taskDTO(task),
	})
}

func (h *ReviewHandler) Reviews(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	tasks, pagination, err := h.uc.ListReviews(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list reviews",
		}, err)
	}

	data := make([]dto.ReviewTaskDTO, len(tasks))
	for i := range tasks {
		data[i] = taskDTO(&tasks[i])
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success list reviews",
		Data:       data,
		Pagination: pagination,
	})
}

func (h *ReviewHandler) Jobs(c *fiber.Ctx) error {
	jobs, err := h.uc.GetJobs()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success list jobs",
		Data:    jobs,
	})
}

func (h *ReviewHandler) CreateJob(c *fiber.Ctx) error {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(body.Title) == "" || strings.TrimSpace(body.Content) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "title and content are required",
		}, nil)
	}

	job, err := h.uc.CreateJob(body.Title, body.Content)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job",
		Data:    job,
	})
}

// reviewInput saves the uploaded PDF and collects the optional form fields.
// It writes the error response itself, so callers just propagate the error.
func (h *ReviewHandler) reviewInput(c *fiber.Ctx) (*usecase.ReviewInput, error) {
	path, err := h.saveUpload(c, "cv")
	if err != nil {
		return nil, err
	}

	pageStart, err := optionalInt(c, "page_start")
	if err != nil {
		return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "page_start must be an integer",
		}, err)
	}
	pageEnd, err := optionalInt(c, "page_end")
	if err != nil {
		return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "page_end must be an integer",
		}, err)
	}

	topK, err := optionalInt(c, "top_k")
	if err != nil {
		return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "top_k must be an integer",
		}, err)
	}

	return &usecase.ReviewInput{
		FilePath:       path,
		PageStart:      pageStart,
		PageEnd:        pageEnd,
		JobDescription: optionalString(c, "job_description"),
		TargetRole:     optionalString(c, "target_role"),
		TopK:           topK,
	}, nil
}

func (h *ReviewHandler) saveUpload(c *fiber.Ctx, fieldName string) (string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file is required", fieldName),
		}, err)
	}

	if file.Size > 5*1024*1024 {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: fmt.Sprintf("%s file size is too large (max 5MB)", fieldName),
		}, nil)
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnsupportedMediaType,
			Message: fmt.Sprintf("unsupported %s file type", fieldName),
		}, nil)
	}

	uploadDir := filepath.Join(config.LoadAppConfig().UploadDir, fieldName)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot save %s file", fieldName),
		}, err)
	}

	savePath := filepath.Join(uploadDir, filepath.Base(file.Filename))
	if err := c.SaveFile(file, savePath); err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot save %s file", fieldName),
		}, err)
	}

	return savePath, nil
}

// analyzerError maps the extraction error taxonomy to HTTP statuses.
func analyzerError(c *fiber.Ctx, err error) error {
	var notFound *analyzer.FileNotFoundError
	var invalidRange *analyzer.InvalidRangeError
	var readErr *analyzer.PDFReadError

	switch {
	case errors.As(err, &notFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "CV file not found",
		}, err)
	case errors.As(err, &invalidRange):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		}, err)
	case errors.As(err, &readErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "failed to read PDF",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to analyze CV",
		}, err)
	}
}

func taskDTO(task *model.ReviewTask) dto.ReviewTaskDTO {
	return dto.ReviewTaskDTO{
		ID:              task.ID,
		Status:          task.Status,
		TargetRole:      task.TargetRole,
		OverallScore:    task.OverallScore,
		Breakdown:       task.Breakdown,
		Recommendations: task.Recommendations,
		Feedback:        task.Feedback,
		Error:           task.Error,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

func optionalInt(c *fiber.Ctx, name string) (*int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalString(c *fiber.Ctx, name string) *string {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil
	}
	return &raw
}
