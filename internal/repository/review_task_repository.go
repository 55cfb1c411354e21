package repository

import (
	"github.com/fadilmartias/cv-reviewer/internal/model"
	"github.com/fadilmartias/cv-reviewer/internal/response"
	"gorm.io/gorm"
)

type ReviewTaskRepository struct {
	db *gorm.DB
}

func NewReviewTaskRepository(db *gorm.DB) *ReviewTaskRepository {
	return &ReviewTaskRepository{db}
}

func (r *ReviewTaskRepository) CreateTask(task *model.ReviewTask) error {
	return r.db.Create(task).Error
}

func (r *ReviewTaskRepository) UpdateTask(task *model.ReviewTask) error {
	return r.db.Save(task).Error
}

func (r *ReviewTaskRepository) FindTaskByID(id string) (*model.ReviewTask, error) {
	var task model.ReviewTask
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}

func (r *ReviewTaskRepository) ListTasks(page, pageSize int) ([]model.ReviewTask, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.ReviewTask{}).Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var tasks []model.ReviewTask
	err := r.db.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tasks).Error
	if err != nil {
		return nil, nil, err
	}

	return tasks, response.NewPagination(page, pageSize, total, len(tasks)), nil
}
