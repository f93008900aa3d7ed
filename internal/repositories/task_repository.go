package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	errs "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(
	ctx context.Context,
	title string,
	description *string,
	status constants.TaskStatus,
	priority constants.TaskPriority,
	dueDate *time.Time,
) (*model.Task, error) {
	now := time.Now().UTC()
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// List returns every task, most recently created first. The empty
// result is a non-nil slice so it serializes as [] rather than null.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// UpdateByID applies only the given columns and refreshes updated_at.
// Columns absent from fields keep their stored values.
func (r *TaskRepository) UpdateByID(
	ctx context.Context,
	id string,
	fields map[string]interface{},
) (*model.Task, error) {
	fields["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

// DeleteByID removes the task and returns the removed record.
func (r *TaskRepository) DeleteByID(ctx context.Context, id string) (*model.Task, error) {
	task, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return task, nil
}
