package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"task-tracker.com/task-tracker/internal/cache"
	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	errs "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type TaskService struct {
	repo      *repository.TaskRepository
	listCache cache.TaskListCache
}

func NewTaskService(repo *repository.TaskRepository, listCache cache.TaskListCache) *TaskService {
	return &TaskService{
		repo:      repo,
		listCache: listCache,
	}
}

// ListTasks serves the full list, cache-aside: a cache hit skips the
// database, a miss populates the cache. Cache failures degrade to the
// database, they never fail the request.
func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	if tasks, err := s.listCache.Get(ctx); err == nil {
		return tasks, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("task list cache read failed: %v", err)
	}

	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.listCache.Set(ctx, tasks); err != nil {
		log.Printf("task list cache write failed: %v", err)
	}

	return tasks, nil
}

// CreateTask validates before touching the repository: a rejected
// request never persists anything. Unset status and priority take the
// documented defaults.
func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errs.ErrTitleRequired
	}

	status := constants.StatusPending
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, errs.ErrInvalidStatus
		}
		status = *req.Status
	}

	priority := constants.PriorityLow
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, errs.ErrInvalidPriority
		}
		priority = *req.Priority
	}

	dueDate, err := req.ParsedDueDate()
	if err != nil {
		return nil, errs.ErrInvalidDueDate
	}

	task, err := s.repo.CreateTask(ctx, title, req.Description, status, priority, dueDate)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return task, nil
}

// UpdateTask applies only the fields present in the request. A payload
// with zero recognized fields is rejected before any repository call.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req *dto.UpdateTaskRequest) (*model.Task, error) {
	if req.Empty() {
		return nil, errs.ErrEmptyUpdate
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, errs.ErrTitleRequired
		}
		fields["title"] = *req.Title
	}
	if req.Status != nil {
		status := constants.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, errs.ErrInvalidStatus
		}
		fields["status"] = status
	}
	if req.Priority != nil {
		priority := constants.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return nil, errs.ErrInvalidPriority
		}
		fields["priority"] = priority
	}
	if req.DescriptionSet {
		fields["description"] = req.Description
	}
	if req.DueDateSet {
		fields["due_date"] = req.DueDate
	}

	task, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return task, nil
}

func (s *TaskService) invalidateListCache(ctx context.Context) {
	if err := s.listCache.Invalidate(ctx); err != nil {
		log.Printf("task list cache invalidation failed: %v", err)
	}
}
