package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	errs "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(errs.ErrInvalidJSON.StatusCode, errs.ErrInvalidJSON.Message)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), &req)
	if err != nil {
		return taskError(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return taskError(errs.ErrTaskIDRequired, "")
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(errs.ErrInvalidJSON.StatusCode, errs.ErrInvalidJSON.Message)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, &req)
	if err != nil {
		return taskError(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return taskError(errs.ErrTaskIDRequired, "")
	}

	task, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return taskError(err, "failed to delete task")
	}

	return c.JSON(http.StatusOK, task)
}

// taskError maps service errors onto HTTP statuses. Missing records get
// a distinct 404 rather than folding into 500 with other repository
// failures.
func taskError(err error, fallback string) *echo.HTTPError {
	var ex *errs.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
