package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	dto "task-tracker.com/task-tracker/internal/data_models"
	errs "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

// TaskAPI is the task service surface the state container depends on.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]model.Task, error)

	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error)

	UpdateTask(ctx context.Context, id string, update *TaskUpdate) (*model.Task, error)

	DeleteTask(ctx context.Context, id string) (*model.Task, error)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, update *TaskUpdate) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &errs.Exception{
			Message:    errorMessage(resp.Body, resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorMessage pulls the message out of echo's {"message": ...} error
// body, falling back to the bare status code.
func errorMessage(body io.Reader, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("unexpected status %d", statusCode)
}
