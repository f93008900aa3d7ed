package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/cache"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	service := services.NewTaskService(repository.NewTaskRepository(db), cache.NoopTaskCache{})

	e := echo.New()
	Register(e, NewHandler(service), 1000)
	return e
}

func request(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) model.Task {
	t.Helper()
	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("failed to decode task body: %v", err)
	}
	return task
}

func TestCreateTask_Created(t *testing.T) {
	e := setupServer(t)

	rec := request(e, http.MethodPost, "/tasks",
		`{"title":"Write spec","priority":"HIGH","dueDate":"2026-09-15T09:00:00Z","sprint":7}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	task := decodeTask(t, rec)
	if task.ID == "" {
		t.Error("expected an assigned id")
	}
	if task.Status != "PENDING" {
		t.Errorf("expected default status PENDING, got %s", task.Status)
	}
	if task.Priority != "HIGH" {
		t.Errorf("expected priority HIGH, got %s", task.Priority)
	}
	if task.DueDate == nil {
		t.Error("expected due date to be set")
	}
}

func TestCreateTask_MissingTitle(t *testing.T) {
	e := setupServer(t)

	for _, body := range []string{`{}`, `{"title":""}`, `{"description":"no title"}`} {
		rec := request(e, http.MethodPost, "/tasks", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}

	// Nothing may have been persisted by the rejected creates.
	rec := request(e, http.MethodGet, "/tasks", "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty list, got %s", body)
	}
}

func TestCreateTask_InvalidJSON(t *testing.T) {
	e := setupServer(t)

	rec := request(e, http.MethodPost, "/tasks", `{"title":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestListTasks_OrderedNewestFirst(t *testing.T) {
	e := setupServer(t)

	for _, title := range []string{"first", "second", "third"} {
		rec := request(e, http.MethodPost, "/tasks", `{"title":"`+title+`"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %s failed: %d", title, rec.Code)
		}
	}

	rec := request(e, http.MethodGet, "/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tasks []model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].CreatedAt.After(tasks[i-1].CreatedAt) {
			t.Errorf("list out of order at index %d", i)
		}
	}
}

func TestUpdateTask_Partial(t *testing.T) {
	e := setupServer(t)

	created := decodeTask(t, request(e, http.MethodPost, "/tasks",
		`{"title":"Write spec","description":"notes"}`))

	rec := request(e, http.MethodPut, "/tasks/"+created.ID, `{"status":"COMPLETED"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	task := decodeTask(t, rec)
	if task.Status != "COMPLETED" {
		t.Errorf("expected status COMPLETED, got %s", task.Status)
	}
	if task.Description == nil || *task.Description != "notes" {
		t.Error("partial update must leave the description alone")
	}
}

func TestUpdateTask_NoRecognizedFields(t *testing.T) {
	e := setupServer(t)

	created := decodeTask(t, request(e, http.MethodPost, "/tasks", `{"title":"x"}`))

	rec := request(e, http.MethodPut, "/tasks/"+created.ID, `{"sprint":7}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	e := setupServer(t)

	rec := request(e, http.MethodPut, "/tasks/no-such-id", `{"status":"COMPLETED"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteTask_ReturnsDeleted(t *testing.T) {
	e := setupServer(t)

	created := decodeTask(t, request(e, http.MethodPost, "/tasks", `{"title":"ephemeral"}`))

	rec := request(e, http.MethodDelete, "/tasks/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted := decodeTask(t, rec); deleted.ID != created.ID {
		t.Error("delete must return the removed task")
	}

	rec = request(e, http.MethodDelete, "/tasks/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rec.Code)
	}
}
