// Package store holds the client-side cache of the task list and the
// optimistic mutation flow around it: mutate the cache first, confirm
// over the wire, roll the whole cache back if the server refuses.
package store

import (
	"context"
	"errors"
	"sync"

	"task-tracker.com/task-tracker/internal/client"
	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
)

// ErrOperationInFlight is returned when an operation is attempted while
// a previous one is still awaiting its server response. Rollback
// restores the whole pre-operation snapshot, which is only correct when
// mutations never overlap, so overlap is rejected here rather than
// trusted to the caller.
var ErrOperationInFlight = errors.New("another operation is in flight")

type TaskStore struct {
	api client.TaskAPI

	mu        sync.Mutex
	tasks     []model.Task
	pending   bool
	lastError string
}

func New(api client.TaskAPI) *TaskStore {
	return &TaskStore{api: api}
}

// Tasks returns a copy of the cached list, most recently created first.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.tasks...)
}

// Pending reports whether an operation is awaiting its server response.
// Callers driving user input are expected to disable mutating controls
// while this is true.
func (s *TaskStore) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// LastError returns the message of the most recent failed operation, or
// "" if the latest operation succeeded. It is cleared at the start of
// every operation.
func (s *TaskStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Refresh replaces the cache wholesale with the server's list. It is
// not optimistic: on failure the cache keeps its previous contents.
func (s *TaskStore) Refresh(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}

	tasks, err := s.api.ListTasks(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	if err != nil {
		s.lastError = "failed to refresh tasks: " + err.Error()
		return err
	}
	s.tasks = tasks
	return nil
}

// Create confirms first and inserts after: the cache is only touched
// once the server has assigned the id and timestamps, and the confirmed
// task is prepended since it is by construction the newest.
func (s *TaskStore) Create(ctx context.Context, req *dto.CreateTaskRequest) error {
	if err := s.begin(); err != nil {
		return err
	}

	// Fill the status default client-side, matching the server's
	// default, so the confirmed entry renders without surprises.
	if req.Status == nil {
		pending := constants.StatusPending
		req.Status = &pending
	}

	created, err := s.api.CreateTask(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	if err != nil {
		s.lastError = "failed to create task: " + err.Error()
		return err
	}
	s.tasks = append([]model.Task{*created}, s.tasks...)
	return nil
}

// Update applies the change to the cached entry immediately, then asks
// the server to confirm. On failure the entire pre-operation snapshot
// is restored. An id with no cached entry still issues the request; the
// server's not-found answer comes back through the failure path.
func (s *TaskStore) Update(ctx context.Context, id string, update *client.TaskUpdate) error {
	if err := s.begin(); err != nil {
		return err
	}

	s.mu.Lock()
	snapshot := s.tasks
	next := make([]model.Task, len(s.tasks))
	for i, task := range s.tasks {
		if task.ID == id {
			update.ApplyTo(&task)
		}
		next[i] = task
	}
	s.tasks = next
	s.mu.Unlock()

	_, err := s.api.UpdateTask(ctx, id, update)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	if err != nil {
		s.tasks = snapshot
		s.lastError = "failed to update task: " + err.Error()
		return err
	}
	// The optimistic entry stands as-is; the server's updatedAt is not
	// re-synced until the next refresh.
	return nil
}

// Delete removes the cached entry immediately, then confirms. On
// failure the snapshot restore puts the entry back in its original
// position.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}

	s.mu.Lock()
	snapshot := s.tasks
	next := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.ID != id {
			next = append(next, task)
		}
	}
	s.tasks = next
	s.mu.Unlock()

	_, err := s.api.DeleteTask(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	if err != nil {
		s.tasks = snapshot
		s.lastError = "failed to delete task: " + err.Error()
		return err
	}
	return nil
}

// begin claims the single in-flight slot and clears the error channel.
func (s *TaskStore) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrOperationInFlight
	}
	s.pending = true
	s.lastError = ""
	return nil
}
