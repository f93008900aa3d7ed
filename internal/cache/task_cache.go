package cache

import (
	"context"
	"errors"

	model "task-tracker.com/task-tracker/internal/models"
)

// TaskListCache holds a snapshot of the full task list so repeated GET
// /tasks calls skip the database. Mutating operations must call
// Invalidate before returning.
type TaskListCache interface {
	Get(ctx context.Context) ([]model.Task, error)

	Set(ctx context.Context, tasks []model.Task) error

	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("task list not cached")

// NoopTaskCache is used when no redis address is configured; every read
// is a miss.
type NoopTaskCache struct{}

func (NoopTaskCache) Get(ctx context.Context) ([]model.Task, error) {
	return nil, ErrCacheMiss
}

func (NoopTaskCache) Set(ctx context.Context, tasks []model.Task) error {
	return nil
}

func (NoopTaskCache) Invalidate(ctx context.Context) error {
	return nil
}
