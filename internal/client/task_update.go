package client

import (
	"encoding/json"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

// TaskUpdate is a partial-update payload. Only fields that were
// explicitly set are marshalled, so the server leaves everything else
// untouched. SetDueDate(nil) sends an explicit null, which clears the
// stored due date.
type TaskUpdate struct {
	fields map[string]interface{}
}

func NewTaskUpdate() *TaskUpdate {
	return &TaskUpdate{fields: map[string]interface{}{}}
}

func (u *TaskUpdate) SetTitle(title string) *TaskUpdate {
	u.fields["title"] = title
	return u
}

func (u *TaskUpdate) SetDescription(description *string) *TaskUpdate {
	u.fields["description"] = description
	return u
}

func (u *TaskUpdate) SetStatus(status constants.TaskStatus) *TaskUpdate {
	u.fields["status"] = status
	return u
}

func (u *TaskUpdate) SetPriority(priority constants.TaskPriority) *TaskUpdate {
	u.fields["priority"] = priority
	return u
}

func (u *TaskUpdate) SetDueDate(dueDate *time.Time) *TaskUpdate {
	u.fields["dueDate"] = dueDate
	return u
}

func (u *TaskUpdate) Empty() bool {
	return len(u.fields) == 0
}

func (u *TaskUpdate) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.fields)
}

// ApplyTo mirrors the update onto a local task snapshot, the same way
// the server will apply it to the stored record.
func (u *TaskUpdate) ApplyTo(task *model.Task) {
	if v, ok := u.fields["title"]; ok {
		task.Title = v.(string)
	}
	if v, ok := u.fields["description"]; ok {
		task.Description = v.(*string)
	}
	if v, ok := u.fields["status"]; ok {
		task.Status = v.(constants.TaskStatus)
	}
	if v, ok := u.fields["priority"]; ok {
		task.Priority = v.(constants.TaskPriority)
	}
	if v, ok := u.fields["dueDate"]; ok {
		task.DueDate = v.(*time.Time)
	}
}
