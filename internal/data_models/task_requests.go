package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type CreateTaskRequest struct {
	Title       string                  `json:"title"`
	Description *string                 `json:"description"`
	Status      *constants.TaskStatus   `json:"status"`
	Priority    *constants.TaskPriority `json:"priority"`
	DueDate     *string                 `json:"dueDate"`
}

// ParsedDueDate converts the wire date string to a time value. A nil
// DueDate means no due date was supplied.
func (r *CreateTaskRequest) ParsedDueDate() (*time.Time, error) {
	if r.DueDate == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *r.DueDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTaskRequest carries a partial update. Every field distinguishes
// "absent from the payload" from "present": absent fields are left
// untouched by the update, present ones are applied. Description and
// DueDate additionally allow an explicit JSON null, which clears the
// stored value; the Set flags record presence for those two.
type UpdateTaskRequest struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *string
	Priority       *string
	DueDate        *time.Time
	DueDateSet     bool
}

func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Unknown keys in raw are ignored on purpose.
	if v, ok := raw["title"]; ok {
		s, err := decodeString(v, "title")
		if err != nil {
			return err
		}
		r.Title = s
	}
	if v, ok := raw["status"]; ok {
		s, err := decodeString(v, "status")
		if err != nil {
			return err
		}
		r.Status = s
	}
	if v, ok := raw["priority"]; ok {
		s, err := decodeString(v, "priority")
		if err != nil {
			return err
		}
		r.Priority = s
	}
	if v, ok := raw["description"]; ok {
		r.DescriptionSet = true
		if !isJSONNull(v) {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("description must be a string or null")
			}
			r.Description = &s
		}
	}
	if v, ok := raw["dueDate"]; ok {
		r.DueDateSet = true
		if !isJSONNull(v) {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("dueDate must be a string or null")
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return fmt.Errorf("dueDate must be an RFC 3339 date-time string")
			}
			r.DueDate = &t
		}
	}

	return nil
}

// Empty reports whether the payload carried no recognized field at all.
func (r *UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Status == nil && r.Priority == nil &&
		!r.DescriptionSet && !r.DueDateSet
}

func decodeString(v json.RawMessage, field string) (*string, error) {
	if isJSONNull(v) {
		return nil, fmt.Errorf("%s must not be null", field)
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, fmt.Errorf("%s must be a string", field)
	}
	return &s, nil
}

func isJSONNull(v json.RawMessage) bool {
	return string(v) == "null"
}
