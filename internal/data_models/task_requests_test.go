package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func decode(t *testing.T, payload string) *UpdateTaskRequest {
	t.Helper()
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return &req
}

func TestUpdateRequest_AbsentNullAndValue(t *testing.T) {
	// Absent: nothing recorded.
	req := decode(t, `{"title":"renamed"}`)
	if req.DueDateSet || req.DescriptionSet {
		t.Error("absent fields must not be marked present")
	}
	if req.Title == nil || *req.Title != "renamed" {
		t.Error("expected title to be captured")
	}

	// Null: present but cleared.
	req = decode(t, `{"dueDate":null,"description":null}`)
	if !req.DueDateSet || req.DueDate != nil {
		t.Error("null dueDate must be present with no value")
	}
	if !req.DescriptionSet || req.Description != nil {
		t.Error("null description must be present with no value")
	}

	// Value: present and parsed.
	req = decode(t, `{"dueDate":"2026-09-15T09:00:00Z"}`)
	if !req.DueDateSet || req.DueDate == nil {
		t.Fatal("expected dueDate to be present with a value")
	}
	want := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	if !req.DueDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, req.DueDate)
	}
}

func TestUpdateRequest_UnknownFieldsIgnored(t *testing.T) {
	req := decode(t, `{"sprint":7,"owner":"me"}`)
	if !req.Empty() {
		t.Error("unknown fields must not count as recognized")
	}

	req = decode(t, `{"sprint":7,"status":"COMPLETED"}`)
	if req.Empty() || req.Status == nil || *req.Status != "COMPLETED" {
		t.Error("recognized fields must survive alongside unknown ones")
	}
}

func TestUpdateRequest_RejectsNullOnNonNullableFields(t *testing.T) {
	for _, payload := range []string{`{"title":null}`, `{"status":null}`, `{"priority":null}`} {
		var req UpdateTaskRequest
		if err := json.Unmarshal([]byte(payload), &req); err == nil {
			t.Errorf("payload %s: expected decode error", payload)
		}
	}
}

func TestUpdateRequest_RejectsMalformedDueDate(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"dueDate":"next tuesday"}`), &req); err == nil {
		t.Error("expected decode error for a non-RFC3339 dueDate")
	}
}
