package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description *string                `json:"description"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	DueDate     *time.Time             `json:"dueDate"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
