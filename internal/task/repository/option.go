package repository

import (
	"time"

	"voice-todo-assistant/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Text     string         // Task title, required
	Priority model.Priority // Defaults to medium when empty/unknown
	Category model.Category // Defaults to other when empty/unknown
	DueAt    time.Time      // Optional due date (zero = none)
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	OnlyOpen     bool      // Restrict to incomplete tasks
	CreatedAfter time.Time // Restrict to tasks created at/after this instant (zero = no filter)
	Limit        int       // Max results (default 100)
}
