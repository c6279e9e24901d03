package model

import "time"

// Status is the completion state of a task. The transition is forward-only:
// a task moves from StatusTodo to StatusDone and stays there.
type Status string

const (
	StatusTodo Status = "todo"
	StatusDone Status = "done"
)

// Priority of a task. Defaults to PriorityMedium when not derivable from the
// originating command.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank of a priority (high sorts first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Valid reports whether p is a known priority value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Category is a coarse task classification derived heuristically from the
// command text. Closed set, CategoryOther is the default.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryShopping Category = "shopping"
	CategoryEmail    Category = "email"
	CategoryOther    Category = "other"
)

// Valid reports whether c is a known category value.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryShopping, CategoryEmail, CategoryOther:
		return true
	}
	return false
}

// Task is one todo item as stored in the task database.
// The repository owns the authoritative copy; callers hold request-scoped
// snapshots only.
type Task struct {
	ID        string    // Opaque store id (Notion page id), immutable
	Text      string    // Human-readable title, non-empty
	Status    Status    // todo | done
	Priority  Priority  // high | medium | low
	Category  Category  // work | personal | shopping | email | other
	CreatedAt time.Time // Set once at creation
	DueAt     time.Time // Zero when no due date was given
	Archived  bool      // Soft-delete flag (Notion archive)
}

// Done reports whether the task has been completed.
func (t Task) Done() bool {
	return t.Status == StatusDone
}
