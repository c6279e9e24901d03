package repository

import (
	"context"

	"voice-todo-assistant/internal/model"
)

// TaskRepository is the storage contract for the task collection.
// Implementations are safe for concurrent use. All operations resolve the
// collection through EnsureCollection semantics: the collection is searched
// for by name and created with the canonical schema when absent.
type TaskRepository interface {
	// EnsureCollection resolves (or lazily creates) the task database and
	// returns its id. The result is cached via the injected CollectionCache.
	EnsureCollection(ctx context.Context) (string, error)

	// Create inserts a new task. Fails with ErrEmptyTitle when the text is
	// blank. Priority/category fall back to their defaults when the hints
	// are absent or unknown.
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// FindByFuzzyTitle resolves a task by title using exact, then substring,
	// then shared-word matching. Returns ErrTaskNotFound when nothing matches.
	FindByFuzzyTitle(ctx context.Context, query string) (model.Task, error)

	// FindByPosition resolves "first", "last" or a 1-based numeric token
	// against the incomplete tasks sorted by priority then creation order.
	// Returns ErrTaskNotFound when the position is out of range.
	FindByPosition(ctx context.Context, token string) (model.Task, error)

	// Complete marks the task done. Completing an already-done task is a no-op
	// that still succeeds (idempotent). Stale ids fail with ErrTaskNotFound.
	Complete(ctx context.Context, taskID string) (model.Task, error)

	// Update replaces the task title only; all other fields are untouched.
	Update(ctx context.Context, taskID, newText string) (model.Task, error)

	// Delete archives the task (soft delete).
	Delete(ctx context.Context, taskID string) error

	// DeleteAll archives every non-archived task in the collection and
	// returns the number archived.
	DeleteAll(ctx context.Context) (int, error)

	// List returns the visible tasks sorted incomplete-first, then priority
	// high-before-low, then creation order.
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
