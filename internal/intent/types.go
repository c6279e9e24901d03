package intent

import "voice-todo-assistant/internal/model"

// Action is what the user wants done with their task list.
type Action string

const (
	ActionCreate   Action = "create"
	ActionComplete Action = "complete"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionList     Action = "list"
	ActionUnclear  Action = "unclear"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionComplete, ActionUpdate, ActionDelete, ActionList, ActionUnclear:
		return true
	}
	return false
}

// Intent is the structured interpretation of one command, discriminated by
// Action. It is transient: built per command, never persisted.
type Intent struct {
	Action Action

	// TaskText is the cleaned task description (create only).
	TaskText string

	// TargetTask references an existing task (complete/update/delete): either
	// free text to fuzzy-match against titles, or a positional token
	// ("first", "last", "2", "3", ...).
	TargetTask string

	// NewText is the replacement title (update only).
	NewText string

	// Priority/Category hints derived from the command (create only; zero
	// values mean "use store defaults").
	Priority model.Priority
	Category model.Category

	// DuePhrase is an optional relative due phrase ("tomorrow", "next monday")
	// extracted by the generative fallback.
	DuePhrase string

	// Confidence in [0,1]. Routing/uncertainty signal only; never persisted.
	Confidence float64
}

// Context is the optional classification context.
type Context struct {
	// CurrentListID is the task database the session is pinned to, if any.
	CurrentListID string
}
