package repository

import "errors"

var (
	// ErrTaskNotFound is returned when no task matches the lookup.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a task would be created with a blank title.
	ErrEmptyTitle = errors.New("task title is empty")

	// ErrCollectionUnavailable is returned when the task database could not be
	// resolved or created.
	ErrCollectionUnavailable = errors.New("task collection unavailable")
)
