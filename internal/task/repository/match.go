package repository

import (
	"sort"
	"strconv"
	"strings"

	"voice-todo-assistant/internal/model"
)

// MatchByTitle resolves a task from a free-text reference. Matching order:
// exact case-insensitive title equality, then substring containment in either
// direction, then any shared word. The first hit under that order wins.
func MatchByTitle(tasks []model.Task, query string) (model.Task, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return model.Task{}, false
	}

	for _, t := range tasks {
		if strings.ToLower(t.Text) == q {
			return t, true
		}
	}

	for _, t := range tasks {
		title := strings.ToLower(t.Text)
		if strings.Contains(title, q) || strings.Contains(q, title) {
			return t, true
		}
	}

	queryWords := strings.Fields(q)
	for _, t := range tasks {
		titleWords := strings.Fields(strings.ToLower(t.Text))
		for _, qw := range queryWords {
			for _, tw := range titleWords {
				if qw == tw {
					return t, true
				}
			}
		}
	}

	return model.Task{}, false
}

// MatchByPosition resolves "first", "last" or a 1-based numeric token against
// the incomplete tasks, sorted by priority (high first) then creation order.
func MatchByPosition(tasks []model.Task, token string) (model.Task, bool) {
	open := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Done() {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return model.Task{}, false
	}

	sort.SliceStable(open, func(i, j int) bool {
		if open[i].Priority.Rank() != open[j].Priority.Rank() {
			return open[i].Priority.Rank() < open[j].Priority.Rank()
		}
		return open[i].CreatedAt.Before(open[j].CreatedAt)
	})

	idx := -1
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "first":
		idx = 0
	case "last":
		idx = len(open) - 1
	default:
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return model.Task{}, false
		}
		idx = n - 1
	}

	if idx < 0 || idx >= len(open) {
		return model.Task{}, false
	}
	return open[idx], true
}

// SortForDisplay orders tasks incomplete-first, then priority high-before-low,
// then creation order. Used both for listing and as the base order for
// positional resolution.
func SortForDisplay(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Done() != tasks[j].Done() {
			return !tasks[i].Done()
		}
		if tasks[i].Priority.Rank() != tasks[j].Priority.Rank() {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

// OrdinalToken translates an ordinal word to a positional token understood by
// MatchByPosition. Returns "" when the word is not a known ordinal.
func OrdinalToken(word string) string {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "first", "1st":
		return "first"
	case "second", "2nd":
		return "2"
	case "third", "3rd":
		return "3"
	case "fourth", "4th":
		return "4"
	case "fifth", "5th":
		return "5"
	case "last":
		return "last"
	}
	return ""
}

// IsPositionToken reports whether the target reference is positional
// ("first", "last", or a 1-based index) rather than free text.
func IsPositionToken(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "first" || t == "last" {
		return true
	}
	if t == "" {
		return false
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
