package intent

import (
	"strings"

	"voice-todo-assistant/internal/model"
)

// Keyword tables for priority/category derivation. Matching is plain
// substring containment on the lowered text: good enough for the short
// utterances this pipeline sees.
var (
	highPriorityWords = []string{"urgent", "asap", "important", "immediately", "critical", "right away"}
	lowPriorityWords  = []string{"sometime", "whenever", "eventually", "no rush", "someday", "low priority"}

	categoryWords = map[model.Category][]string{
		model.CategoryEmail:    {"email", "e-mail", "reply to", "inbox"},
		model.CategoryShopping: {"buy", "purchase", "shop", "grocery", "groceries", "order"},
		model.CategoryWork:     {"meeting", "report", "project", "deadline", "presentation", "client", "review"},
		model.CategoryPersonal: {"doctor", "dentist", "gym", "birthday", "family", "call mom", "call dad"},
	}

	// categoryOrder fixes the check order so overlapping keywords resolve
	// deterministically (email before shopping: "order a reply email").
	categoryOrder = []model.Category{
		model.CategoryEmail,
		model.CategoryShopping,
		model.CategoryWork,
		model.CategoryPersonal,
	}
)

// DerivePriority guesses a priority from the command text.
func DerivePriority(text string) model.Priority {
	lowered := strings.ToLower(text)
	for _, w := range highPriorityWords {
		if strings.Contains(lowered, w) {
			return model.PriorityHigh
		}
	}
	for _, w := range lowPriorityWords {
		if strings.Contains(lowered, w) {
			return model.PriorityLow
		}
	}
	return model.PriorityMedium
}

// DeriveCategory guesses a category from the command text.
func DeriveCategory(text string) model.Category {
	lowered := strings.ToLower(text)
	for _, c := range categoryOrder {
		for _, w := range categoryWords[c] {
			if strings.Contains(lowered, w) {
				return c
			}
		}
	}
	return model.CategoryOther
}
