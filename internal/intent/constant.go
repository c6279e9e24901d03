package intent

// Tier-1 classification confidences.
const (
	ConfidenceKeyword         = 0.9 // direct keyword hit
	ConfidencePastTense       = 0.8 // past-tense completion template
	ConfidenceDefaultCreate   = 0.6 // whole utterance treated as a new task
	ConfidenceAmbiguousUpdate = 0.3 // update trigger without a parseable template
	ConfidenceFallbackParse   = 0.3 // reduced heuristic after an LLM failure
	ConfidenceUnclear         = 0.1
)

// minCommandLength is the trimmed length below which a command is unclear.
const minCommandLength = 2

// Generative fallback settings. Low temperature keeps the JSON parseable.
const (
	fallbackTemperature = 0.1
	fallbackMaxTokens   = 256
)

// Keyword families checked in fixed priority order: completion and deletion
// before creation so "bought milk" never becomes a task called "bought milk".
var (
	completionKeywords = []string{"mark as done", "check off", "tick off", "complete", "finish", "done"}

	// Past-tense verbs that signal an already-finished task.
	pastTenseVerbs = []string{"bought", "sent", "finished", "completed", "paid", "ordered", "called", "emailed", "booked", "returned"}

	deletionKeywords = []string{"delete", "remove", "cancel", "drop"}

	updateKeywords = []string{"update", "change", "modify", "edit"}

	listKeywords = []string{"show", "list", "what", "display", "my tasks", "my todos", "pending"}
	listTokens   = []string{"tasks", "todos"}

	creationVerbs = []string{"add", "create", "new", "make"}
)

// ordinalTokens maps ordinal words in a command to positional tokens.
var ordinalTokens = map[string]string{
	"first":  "first",
	"second": "2",
	"third":  "3",
	"fourth": "4",
	"fifth":  "5",
	"last":   "last",
}
