package intent

import "fmt"

// classifierSystemPrompt instructs the model to return a single JSON object
// with the Intent shape. Kept deliberately rigid: low temperature plus an
// explicit example keeps the output parseable.
const classifierSystemPrompt = `You are an intent classifier for a voice-driven todo assistant.
Interpret the user's command and return ONE JSON object. No markdown, no code blocks, no explanation.

Fields:
- "action": exactly one of "create", "complete", "update", "delete", "list", "unclear"
- "task_text": the cleaned task description (create only, otherwise empty)
- "target_task": reference to an existing task - free text to match against titles, or a position token like "first", "last", "2" (complete/update/delete only)
- "new_text": the replacement title (update only)
- "priority": one of "high", "medium", "low" (default "medium")
- "category": one of "work", "personal", "shopping", "email", "other" (default "other")
- "due": a relative due phrase like "today", "tomorrow", "next monday", "in 3 days" - empty when none was spoken
- "confidence": a number between 0.0 and 1.0

If the command cannot be interpreted as a task operation, use action "unclear".

EXAMPLE INPUT:
"I really need to remember to send the quarterly numbers to Anna by tomorrow"

EXAMPLE OUTPUT:
{"action":"create","task_text":"send the quarterly numbers to Anna","target_task":"","new_text":"","priority":"medium","category":"work","due":"tomorrow","confidence":0.85}`

// buildClassifierPrompt assembles the full prompt for one command.
func buildClassifierPrompt(command, timeContext, currentListID string) string {
	prompt := classifierSystemPrompt + timeContext
	if currentListID != "" {
		prompt += fmt.Sprintf("\n\nThe user is working in task list %q.", currentListID)
	}
	return prompt + "\n\nNow classify the following command and return ONLY the JSON object:\n" + command
}
