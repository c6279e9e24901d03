package intent

import (
	"fmt"
	"time"
)

const dateFormatISO = "2006-01-02"

const timeContextTemplate = `

[SYSTEM CONTEXT - current time]
- Today: %s (%s)
- Tomorrow: %s

RULES:
1. Resolve relative due phrases against the dates above.
2. Never ask the user for a concrete date.
3. Keep the "due" field as the relative phrase the user spoke, not a resolved date.`

// buildTimeContext renders today's date into the prompt so the model can
// anchor relative phrases.
func buildTimeContext(timezone string, now time.Time) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	now = now.In(loc)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		timeContextTemplate,
		now.Format(dateFormatISO),
		now.Weekday().String(),
		tomorrow.Format(dateFormatISO),
	)
}
