package intent

import (
	"context"
)

// Classifier turns a transcribed command into a structured Intent.
// Implementations are safe for concurrent use.
type Classifier interface {
	// Classify resolves text into an Intent. It never returns an error for
	// uninterpretable input; that is ActionUnclear. Errors are reserved for
	// broken infrastructure, and even then the rule-based result is returned
	// alongside a nil error whenever possible.
	Classify(ctx context.Context, command string, ictx Context) Intent
}
