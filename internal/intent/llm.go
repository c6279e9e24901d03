package intent

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/pkg/llmprovider"
	"voice-todo-assistant/pkg/log"
)

// ContentGenerator is the slice of llmprovider.Manager the classifier needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds classifier settings.
type Config struct {
	// Timezone renders the date context in the fallback prompt ("UTC" when empty).
	Timezone string

	// CacheSize bounds the fallback result cache (0 disables caching).
	CacheSize int

	// CacheTTL expires cached fallback results.
	CacheTTL time.Duration
}

type implClassifier struct {
	l         log.Logger
	generator ContentGenerator
	cache     *expirable.LRU[string, Intent]
	timezone  string
	now       func() time.Time
}

// New creates the two-tier classifier. generator may be nil, which disables
// the generative fallback and leaves only the deterministic rules.
func New(l log.Logger, generator ContentGenerator, cfg Config) Classifier {
	c := &implClassifier{
		l:         l,
		generator: generator,
		timezone:  cfg.Timezone,
		now:       time.Now,
	}
	if cfg.CacheSize > 0 {
		c.cache = expirable.NewLRU[string, Intent](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return c
}

// Classify resolves text into an Intent. Deterministic rules run first;
// the generative fallback only fires when they are inconclusive.
func (c *implClassifier) Classify(ctx context.Context, command string, ictx Context) Intent {
	ruled := classifyRules(command)
	if !c.needsFallback(command, ruled) {
		return ruled
	}

	key := cacheKey(command, ictx)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached
		}
	}

	parsed, err := c.generate(ctx, command, ictx)
	if err != nil {
		c.l.Warnf(ctx, "intent: generative fallback failed, using rule result: %v", err)
		return reducedHeuristic(command, ruled)
	}

	if c.cache != nil {
		c.cache.Add(key, parsed)
	}
	return parsed
}

// needsFallback decides whether the rule result is inconclusive. Commands at
// or below the noise threshold never reach the model; they stay unclear so
// the caller can ask for clarification deterministically.
func (c *implClassifier) needsFallback(command string, ruled Intent) bool {
	if c.generator == nil {
		return false
	}
	if len(strings.TrimSpace(command)) <= minCommandLength {
		return false
	}
	return ruled.Action == ActionUnclear || ruled.Confidence <= ConfidenceAmbiguousUpdate
}

func (c *implClassifier) generate(ctx context.Context, command string, ictx Context) (Intent, error) {
	prompt := buildClassifierPrompt(command, buildTimeContext(c.timezone, c.now()), ictx.CurrentListID)

	resp, err := c.generator.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Text: prompt}},
		Temperature: fallbackTemperature,
		MaxTokens:   fallbackMaxTokens,
	})
	if err != nil {
		return Intent{}, err
	}

	return parseClassifierResponse(resp.Content)
}

// llmIntent is the JSON shape the model is instructed to return.
type llmIntent struct {
	Action     string  `json:"action"`
	TaskText   string  `json:"task_text"`
	TargetTask string  `json:"target_task"`
	NewText    string  `json:"new_text"`
	Priority   string  `json:"priority"`
	Category   string  `json:"category"`
	Due        string  `json:"due"`
	Confidence float64 `json:"confidence"`
}

// parseClassifierResponse extracts the first balanced JSON object from the
// model output and maps it onto an Intent, defaulting missing fields.
func parseClassifierResponse(raw string) (Intent, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return Intent{}, err
	}

	var parsed llmIntent
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return Intent{}, err
	}

	action := Action(strings.ToLower(strings.TrimSpace(parsed.Action)))
	if !action.Valid() {
		action = ActionUnclear
	}

	confidence := parsed.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = ConfidenceFallbackParse
	}

	intent := Intent{
		Action:     action,
		TaskText:   strings.TrimSpace(parsed.TaskText),
		TargetTask: strings.TrimSpace(parsed.TargetTask),
		NewText:    strings.TrimSpace(parsed.NewText),
		DuePhrase:  strings.TrimSpace(strings.ToLower(parsed.Due)),
		Confidence: confidence,
	}

	if p := model.Priority(strings.ToLower(parsed.Priority)); p.Valid() {
		intent.Priority = p
	} else {
		intent.Priority = model.PriorityMedium
	}
	if cat := model.Category(strings.ToLower(parsed.Category)); cat.Valid() {
		intent.Category = cat
	} else {
		intent.Category = model.CategoryOther
	}

	return intent, nil
}

// extractJSONObject strips markdown fences and returns the first balanced
// {...} substring. Brace counting skips over string literals.
func extractJSONObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", errNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errNoJSONObject
}

// reducedHeuristic is the last resort when the model call fails: the same
// keyword families as the rules, simplified to bare containment checks.
func reducedHeuristic(command string, ruled Intent) Intent {
	if ruled.Action != ActionUnclear {
		return ruled
	}

	lowered := strings.ToLower(strings.TrimSpace(command))
	switch {
	case containsAny(lowered, completionKeywords):
		return Intent{Action: ActionComplete, TargetTask: lowered, Confidence: ConfidenceFallbackParse}
	case containsAny(lowered, deletionKeywords):
		return Intent{Action: ActionDelete, TargetTask: lowered, Confidence: ConfidenceFallbackParse}
	case containsAny(lowered, listKeywords):
		return Intent{Action: ActionList, Confidence: ConfidenceFallbackParse}
	}
	return Intent{Action: ActionUnclear, Confidence: ConfidenceUnclear}
}

func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

func cacheKey(command string, ictx Context) string {
	return strings.ToLower(strings.TrimSpace(command)) + "|" + ictx.CurrentListID
}
