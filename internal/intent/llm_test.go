package intent

import (
	"context"
	"errors"
	"testing"
	"time"

	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/pkg/llmprovider"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}

type mockGenerator struct {
	content   string
	err       error
	callCount int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: m.content, Usage: &llmprovider.Usage{}}, nil
}

func TestClassifyConfidentRulesSkipFallback(t *testing.T) {
	gen := &mockGenerator{content: `{"action":"list"}`}
	c := New(mockLogger{}, gen, Config{})

	got := c.Classify(context.Background(), "add buy milk", Context{})
	if got.Action != ActionCreate || got.TaskText != "buy milk" {
		t.Fatalf("unexpected intent: %+v", got)
	}
	if gen.callCount != 0 {
		t.Errorf("fallback called for a confident rule match")
	}
}

func TestClassifyShortCommandSkipsFallback(t *testing.T) {
	gen := &mockGenerator{content: `{"action":"list"}`}
	c := New(mockLogger{}, gen, Config{})

	got := c.Classify(context.Background(), "x", Context{})
	if got.Action != ActionUnclear {
		t.Fatalf("expected unclear, got %s", got.Action)
	}
	if gen.callCount != 0 {
		t.Errorf("fallback called for noise-length command")
	}
}

func TestClassifyFallbackOnAmbiguousUpdate(t *testing.T) {
	gen := &mockGenerator{
		content: `{"action":"update","target_task":"buy milk","new_text":"buy oat milk","confidence":0.85}`,
	}
	c := New(mockLogger{}, gen, Config{})

	got := c.Classify(context.Background(), "update the milk thing, oat milk instead", Context{})
	if gen.callCount != 1 {
		t.Fatalf("expected 1 fallback call, got %d", gen.callCount)
	}
	if got.Action != ActionUpdate {
		t.Fatalf("action = %s, want update", got.Action)
	}
	if got.TargetTask != "buy milk" || got.NewText != "buy oat milk" {
		t.Errorf("fields not mapped: %+v", got)
	}
	if got.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", got.Confidence)
	}
}

func TestClassifyFallbackErrorKeepsRuleResult(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	c := New(mockLogger{}, gen, Config{})

	got := c.Classify(context.Background(), "update the milk thing, oat milk instead", Context{})
	if got.Action != ActionUpdate || got.Confidence != ConfidenceAmbiguousUpdate {
		t.Fatalf("expected ambiguous rule result to survive, got %+v", got)
	}
}

func TestClassifyFallbackResultIsCached(t *testing.T) {
	gen := &mockGenerator{
		content: `{"action":"update","target_task":"milk","new_text":"oat milk","confidence":0.8}`,
	}
	c := New(mockLogger{}, gen, Config{CacheSize: 16, CacheTTL: time.Minute})

	cmd := "update the milk thing, oat milk instead"
	first := c.Classify(context.Background(), cmd, Context{})
	second := c.Classify(context.Background(), cmd, Context{})

	if gen.callCount != 1 {
		t.Fatalf("expected 1 fallback call with caching, got %d", gen.callCount)
	}
	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestClassifyNilGeneratorRulesOnly(t *testing.T) {
	c := New(mockLogger{}, nil, Config{})
	got := c.Classify(context.Background(), "update the milk thing, oat milk instead", Context{})
	if got.Action != ActionUpdate || got.Confidence != ConfidenceAmbiguousUpdate {
		t.Fatalf("expected rule result with nil generator, got %+v", got)
	}
}

func TestParseClassifierResponse(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		got, err := parseClassifierResponse(
			`{"action":"create","task_text":"buy milk","priority":"high","category":"shopping","due":"tomorrow","confidence":0.9}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Action != ActionCreate || got.TaskText != "buy milk" {
			t.Errorf("unexpected intent: %+v", got)
		}
		if got.Priority != model.PriorityHigh || got.Category != model.CategoryShopping {
			t.Errorf("hints not mapped: %+v", got)
		}
		if got.DuePhrase != "tomorrow" {
			t.Errorf("due phrase not mapped: %q", got.DuePhrase)
		}
	})

	t.Run("fenced with surrounding prose", func(t *testing.T) {
		raw := "Here is the result:\n```json\n{\"action\":\"list\",\"confidence\":0.7}\n```\nHope that helps."
		got, err := parseClassifierResponse(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Action != ActionList || got.Confidence != 0.7 {
			t.Errorf("unexpected intent: %+v", got)
		}
	})

	t.Run("missing fields get defaults", func(t *testing.T) {
		got, err := parseClassifierResponse(`{"action":"create","task_text":"call mom"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Priority != model.PriorityMedium {
			t.Errorf("priority default = %s, want medium", got.Priority)
		}
		if got.Category != model.CategoryOther {
			t.Errorf("category default = %s, want other", got.Category)
		}
		if got.Confidence != ConfidenceFallbackParse {
			t.Errorf("confidence default = %v", got.Confidence)
		}
	})

	t.Run("unknown action becomes unclear", func(t *testing.T) {
		got, err := parseClassifierResponse(`{"action":"summarize","confidence":0.9}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Action != ActionUnclear {
			t.Errorf("action = %s, want unclear", got.Action)
		}
	})

	t.Run("nested braces in strings", func(t *testing.T) {
		got, err := parseClassifierResponse(`{"action":"create","task_text":"fix {braces} bug","confidence":0.8}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TaskText != "fix {braces} bug" {
			t.Errorf("taskText = %q", got.TaskText)
		}
	})

	t.Run("no object", func(t *testing.T) {
		if _, err := parseClassifierResponse("sorry, I cannot help with that"); err == nil {
			t.Fatalf("expected error for output without JSON")
		}
	})
}

func TestReducedHeuristic(t *testing.T) {
	unclear := Intent{Action: ActionUnclear, Confidence: ConfidenceUnclear}

	got := reducedHeuristic("done the thing somehow", unclear)
	if got.Action != ActionComplete {
		t.Errorf("expected complete, got %s", got.Action)
	}

	got = reducedHeuristic("mumble mumble", unclear)
	if got.Action != ActionUnclear || got.Confidence != ConfidenceUnclear {
		t.Errorf("expected unclear, got %+v", got)
	}

	ruled := Intent{Action: ActionUpdate, Confidence: ConfidenceAmbiguousUpdate}
	if got := reducedHeuristic("whatever", ruled); got != ruled {
		t.Errorf("non-unclear rule result must pass through, got %+v", got)
	}
}
