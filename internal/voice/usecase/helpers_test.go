package usecase

import (
	"context"

	"voice-todo-assistant/internal/intent"
	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/internal/task/repository"
	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/gcalendar"
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

// fakeRepo records every call and serves canned results.
type fakeRepo struct {
	ensureCalls int
	ensureErr   error

	created      []repository.CreateTaskOptions
	createResult model.Task
	createErr    error

	titleQueries    []string
	positionQueries []string
	findResult      model.Task
	findErr         error

	completedIDs   []string
	completeResult model.Task
	completeErr    error

	updatedIDs   []string
	updatedTexts []string
	updateResult model.Task
	updateErr    error

	deletedIDs []string
	deleteErr  error

	deleteAllCalls int
	deleteAllCount int
	deleteAllErr   error

	listResult []model.Task
	listErr    error
}

func (f *fakeRepo) EnsureCollection(ctx context.Context) (string, error) {
	f.ensureCalls++
	if f.ensureErr != nil {
		return "", f.ensureErr
	}
	return "db-1", nil
}

func (f *fakeRepo) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	f.created = append(f.created, opt)
	if f.createErr != nil {
		return model.Task{}, f.createErr
	}
	if f.createResult.ID != "" {
		return f.createResult, nil
	}
	return model.Task{
		ID:       "task-1",
		Text:     opt.Text,
		Status:   model.StatusTodo,
		Priority: opt.Priority,
		Category: opt.Category,
		DueAt:    opt.DueAt,
	}, nil
}

func (f *fakeRepo) FindByFuzzyTitle(ctx context.Context, query string) (model.Task, error) {
	f.titleQueries = append(f.titleQueries, query)
	return f.findResult, f.findErr
}

func (f *fakeRepo) FindByPosition(ctx context.Context, token string) (model.Task, error) {
	f.positionQueries = append(f.positionQueries, token)
	return f.findResult, f.findErr
}

func (f *fakeRepo) Complete(ctx context.Context, taskID string) (model.Task, error) {
	f.completedIDs = append(f.completedIDs, taskID)
	return f.completeResult, f.completeErr
}

func (f *fakeRepo) Update(ctx context.Context, taskID, newText string) (model.Task, error) {
	f.updatedIDs = append(f.updatedIDs, taskID)
	f.updatedTexts = append(f.updatedTexts, newText)
	return f.updateResult, f.updateErr
}

func (f *fakeRepo) Delete(ctx context.Context, taskID string) error {
	f.deletedIDs = append(f.deletedIDs, taskID)
	return f.deleteErr
}

func (f *fakeRepo) DeleteAll(ctx context.Context) (int, error) {
	f.deleteAllCalls++
	return f.deleteAllCount, f.deleteAllErr
}

func (f *fakeRepo) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return f.listResult, f.listErr
}

// fakeClassifier returns one canned intent.
type fakeClassifier struct {
	result intent.Intent
}

func (f *fakeClassifier) Classify(ctx context.Context, command string, ictx intent.Context) intent.Intent {
	return f.result
}

type fakeTranscriber struct {
	transcript voice.Transcript
	err        error
	gotAudio   voice.AudioInput
	calls      int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio voice.AudioInput) (voice.Transcript, error) {
	f.calls++
	f.gotAudio = audio
	if f.err != nil {
		return voice.Transcript{}, f.err
	}
	return f.transcript, nil
}

type fakeSynthesizer struct {
	out      voice.SynthesisOutput
	err      error
	gotInput voice.SynthesisInput
	calls    int
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, input voice.SynthesisInput) (voice.SynthesisOutput, error) {
	f.calls++
	f.gotInput = input
	if f.err != nil {
		return voice.SynthesisOutput{}, f.err
	}
	return f.out, nil
}

type fakeCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{ID: "evt-1"}, nil
}

// newRulesUseCase wires the real Tier-1 classifier over a fake store.
func newRulesUseCase(repo *fakeRepo) *implUseCase {
	classifier := intent.New(mockLogger{}, nil, intent.Config{})
	return New(mockLogger{}, repo, classifier, nil, nil, nil, Config{})
}
