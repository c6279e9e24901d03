package usecase

import (
	"context"
	"time"

	"voice-todo-assistant/internal/intent"
	"voice-todo-assistant/internal/task/repository"
	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/datemath"
	"voice-todo-assistant/pkg/gcalendar"
	"voice-todo-assistant/pkg/log"
)

// CalendarScheduler creates reminder events for tasks that carry a due date.
type CalendarScheduler interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the orchestrator.
type Config struct {
	// Timezone resolves relative due phrases ("tomorrow"). Defaults to UTC
	// when empty or unknown.
	Timezone string

	// CalendarID receives reminder events when a calendar is wired in.
	// Empty means the client default.
	CalendarID string
}

// implUseCase is the private implementation of voice.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.TaskRepository
	classifier  intent.Classifier
	transcriber voice.Transcriber
	synthesizer voice.Synthesizer
	calendar    CalendarScheduler
	dates       *datemath.Parser
	cfg         Config
	now         func() time.Time
}

// New creates a new voice UseCase implementation. transcriber, synthesizer
// and calendar are optional; nil disables the corresponding pipeline stage.
func New(l log.Logger, repo repository.TaskRepository, classifier intent.Classifier, transcriber voice.Transcriber, synthesizer voice.Synthesizer, calendar CalendarScheduler, cfg Config) *implUseCase {
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		l.Warnf(context.Background(), "voice.usecase.New.datemath: unknown timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	return &implUseCase{
		l:           l,
		repo:        repo,
		classifier:  classifier,
		transcriber: transcriber,
		synthesizer: synthesizer,
		calendar:    calendar,
		dates:       dates,
		cfg:         cfg,
		now:         time.Now,
	}
}
