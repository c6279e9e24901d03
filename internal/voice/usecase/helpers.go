package usecase

import (
	"context"
	"time"

	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/pkg/gcalendar"
)

const (
	reminderHour     = 9 * time.Hour
	reminderDuration = 30 * time.Minute
)

// resolveDue turns a relative due phrase into a concrete date. Unresolvable
// phrases are dropped rather than failing the command.
func (uc *implUseCase) resolveDue(ctx context.Context, phrase string) time.Time {
	if phrase == "" {
		return time.Time{}
	}

	due, err := uc.dates.Parse(phrase, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "voice.usecase.resolveDue: could not parse %q: %v", phrase, err)
		return time.Time{}
	}
	return due
}

// scheduleReminder creates a calendar event for a task with a due date.
// Best-effort: the task was already stored, so calendar failures are only
// logged.
func (uc *implUseCase) scheduleReminder(ctx context.Context, task model.Task) {
	if uc.calendar == nil || task.DueAt.IsZero() {
		return
	}

	start := task.DueAt.Add(reminderHour)
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     "Todo: " + task.Text,
		Description: "Reminder for task " + task.ID,
		StartTime:   start,
		EndTime:     start.Add(reminderDuration),
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "voice.usecase.scheduleReminder: %v", err)
		return
	}
	uc.l.Infof(ctx, "voice.usecase.scheduleReminder: reminder scheduled for task %s at %s", task.ID, start.Format(time.RFC3339))
}
