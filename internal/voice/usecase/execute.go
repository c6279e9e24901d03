package usecase

import (
	"context"
	"errors"
	"strings"

	"voice-todo-assistant/internal/intent"
	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/internal/task/repository"
	"voice-todo-assistant/internal/voice"
)

// execute dispatches a classified command to the task store and builds the
// user-facing result. raw is the full command text, used as the create
// fallback when the classifier left TaskText empty.
func (uc *implUseCase) execute(ctx context.Context, it intent.Intent, raw string) voice.CommandResult {
	switch it.Action {
	case intent.ActionCreate:
		return uc.createTask(ctx, it, raw)
	case intent.ActionComplete:
		return uc.completeTask(ctx, it)
	case intent.ActionUpdate:
		return uc.updateTask(ctx, it)
	case intent.ActionDelete:
		return uc.deleteTask(ctx, it)
	case intent.ActionList:
		return uc.listTasks(ctx)
	default:
		return failure(msgUnclear)
	}
}

func (uc *implUseCase) createTask(ctx context.Context, it intent.Intent, raw string) voice.CommandResult {
	text := strings.TrimSpace(it.TaskText)
	if text == "" {
		text = intent.StripCreationVerb(raw)
	}
	if text == "" {
		return failure(msgClarifyCreate)
	}

	priority := it.Priority
	if priority == "" {
		priority = intent.DerivePriority(text)
	}
	category := it.Category
	if category == "" {
		category = intent.DeriveCategory(text)
	}

	task, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		Text:     text,
		Priority: priority,
		Category: category,
		DueAt:    uc.resolveDue(ctx, it.DuePhrase),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmptyTitle) {
			return failure(msgClarifyCreate)
		}
		uc.l.Errorf(ctx, "voice.usecase.createTask: %v", err)
		return failure(msgCreateFailed)
	}

	uc.scheduleReminder(ctx, task)

	return voice.CommandResult{
		Success: true,
		Message: msgCreated(task.Text),
		TaskID:  task.ID,
	}
}

func (uc *implUseCase) completeTask(ctx context.Context, it intent.Intent) voice.CommandResult {
	target := strings.TrimSpace(it.TargetTask)
	if target == "" {
		return failure(msgClarifyComplete)
	}

	task, result, ok := uc.resolveTarget(ctx, target, msgCompleteFailed)
	if !ok {
		return result
	}

	task, err := uc.repo.Complete(ctx, task.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return failure(msgNotFound(target))
		}
		uc.l.Errorf(ctx, "voice.usecase.completeTask: %v", err)
		return failure(msgCompleteFailed)
	}

	return voice.CommandResult{
		Success: true,
		Message: msgCompleted(task.Text),
		TaskID:  task.ID,
	}
}

func (uc *implUseCase) updateTask(ctx context.Context, it intent.Intent) voice.CommandResult {
	target := strings.TrimSpace(it.TargetTask)
	newText := strings.TrimSpace(it.NewText)
	if target == "" || newText == "" {
		return failure(msgClarifyUpdate)
	}

	task, result, ok := uc.resolveTarget(ctx, target, msgUpdateFailed)
	if !ok {
		return result
	}

	oldText := task.Text
	task, err := uc.repo.Update(ctx, task.ID, newText)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return failure(msgNotFound(target))
		}
		uc.l.Errorf(ctx, "voice.usecase.updateTask: %v", err)
		return failure(msgUpdateFailed)
	}

	return voice.CommandResult{
		Success: true,
		Message: msgUpdated(oldText, task.Text),
		TaskID:  task.ID,
	}
}

func (uc *implUseCase) deleteTask(ctx context.Context, it intent.Intent) voice.CommandResult {
	target := strings.TrimSpace(it.TargetTask)
	if target == "" {
		return failure(msgClarifyDelete)
	}

	// The literal "all" archives the whole collection.
	if strings.EqualFold(target, "all") {
		count, err := uc.repo.DeleteAll(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "voice.usecase.deleteTask.DeleteAll: %v", err)
			return failure(msgDeleteAllFailed)
		}
		if count == 0 {
			return voice.CommandResult{Success: true, Message: msgDeleteAllEmpty}
		}
		return voice.CommandResult{Success: true, Message: msgDeletedAll(count)}
	}

	task, result, ok := uc.resolveTarget(ctx, target, msgDeleteFailed)
	if !ok {
		return result
	}

	if err := uc.repo.Delete(ctx, task.ID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return failure(msgNotFound(target))
		}
		uc.l.Errorf(ctx, "voice.usecase.deleteTask: %v", err)
		return failure(msgDeleteFailed)
	}

	return voice.CommandResult{
		Success: true,
		Message: msgDeleted(task.Text),
		TaskID:  task.ID,
	}
}

func (uc *implUseCase) listTasks(ctx context.Context) voice.CommandResult {
	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.listTasks: %v", err)
		return failure(msgListFailed)
	}

	return voice.CommandResult{
		Success: true,
		Message: msgTaskList(tasks),
		Tasks:   tasks,
	}
}

// resolveTarget turns a target token into a concrete task. Positional tokens
// ("first", "last", "2") resolve by position, everything else by fuzzy title.
func (uc *implUseCase) resolveTarget(ctx context.Context, target, failMsg string) (model.Task, voice.CommandResult, bool) {
	var (
		task model.Task
		err  error
	)
	if repository.IsPositionToken(target) {
		task, err = uc.repo.FindByPosition(ctx, target)
	} else {
		task, err = uc.repo.FindByFuzzyTitle(ctx, target)
	}
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, failure(msgNotFound(target)), false
		}
		uc.l.Errorf(ctx, "voice.usecase.resolveTarget: %v", err)
		return model.Task{}, failure(failMsg), false
	}
	return task, voice.CommandResult{}, true
}
