package usecase

import (
	"fmt"
	"strings"

	"voice-todo-assistant/internal/model"
)

// Fixed reply templates. Delivery layers and the synthesizer speak these
// verbatim, so keep them short and pronounceable.
const (
	msgNoCommand        = "No command provided"
	msgAudioFailed      = "Sorry, I couldn't process that audio"
	msgUnclear          = `I didn't catch that. Try something like "add buy milk", "complete first" or "show my tasks".`
	msgClarifyCreate    = "What should I add to your list?"
	msgClarifyComplete  = "Which task do you want to complete?"
	msgClarifyDelete    = "Which task do you want to delete?"
	msgClarifyUpdate    = "Which task do you want to update, and what should it say?"
	msgCreateFailed     = "Failed to add the task"
	msgCompleteFailed   = "Failed to complete the task"
	msgUpdateFailed     = "Failed to update the task"
	msgDeleteFailed     = "Failed to delete the task"
	msgDeleteAllFailed  = "Failed to delete your tasks"
	msgListFailed       = "Failed to fetch your tasks"
	msgCollectionFailed = "Failed to reach your task list"
	msgDeleteAllEmpty   = "Your list was already empty"
	msgListEmpty        = "You have no tasks"
)

func msgCreated(title string) string {
	return fmt.Sprintf("Added %q to your tasks", title)
}

func msgCompleted(title string) string {
	return fmt.Sprintf("Completed %q", title)
}

func msgUpdated(oldTitle, newTitle string) string {
	return fmt.Sprintf("Updated %q to %q", oldTitle, newTitle)
}

func msgDeleted(title string) string {
	return fmt.Sprintf("Deleted %q", title)
}

func msgDeletedAll(count int) string {
	if count == 1 {
		return "Deleted 1 task"
	}
	return fmt.Sprintf("Deleted %d tasks", count)
}

func msgNotFound(query string) string {
	return fmt.Sprintf("I couldn't find a task matching %q", query)
}

func msgTaskList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return msgListEmpty
	}

	var b strings.Builder
	if len(tasks) == 1 {
		b.WriteString("You have 1 task: ")
	} else {
		fmt.Fprintf(&b, "You have %d tasks: ", len(tasks))
	}
	for i, t := range tasks {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, t.Text)
		if t.Done() {
			b.WriteString(" (done)")
		}
	}
	return b.String()
}
