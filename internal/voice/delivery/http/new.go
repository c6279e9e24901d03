package http

import (
	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/log"
)

// Handler is the public interface for the voice HTTP delivery layer.
type Handler interface {
	ProcessCommand(c interface{})
	Transcribe(c interface{})
}

type handler struct {
	l  log.Logger
	uc voice.UseCase
}

// New creates a new HTTP handler for the voice domain.
func New(l log.Logger, uc voice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
