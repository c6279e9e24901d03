package http

import (
	"errors"
	"net/http"

	"voice-todo-assistant/internal/voice"
	pkgErrors "voice-todo-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrNoAudio), errors.Is(err, voice.ErrNoCommand):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, voice.ErrTranscription):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "transcription failed")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
