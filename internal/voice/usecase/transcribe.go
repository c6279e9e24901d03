package usecase

import (
	"context"
	"fmt"

	"voice-todo-assistant/internal/voice"
)

// Transcribe runs a bare transcription without classifying or executing.
func (uc *implUseCase) Transcribe(ctx context.Context, input voice.TranscribeInput) (voice.TranscribeOutput, error) {
	transcript, err := uc.transcribeAudio(ctx, input.Audio)
	if err != nil {
		return voice.TranscribeOutput{}, err
	}

	return voice.TranscribeOutput{
		Text:       transcript.Text,
		Confidence: transcript.Confidence,
		Language:   transcript.Language,
	}, nil
}

func (uc *implUseCase) transcribeAudio(ctx context.Context, audio voice.AudioInput) (voice.Transcript, error) {
	if uc.transcriber == nil {
		return voice.Transcript{}, fmt.Errorf("%w: no transcriber configured", voice.ErrTranscription)
	}
	if len(audio.Data) == 0 {
		return voice.Transcript{}, voice.ErrNoAudio
	}
	return uc.transcriber.Transcribe(ctx, audio)
}
