package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/gemini"
)

// geminiTranscriber adapts the multimodal Gemini client to voice.Transcriber.
type geminiTranscriber struct {
	client gemini.IGemini
}

// NewGeminiTranscriber creates a Transcriber over the Gemini API.
func NewGeminiTranscriber(client gemini.IGemini) voice.Transcriber {
	return &geminiTranscriber{client: client}
}

func (t *geminiTranscriber) Transcribe(ctx context.Context, input voice.AudioInput) (voice.Transcript, error) {
	if len(input.Data) == 0 {
		return voice.Transcript{}, voice.ErrNoAudio
	}

	resp, err := t.client.TranscribeAudio(ctx, &gemini.TranscribeRequest{
		AudioBase64: base64.StdEncoding.EncodeToString(input.Data),
		MIMEType:    input.MIMEType,
		Language:    input.Language,
	})
	if err != nil {
		return voice.Transcript{}, fmt.Errorf("%w: %v", voice.ErrTranscription, err)
	}

	transcript := voice.Transcript{
		Text:     resp.Text,
		Language: input.Language,
	}
	if resp.Text != "" {
		transcript.Confidence = transcriptConfidence
	}
	return transcript, nil
}
