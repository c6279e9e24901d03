package speech

import (
	"context"
	"fmt"

	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/whisper"
)

// transcriptConfidence is reported for providers that do not expose one.
const transcriptConfidence = 0.9

// mimeFilenames lets the upload carry a filename matching its container, so
// the API can sniff the format.
var mimeFilenames = map[string]string{
	"audio/wav":   "audio.wav",
	"audio/x-wav": "audio.wav",
	"audio/mpeg":  "audio.mp3",
	"audio/mp3":   "audio.mp3",
	"audio/webm":  "audio.webm",
	"audio/ogg":   "audio.ogg",
	"audio/mp4":   "audio.m4a",
}

// whisperTranscriber adapts the Whisper client to voice.Transcriber.
type whisperTranscriber struct {
	client whisper.IWhisper
}

// NewWhisperTranscriber creates a Transcriber over an OpenAI-compatible
// speech-to-text API.
func NewWhisperTranscriber(client whisper.IWhisper) voice.Transcriber {
	return &whisperTranscriber{client: client}
}

func (t *whisperTranscriber) Transcribe(ctx context.Context, input voice.AudioInput) (voice.Transcript, error) {
	if len(input.Data) == 0 {
		return voice.Transcript{}, voice.ErrNoAudio
	}

	resp, err := t.client.Transcribe(ctx, &whisper.TranscribeRequest{
		Audio:    input.Data,
		Filename: mimeFilenames[input.MIMEType],
		Language: input.Language,
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
