package speech

import (
	"context"
	"fmt"

	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/elevenlabs"
)

// elevenLabsSynthesizer adapts the ElevenLabs client to voice.Synthesizer.
type elevenLabsSynthesizer struct {
	client elevenlabs.IElevenLabs
}

// NewElevenLabsSynthesizer creates a Synthesizer over the ElevenLabs API.
func NewElevenLabsSynthesizer(client elevenlabs.IElevenLabs) voice.Synthesizer {
	return &elevenLabsSynthesizer{client: client}
}

func (s *elevenLabsSynthesizer) Synthesize(ctx context.Context, input voice.SynthesisInput) (voice.SynthesisOutput, error) {
	resp, err := s.client.Synthesize(ctx, &elevenlabs.SynthesizeRequest{
		Text:    input.Text,
		VoiceID: input.VoiceID,
	})
	if err != nil {
		return voice.SynthesisOutput{}, fmt.Errorf("synthesize reply: %w", err)
	}
	return voice.SynthesisOutput{Audio: resp.Audio, MIMEType: resp.MIMEType}, nil
}
