package elevenlabs

import "context"

// IElevenLabs defines the interface for the ElevenLabs text-to-speech API.
// Implementations are safe for concurrent use.
type IElevenLabs interface {
	// Synthesize renders text into audio
	Synthesize(ctx context.Context, req *SynthesizeRequest) (*SynthesizeResponse, error)
}

// New creates a new ElevenLabs client with the given configuration
func New(cfg Config) (IElevenLabs, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newElevenLabsImpl(cfg), nil
}
