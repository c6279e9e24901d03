package whisper

import "context"

// IWhisper defines the interface for OpenAI-compatible speech-to-text APIs.
// Implementations are safe for concurrent use.
type IWhisper interface {
	// Transcribe uploads audio and returns the transcript
	Transcribe(ctx context.Context, req *TranscribeRequest) (*TranscribeResponse, error)
}

// New creates a new Whisper client with the given configuration
func New(cfg Config) (IWhisper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newWhisperImpl(cfg), nil
}
