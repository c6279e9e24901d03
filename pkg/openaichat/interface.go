package openaichat

import "context"

// IChat defines the interface for OpenAI-compatible chat completion APIs.
// Groq, DeepSeek, Qwen and OpenAI itself all speak this wire format.
// Implementations are safe for concurrent use.
type IChat interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new chat client with the given configuration
func New(cfg Config) (IChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newChatImpl(cfg), nil
}
