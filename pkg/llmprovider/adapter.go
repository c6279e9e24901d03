package llmprovider

import (
	"context"

	"voice-todo-assistant/pkg/gemini"
	"voice-todo-assistant/pkg/openaichat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.System != "" {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.System}},
		}
	}

	for i, msg := range req.Messages {
		role := msg.Role
		// Gemini names the assistant role "model"
		if role == "assistant" {
			role = "model"
		}
		geminiReq.Messages[i] = gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Text}},
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIChatAdapter adapts pkg/openaichat to llmprovider.Provider interface.
// It serves any OpenAI-compatible backend; name distinguishes them in logs.
type OpenAIChatAdapter struct {
	client openaichat.IChat
	name   string
}

// NewOpenAIChatAdapter creates a new adapter over an OpenAI-compatible client
func NewOpenAIChatAdapter(name string, client openaichat.IChat) *OpenAIChatAdapter {
	return &OpenAIChatAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAIChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openaichat.Request{
		System:      req.System,
		Messages:    make([]openaichat.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	for i, msg := range req.Messages {
		chatReq.Messages[i] = openaichat.Message{Role: msg.Role, Content: msg.Text}
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIChatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIChatAdapter) Model() string {
	return a.client.Model()
}
