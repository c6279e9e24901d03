package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Config holds Whisper client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Language   string // optional ISO-639-1 hint, empty means auto-detect
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("whisper: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// TranscribeRequest represents an audio transcription request
type TranscribeRequest struct {
	// Audio is the raw audio file content (wav, mp3, webm, ogg)
	Audio []byte

	// Filename labels the upload so the API can infer the container format
	Filename string

	// Language overrides the configured language hint for this request
	Language string
}

// TranscribeResponse represents a transcription result
type TranscribeResponse struct {
	Text string `json:"text"`
}

type whisperImpl struct {
	apiKey     string
	baseURL    string
	model      string
	language   string
	httpClient *http.Client
}

func newWhisperImpl(cfg Config) *whisperImpl {
	return &whisperImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		language:   cfg.Language,
		httpClient: cfg.HTTPClient,
	}
}

// Transcribe uploads audio as a multipart form and returns the transcript
func (w *whisperImpl) Transcribe(ctx context.Context, req *TranscribeRequest) (*TranscribeResponse, error) {
	if len(req.Audio) == 0 {
		return nil, fmt.Errorf("whisper: audio payload is empty")
	}

	filename := req.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	language := req.Language
	if language == "" {
		language = w.language
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("whisper: failed to create form file: %w", err)
	}
	if _, err := part.Write(req.Audio); err != nil {
		return nil, fmt.Errorf("whisper: failed to write audio data: %w", err)
	}

	if err := writer.WriteField("model", w.model); err != nil {
		return nil, fmt.Errorf("whisper: failed to write model field: %w", err)
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return nil, fmt.Errorf("whisper: failed to write language field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("whisper: failed to close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		w.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return nil, fmt.Errorf("whisper: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+w.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("whisper: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("whisper: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result TranscribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("whisper: failed to decode response: %w", err)
	}

	return &result, nil
}
