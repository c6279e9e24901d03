package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Config holds ElevenLabs client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	VoiceID    string
	ModelID    string
	Stability  float64
	Similarity float64
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("elevenlabs: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.VoiceID == "" {
		c.VoiceID = DefaultVoiceID
	}
	if c.ModelID == "" {
		c.ModelID = DefaultModelID
	}
	if c.Stability == 0 {
		c.Stability = DefaultStability
	}
	if c.Similarity == 0 {
		c.Similarity = DefaultSimilarity
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// SynthesizeRequest represents a text-to-speech request
type SynthesizeRequest struct {
	// Text is the reply to speak
	Text string

	// VoiceID overrides the configured voice for this request
	VoiceID string
}

// SynthesizeResponse represents synthesized audio
type SynthesizeResponse struct {
	Audio    []byte
	MIMEType string
}

type elevenLabsImpl struct {
	apiKey     string
	baseURL    string
	voiceID    string
	modelID    string
	stability  float64
	similarity float64
	httpClient *http.Client
}

func newElevenLabsImpl(cfg Config) *elevenLabsImpl {
	return &elevenLabsImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		voiceID:    cfg.VoiceID,
		modelID:    cfg.ModelID,
		stability:  cfg.Stability,
		similarity: cfg.Similarity,
		httpClient: cfg.HTTPClient,
	}
}

type synthesizeBody struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize renders text into audio via the text-to-speech endpoint
func (e *elevenLabsImpl) Synthesize(ctx context.Context, req *SynthesizeRequest) (*SynthesizeResponse, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("elevenlabs: text is empty")
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = e.voiceID
	}

	body, err := json.Marshal(synthesizeBody{
		Text:    req.Text,
		ModelID: e.modelID,
		VoiceSettings: voiceSettings{
			Stability:       e.stability,
			SimilarityBoost: e.similarity,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", e.baseURL, voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: failed to create request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", e.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", MIMETypeMPEG)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("elevenlabs: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: failed to read audio: %w", err)
	}

	return &SynthesizeResponse{Audio: audio, MIMEType: MIMETypeMPEG}, nil
}
