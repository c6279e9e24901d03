package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice assistant specifics
	Notion         NotionConfig
	Gemini         GeminiConfig
	Speech         SpeechConfig
	Whisper        WhisperConfig
	ElevenLabs     ElevenLabsConfig
	GoogleCalendar GoogleCalendarConfig
	Voice          VoiceConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type NotionConfig struct {
	Token         string
	ParentPageID  string
	DatabaseTitle string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// SpeechConfig selects the transcription backend: "gemini" (multimodal,
// reuses the Gemini key) or "whisper" (dedicated speech-to-text API).
type SpeechConfig struct {
	TranscriptionProvider string
}

type WhisperConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type ElevenLabsConfig struct {
	APIKey  string
	VoiceID string
	ModelID string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// VoiceConfig tunes the command pipeline.
type VoiceConfig struct {
	Timezone        string
	RateLimitPerMin int
	CacheSize       int    // Tier-2 classification cache entries
	CacheTTL        string // Tier-2 classification cache TTL, e.g. "10m"
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Notion task store
	cfg.Notion.Token = viper.GetString("notion.token")
	cfg.Notion.ParentPageID = viper.GetString("notion.parent_page_id")
	cfg.Notion.DatabaseTitle = viper.GetString("notion.database_title")
	if notionToken := viper.GetString("notion_token"); notionToken != "" {
		cfg.Notion.Token = notionToken
	}
	if notionPage := viper.GetString("notion_parent_page_id"); notionPage != "" {
		cfg.Notion.ParentPageID = notionPage
	}

	// Gemini (transcription + direct generative use)
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Speech pipeline
	cfg.Speech.TranscriptionProvider = viper.GetString("speech.transcription_provider")
	cfg.Whisper.APIKey = viper.GetString("whisper.api_key")
	cfg.Whisper.Model = viper.GetString("whisper.model")
	cfg.Whisper.BaseURL = viper.GetString("whisper.base_url")
	if whisperKey := viper.GetString("openai_api_key"); whisperKey != "" && cfg.Whisper.APIKey == "" {
		cfg.Whisper.APIKey = whisperKey
	}

	cfg.ElevenLabs.APIKey = viper.GetString("elevenlabs.api_key")
	cfg.ElevenLabs.VoiceID = viper.GetString("elevenlabs.voice_id")
	cfg.ElevenLabs.ModelID = viper.GetString("elevenlabs.model_id")
	if elevenKey := viper.GetString("elevenlabs_api_key"); elevenKey != "" {
		cfg.ElevenLabs.APIKey = elevenKey
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Voice pipeline tuning
	cfg.Voice.Timezone = viper.GetString("voice.timezone")
	cfg.Voice.RateLimitPerMin = viper.GetInt("voice.rate_limit_per_min")
	cfg.Voice.CacheSize = viper.GetInt("voice.cache_size")
	cfg.Voice.CacheTTL = viper.GetString("voice.cache_ttl")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// The Tier-2 classifier fallback is optional: no providers means the
	// deterministic rules run alone. Configured providers must be sane.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, err
		}
	}

	if cfg.Notion.Token == "" {
		return nil, fmt.Errorf("notion token is required - set NOTION_TOKEN or notion.token in config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("notion.database_title", "Tasks")
	viper.SetDefault("speech.transcription_provider", "gemini")
	viper.SetDefault("voice.timezone", "UTC")
	viper.SetDefault("voice.rate_limit_per_min", 60)
	viper.SetDefault("voice.cache_size", 256)
	viper.SetDefault("voice.cache_ttl", "10m")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

			if provider.APIKey == "" {
				fmt.Printf("Warning: provider %s has no API key configured\n", provider.Name)
			}
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
