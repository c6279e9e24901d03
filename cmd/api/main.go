package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-todo-assistant/config"
	_ "voice-todo-assistant/docs" // Swagger docs
	"voice-todo-assistant/internal/httpserver"
	"voice-todo-assistant/internal/intent"
	"voice-todo-assistant/internal/middleware"
	"voice-todo-assistant/internal/task/repository"
	notionRepo "voice-todo-assistant/internal/task/repository/notion"
	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/internal/voice/speech"
	voiceUC "voice-todo-assistant/internal/voice/usecase"
	"voice-todo-assistant/pkg/elevenlabs"
	"voice-todo-assistant/pkg/gcalendar"
	"voice-todo-assistant/pkg/gemini"
	"voice-todo-assistant/pkg/llmprovider"
	"voice-todo-assistant/pkg/log"
	"voice-todo-assistant/pkg/whisper"
)

// @title       Voice Todo Assistant API
// @description Voice-driven todo assistant: audio or text commands, two-tier intent classification, Notion task store, optional spoken replies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Todo Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task store (Notion)
	notionClient := notionRepo.NewClient(cfg.Notion.Token)
	collectionCache := repository.NewCollectionCache()
	taskRepo := notionRepo.New(notionClient, collectionCache, cfg.Notion.DatabaseTitle, cfg.Notion.ParentPageID, logger)

	// 4. Intent classifier: deterministic rules plus an optional generative
	// fallback behind the provider manager.
	var generator intent.ContentGenerator
	if len(cfg.LLM.Providers) > 0 {
		providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
		if provErr != nil {
			logger.Warnf(ctx, "LLM providers unavailable, classification runs on rules only: %v", provErr)
		} else {
			retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
			maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
			generator = llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: cfg.LLM.FallbackEnabled,
				RetryAttempts:   cfg.LLM.RetryAttempts,
				RetryDelay:      retryDelay,
				MaxTotalTimeout: maxTimeout,
			}, logger)
			logger.Infof(ctx, "LLM fallback enabled with %d provider(s)", len(providers))
		}
	} else {
		logger.Info(ctx, "No LLM providers configured, classification runs on rules only")
	}

	cacheTTL, _ := time.ParseDuration(cfg.Voice.CacheTTL)
	classifier := intent.New(logger, generator, intent.Config{
		Timezone:  cfg.Voice.Timezone,
		CacheSize: cfg.Voice.CacheSize,
		CacheTTL:  cacheTTL,
	})

	// 5. Speech pipeline (both stages optional)
	transcriber := buildTranscriber(ctx, logger, cfg)

	var synthesizer voice.Synthesizer
	if cfg.ElevenLabs.APIKey != "" {
		elevenClient, elErr := elevenlabs.New(elevenlabs.Config{
			APIKey:  cfg.ElevenLabs.APIKey,
			VoiceID: cfg.ElevenLabs.VoiceID,
			ModelID: cfg.ElevenLabs.ModelID,
		})
		if elErr != nil {
			logger.Warnf(ctx, "ElevenLabs not available (optional): %v", elErr)
		} else {
			synthesizer = speech.NewElevenLabsSynthesizer(elevenClient)
			logger.Info(ctx, "Speech synthesis initialized")
		}
	}

	// 6. Google Calendar reminders (optional)
	var calendar voiceUC.CalendarScheduler
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Voice use case
	uc := voiceUC.New(logger, taskRepo, classifier, transcriber, synthesizer, calendar, voiceUC.Config{
		Timezone:   cfg.Voice.Timezone,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	// 8. HTTP server
	mw := middleware.New(logger, cfg.Voice.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		VoiceUseCase: uc,
		Middleware:   mw,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildTranscriber picks the transcription backend from config. Returns nil
// when no backend is usable; audio commands then fail with a spoken-friendly
// message while text commands keep working.
func buildTranscriber(ctx context.Context, logger log.Logger, cfg *config.Config) voice.Transcriber {
	switch cfg.Speech.TranscriptionProvider {
	case "whisper":
		if cfg.Whisper.APIKey == "" {
			logger.Warn(ctx, "Whisper selected but no API key configured, transcription disabled")
			return nil
		}
		client, err := whisper.New(whisper.Config{
			APIKey:  cfg.Whisper.APIKey,
			Model:   cfg.Whisper.Model,
			BaseURL: cfg.Whisper.BaseURL,
		})
		if err != nil {
			logger.Warnf(ctx, "Whisper not available: %v", err)
			return nil
		}
		logger.Info(ctx, "Whisper transcription initialized")
		return speech.NewWhisperTranscriber(client)

	default:
		if cfg.Gemini.APIKey == "" {
			logger.Warn(ctx, "No Gemini API key configured, transcription disabled")
			return nil
		}
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if err != nil {
			logger.Warnf(ctx, "Gemini not available: %v", err)
			return nil
		}
		logger.Info(ctx, "Gemini transcription initialized")
		return speech.NewGeminiTranscriber(client)
	}
}
