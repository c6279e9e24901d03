package whisper

import "time"

const (
	// DefaultModel is the default transcription model
	DefaultModel = "whisper-1"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultFilename is used when the caller does not name the upload
	DefaultFilename = "audio.wav"
)
