package elevenlabs

import "time"

const (
	// DefaultBaseURL is the default ElevenLabs API endpoint
	DefaultBaseURL = "https://api.elevenlabs.io/v1"

	// DefaultVoiceID is Rachel, a calm natural voice
	DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM"

	// DefaultModelID is the default synthesis model
	DefaultModelID = "eleven_monolingual_v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// MIMETypeMPEG is the audio format the API streams back
	MIMETypeMPEG = "audio/mpeg"
)

// Default voice settings.
const (
	DefaultStability  = 0.5
	DefaultSimilarity = 0.75
)
