package voice

import (
	"voice-todo-assistant/internal/intent"
	"voice-todo-assistant/internal/model"
)

// AudioInput is one audio payload entering the pipeline.
type AudioInput struct {
	Data     []byte
	MIMEType string // e.g. "audio/wav", "audio/webm"
	Language string // optional BCP-47 hint
}

// Transcript is the transcription result.
type Transcript struct {
	Text       string
	Confidence float64
	Language   string
}

// SynthesisInput is the text to speak.
type SynthesisInput struct {
	Text    string
	VoiceID string // optional voice override
}

// SynthesisOutput is synthesized audio.
type SynthesisOutput struct {
	Audio    []byte
	MIMEType string
}

// ProcessCommandInput carries one command. Either Text or Audio must be set;
// Text wins when both are present.
type ProcessCommandInput struct {
	Text        string
	Audio       *AudioInput
	ListID      string // optional collection context for classification
	ReturnAudio bool
	VoiceID     string
}

// CommandResult is the user-facing outcome of one command.
type CommandResult struct {
	Success bool
	Message string
	TaskID  string       // affected task, when applicable
	Tasks   []model.Task // list snapshot, for list commands
}

// ProcessCommandOutput is the full pipeline result.
type ProcessCommandOutput struct {
	// Transcript is the text the command resolved to (transcribed or passed
	// through).
	Transcript string

	// Intent is the classification the pipeline acted on.
	Intent intent.Intent

	// Result is the outcome reported to the user.
	Result CommandResult

	// Speech holds the synthesized reply when one was requested and
	// synthesis succeeded; nil otherwise.
	Speech *SynthesisOutput
}

// TranscribeInput is a bare transcription request.
type TranscribeInput struct {
	Audio AudioInput
}

// TranscribeOutput is a bare transcription result.
type TranscribeOutput struct {
	Text       string
	Confidence float64
	Language   string
}
