package voice

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessCommand runs one command through the full pipeline: transcribe
	// (when audio), classify, execute against the task store, build the reply
	// message and optionally synthesize it. Soft failures (ambiguity, missing
	// target, store trouble) come back inside the output, not as errors.
	ProcessCommand(ctx context.Context, input ProcessCommandInput) (ProcessCommandOutput, error)

	// Transcribe converts audio to text without executing anything.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)
}

// Transcriber converts audio to text. Empty/garbled audio yields an empty
// transcript, not an error, so the no-command path stays uniform.
type Transcriber interface {
	Transcribe(ctx context.Context, input AudioInput) (Transcript, error)
}

// Synthesizer renders reply text into audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, input SynthesisInput) (SynthesisOutput, error)
}
