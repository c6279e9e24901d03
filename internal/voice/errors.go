package voice

import "errors"

var (
	// ErrNoCommand means neither text nor decodable audio was provided, or
	// transcription produced nothing.
	ErrNoCommand = errors.New("no command provided")

	// ErrNoAudio means a transcription request carried an empty payload.
	ErrNoAudio = errors.New("no audio provided")

	// ErrTranscription means the transcript source itself failed.
	ErrTranscription = errors.New("transcription failed")
)
