package ws

const (
	readBufferSize  = 4096
	writeBufferSize = 4096

	// maxMessageBytes caps a single frame. Audio arrives chunked, so no
	// legitimate frame approaches this.
	maxMessageBytes = 1 << 20

	// maxAudioBytes caps the buffered audio per session.
	maxAudioBytes = 10 << 20
)

// Control message types sent by the client.
const (
	controlStart = "start"
	controlStop  = "stop"
	controlText  = "text"
)

// Frame types sent by the server.
const (
	frameResult = "result"
	frameError  = "error"
)
