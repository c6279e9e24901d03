package ws

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/log"
)

// session buffers inbound audio chunks for one connection. The buffer lives
// in memory only: it is flushed through the command pipeline on "stop" and
// discarded on disconnect.
type session struct {
	id   string
	l    log.Logger
	uc   voice.UseCase
	conn *websocket.Conn

	chunks   [][]byte
	buffered int

	mimeType    string
	language    string
	returnAudio bool
	voiceID     string
}

func newSession(l log.Logger, uc voice.UseCase, conn *websocket.Conn) *session {
	return &session{
		id:   uuid.NewString(),
		l:    l,
		uc:   uc,
		conn: conn,
	}
}

func (s *session) run(ctx context.Context) {
	defer s.conn.Close()
	s.conn.SetReadLimit(maxMessageBytes)

	s.l.Infof(ctx, "ws.session %s: opened", s.id)
	defer s.l.Infof(ctx, "ws.session %s: closed", s.id)

	for {
		messageType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.l.Warnf(ctx, "ws.session %s: read: %v", s.id, err)
			}
			return
		}

		switch messageType {
		case websocket.BinaryMessage:
			if s.buffered+len(data) > maxAudioBytes {
				s.writeError(ctx, "audio buffer limit exceeded")
				s.reset()
				continue
			}
			s.chunks = append(s.chunks, data)
			s.buffered += len(data)

		case websocket.TextMessage:
			s.handleControl(ctx, data)
		}
	}
}

type controlMsg struct {
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	MIMEType    string `json:"mimeType,omitempty"`
	Language    string `json:"language,omitempty"`
	ReturnAudio bool   `json:"returnAudio,omitempty"`
	VoiceID     string `json:"voiceId,omitempty"`
}

func (s *session) handleControl(ctx context.Context, data []byte) {
	var msg controlMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		s.writeError(ctx, "malformed control message")
		return
	}

	switch msg.Type {
	case controlStart:
		s.reset()
		s.mimeType = msg.MIMEType
		s.language = msg.Language
		s.returnAudio = msg.ReturnAudio
		s.voiceID = msg.VoiceID

	case controlStop:
		if s.buffered == 0 {
			s.writeError(ctx, "no audio received")
			return
		}
		audio := bytes.Join(s.chunks, nil)
		s.reset()
		s.process(ctx, voice.ProcessCommandInput{
			Audio:       &voice.AudioInput{Data: audio, MIMEType: s.mimeType, Language: s.language},
			ReturnAudio: s.returnAudio,
			VoiceID:     s.voiceID,
		})

	case controlText:
		s.process(ctx, voice.ProcessCommandInput{
			Text:        msg.Text,
			ReturnAudio: s.returnAudio || msg.ReturnAudio,
			VoiceID:     s.voiceID,
		})

	default:
		s.writeError(ctx, "unknown control type")
	}
}

func (s *session) process(ctx context.Context, input voice.ProcessCommandInput) {
	output, err := s.uc.ProcessCommand(ctx, input)
	if err != nil {
		s.l.Errorf(ctx, "ws.session %s: ProcessCommand: %v", s.id, err)
		s.writeError(ctx, "internal error")
		return
	}
	s.writeJSON(ctx, newResultFrame(output))
}

func (s *session) reset() {
	s.chunks = nil
	s.buffered = 0
}

func (s *session) writeError(ctx context.Context, message string) {
	s.writeJSON(ctx, errorFrame{Type: frameError, Message: message})
}

func (s *session) writeJSON(ctx context.Context, v any) {
	if err := s.conn.WriteJSON(v); err != nil {
		s.l.Warnf(ctx, "ws.session %s: write: %v", s.id, err)
	}
}
