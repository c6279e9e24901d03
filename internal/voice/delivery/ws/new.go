package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"voice-todo-assistant/internal/voice"
	"voice-todo-assistant/pkg/log"
)

type Handler struct {
	l        log.Logger
	uc       voice.UseCase
	upgrader websocket.Upgrader
}

// New creates the WebSocket handler for streaming voice sessions.
func New(l log.Logger, uc voice.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readBufferSize,
			WriteBufferSize: writeBufferSize,
			// Browser clients connect from arbitrary origins; auth, when
			// needed, belongs to a reverse proxy in front of this service.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and runs the session loop until disconnect.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "ws.Serve.Upgrade: %v", err)
		return
	}

	s := newSession(h.l, h.uc, conn)
	s.run(c.Request.Context())
}

// RegisterRoutes mounts the voice session endpoint.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/ws/voice", h.Serve)
}
