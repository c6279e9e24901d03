package http

import (
	"voice-todo-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The command
// surface is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	v := rg.Group("/voice")
	{
		v.POST("/command", mw.RateLimit(), h.ProcessCommand)
		v.POST("/transcribe", mw.RateLimit(), h.Transcribe)
	}
}
