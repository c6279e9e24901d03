package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-todo-assistant/internal/model"
	voiceHTTP "voice-todo-assistant/internal/voice/delivery/http"
	voiceWS "voice-todo-assistant/internal/voice/delivery/ws"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the voice domain onto the REST and WebSocket
// surfaces.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	h := voiceHTTP.New(srv.l, srv.voiceUC)
	voiceHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Voice command routes registered under /api/v1/voice")

	wsHandler := voiceWS.New(srv.l, srv.voiceUC)
	voiceWS.RegisterRoutes(srv.gin, wsHandler)
	srv.l.Infof(ctx, "Voice session route registered at GET /ws/voice")
}
