package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-chat-backend/internal/chat"
	"resume-chat-backend/internal/emails"
	"resume-chat-backend/internal/resumes"
	"resume-chat-backend/internal/shared/config"
	"resume-chat-backend/internal/shared/server/middleware"
	"resume-chat-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	Log           *zap.Logger
	ResumeHandler *resumes.Handler
	ChatHandler   *chat.Handler
	EmailHandler  *emails.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(deps.Log),
		middleware.Recovery(deps.Log, deps.Config.Env),
		middleware.CORS(deps.Config.CORSAllowOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})

	api := r.Group("/api/v1")
	deps.ResumeHandler.RegisterRoutes(api)
	deps.ChatHandler.RegisterRoutes(api)
	deps.EmailHandler.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
