package router

import (
	"github.com/gin-gonic/gin"

	"clickscan/internal/config"
	"clickscan/internal/handler"
	"clickscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, ocrH *handler.OCRHandler, healthH *handler.HealthHandler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Liveness
	r.GET("/", healthH.Root)
	r.GET("/healthz", healthH.Liveness)

	// Document forwarding
	r.POST("/ocr/:endpoint", ocrH.Proxy)

	return r
}
