package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers"
)

// SystemRouteConfig holds dependencies for probe and metrics routes.
type SystemRouteConfig struct {
	HealthHandler  *handlers.HealthHandler
	MetricsHandler http.Handler
}

func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.Health)
	engine.GET("/ready", cfg.HealthHandler.Ready)
	if cfg.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}
}
