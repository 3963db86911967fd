package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers"
	"github.com/avestaexchange/avesta/internal/interfaces/http/middleware"
	"github.com/avestaexchange/avesta/internal/shared/authorization"
)

// ExchangeRateRouteConfig holds dependencies for exchange rate routes.
type ExchangeRateRouteConfig struct {
	Handler              *handlers.ExchangeRateHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	PublicLimit          gin.HandlerFunc
}

// SetupExchangeRateRoutes registers the public quote endpoints and the
// markup administration endpoints under /api/exchange-rates.
func SetupExchangeRateRoutes(api *gin.RouterGroup, cfg *ExchangeRateRouteConfig) {
	rates := api.Group("/exchange-rates")
	{
		rates.GET("/latest", cfg.PublicLimit, cfg.Handler.GetLatestRates)
		rates.GET("/historical", cfg.PublicLimit, cfg.Handler.GetHistoricalRates)
		rates.GET("/convert", cfg.PublicLimit, cfg.Handler.Convert)
	}

	read := cfg.PermissionMiddleware.RequirePermission(authorization.ResourceExchangeRates, authorization.ActionRead)
	write := cfg.PermissionMiddleware.RequirePermission(authorization.ResourceExchangeRates, authorization.ActionWrite)

	admin := rates.Group("", cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("", read, cfg.Handler.ListMergedRates)
		admin.GET("/markups", read, cfg.Handler.ListMarkups)
		admin.POST("", write, cfg.Handler.SetMarkup)
		admin.DELETE("", write, cfg.Handler.DeactivateMarkup)
		admin.POST("/refresh", write, cfg.Handler.RefreshRates)
	}
}
