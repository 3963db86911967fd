package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/avestaexchange/avesta/internal/infrastructure/config"
	"github.com/avestaexchange/avesta/internal/interfaces/http/middleware"
	"github.com/avestaexchange/avesta/internal/interfaces/http/routes"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

// Router represents the HTTP router configuration.
type Router struct {
	*Container
}

// NewRouter wires the container and installs the global middleware chain.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CustomLogger(log, container.metrics))
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "route not found")
	})
	container.engine = engine

	return &Router{Container: container}, nil
}

// SetupRoutes registers every route group.
func (r *Router) SetupRoutes() {
	publicLimit := middleware.RateLimit(r.publicLimiter, r.log)
	loginLimit := middleware.RateLimit(r.loginLimiter, r.log)

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		HealthHandler:  r.hdlrs.health,
		MetricsHandler: r.metrics.Handler(),
	})

	api := r.engine.Group("/api")
	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.auth,
		AuthMiddleware: r.authMiddleware,
		LoginLimit:     loginLimit,
	})
	routes.SetupExchangeRateRoutes(api, &routes.ExchangeRateRouteConfig{
		Handler:              r.hdlrs.exchangeRate,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		PublicLimit:          publicLimit,
	})
	routes.SetupContentRoutes(api, &routes.ContentRouteConfig{
		FAQHandler:         r.hdlrs.faq,
		TestimonialHandler: r.hdlrs.testimonial,
		PublicLimit:        publicLimit,
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		FAQHandler:           r.hdlrs.faq,
		TestimonialHandler:   r.hdlrs.testimonial,
		UserHandler:          r.hdlrs.user,
		DashboardHandler:     r.hdlrs.dashboard,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// Engine returns the gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
