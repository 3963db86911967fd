package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers"
	"github.com/avestaexchange/avesta/internal/interfaces/http/middleware"
	"github.com/avestaexchange/avesta/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for /api/admin routes.
type AdminRouteConfig struct {
	FAQHandler           *handlers.FAQHandler
	TestimonialHandler   *handlers.TestimonialHandler
	UserHandler          *handlers.UserHandler
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures back-office content, user and metrics routes.
// Every route requires a valid access token plus the casbin grant for its resource.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin", cfg.AuthMiddleware.RequireAuth())

	crud(admin.Group("/faqs"), cfg.PermissionMiddleware, authorization.ResourceFAQs, crudHandlers{
		list:   cfg.FAQHandler.List,
		create: cfg.FAQHandler.Create,
		update: cfg.FAQHandler.Update,
		remove: cfg.FAQHandler.Delete,
	})
	crud(admin.Group("/testimonials"), cfg.PermissionMiddleware, authorization.ResourceTestimonials, crudHandlers{
		list:   cfg.TestimonialHandler.List,
		create: cfg.TestimonialHandler.Create,
		update: cfg.TestimonialHandler.Update,
		remove: cfg.TestimonialHandler.Delete,
	})
	crud(admin.Group("/users"), cfg.PermissionMiddleware, authorization.ResourceUsers, crudHandlers{
		list:   cfg.UserHandler.ListUsers,
		create: cfg.UserHandler.CreateUser,
		update: cfg.UserHandler.UpdateUser,
		remove: cfg.UserHandler.DeleteUser,
	})

	admin.GET("/metrics",
		cfg.PermissionMiddleware.RequirePermission(authorization.ResourceMetrics, authorization.ActionRead),
		cfg.DashboardHandler.GetMetrics,
	)
}

type crudHandlers struct {
	list, create, update, remove gin.HandlerFunc
}

// crud mounts the ?id= addressed collection routes shared by the admin resources.
func crud(group *gin.RouterGroup, perm *middleware.PermissionMiddleware, resource string, h crudHandlers) {
	read := perm.RequirePermission(resource, authorization.ActionRead)
	write := perm.RequirePermission(resource, authorization.ActionWrite)

	group.GET("", read, h.list)
	group.POST("", write, h.create)
	group.PUT("", write, h.update)
	group.DELETE("", write, h.remove)
}
