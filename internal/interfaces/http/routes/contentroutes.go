package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers"
)

// ContentRouteConfig holds dependencies for the public FAQ and testimonial listings.
type ContentRouteConfig struct {
	FAQHandler         *handlers.FAQHandler
	TestimonialHandler *handlers.TestimonialHandler
	PublicLimit        gin.HandlerFunc
}

func SetupContentRoutes(api *gin.RouterGroup, cfg *ContentRouteConfig) {
	api.GET("/faqs", cfg.PublicLimit, cfg.FAQHandler.ListPublic)
	api.GET("/testimonials", cfg.PublicLimit, cfg.TestimonialHandler.ListPublic)
}
