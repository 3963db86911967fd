package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/application/testimonial/dto"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

type testimonialService interface {
	ListPublic(ctx context.Context, lang string) ([]*dto.TestimonialResponse, error)
	List(ctx context.Context) ([]*dto.TestimonialResponse, error)
	Create(ctx context.Context, req dto.TestimonialRequest) (*dto.TestimonialResponse, error)
	Update(ctx context.Context, id uint, req dto.TestimonialRequest) (*dto.TestimonialResponse, error)
	Delete(ctx context.Context, id uint) error
}

type TestimonialHandler struct {
	service testimonialService
	logger  logger.Interface
}

func NewTestimonialHandler(service testimonialService, logger logger.Interface) *TestimonialHandler {
	return &TestimonialHandler{service: service, logger: logger}
}

// ListPublic handles GET /api/testimonials?lang=
func (h *TestimonialHandler) ListPublic(c *gin.Context) {
	items, err := h.service.ListPublic(c.Request.Context(), c.Query("lang"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// List handles GET /api/admin/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// Create handles POST /api/admin/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Testimonial created successfully")
}

// Update handles PUT /api/admin/testimonials?id=
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDQuery(c, "id", "testimonial")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Testimonial updated successfully", result)
}

// Delete handles DELETE /api/admin/testimonials?id=
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDQuery(c, "id", "testimonial")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Testimonial deleted successfully", nil)
}

func (h *TestimonialHandler) bind(c *gin.Context) (dto.TestimonialRequest, bool) {
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for testimonial", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return req, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return req, false
	}
	return req, true
}
