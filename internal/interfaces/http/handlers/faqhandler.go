package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/application/faq/dto"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

type faqService interface {
	ListPublic(ctx context.Context, lang string) ([]*dto.FAQResponse, error)
	List(ctx context.Context) ([]*dto.FAQResponse, error)
	Create(ctx context.Context, req dto.FAQRequest) (*dto.FAQResponse, error)
	Update(ctx context.Context, id uint, req dto.FAQRequest) (*dto.FAQResponse, error)
	Delete(ctx context.Context, id uint) error
}

type FAQHandler struct {
	service faqService
	logger  logger.Interface
}

func NewFAQHandler(service faqService, logger logger.Interface) *FAQHandler {
	return &FAQHandler{service: service, logger: logger}
}

// ListPublic handles GET /api/faqs?lang=
func (h *FAQHandler) ListPublic(c *gin.Context) {
	faqs, err := h.service.ListPublic(c.Request.Context(), c.Query("lang"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", faqs)
}

// List handles GET /api/admin/faqs
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", faqs)
}

// Create handles POST /api/admin/faqs
func (h *FAQHandler) Create(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "FAQ created successfully")
}

// Update handles PUT /api/admin/faqs?id=
func (h *FAQHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDQuery(c, "id", "FAQ")
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
	utils.SuccessResponse(c, http.StatusOK, "FAQ updated successfully", result)
}

// Delete handles DELETE /api/admin/faqs?id=
func (h *FAQHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDQuery(c, "id", "FAQ")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "FAQ deleted successfully", nil)
}

func (h *FAQHandler) bind(c *gin.Context) (dto.FAQRequest, bool) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for faq", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return req, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return req, false
	}
	return req, true
}
