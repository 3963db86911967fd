package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avestaexchange/avesta/internal/application/exchangerate/dto"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

type dashboardMetricsUseCase interface {
	Execute(ctx context.Context) (*dto.DashboardMetrics, error)
}

// DashboardHandler serves the admin overview counters.
type DashboardHandler struct {
	metricsUseCase dashboardMetricsUseCase
	logger         logger.Interface
}

func NewDashboardHandler(metricsUseCase dashboardMetricsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		metricsUseCase: metricsUseCase,
		logger:         logger,
	}
}

// GetMetrics handles GET /api/admin/metrics
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	result, err := h.metricsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
