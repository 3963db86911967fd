package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appExchangeRate "github.com/avestaexchange/avesta/internal/application/exchangerate"
	"github.com/avestaexchange/avesta/internal/application/exchangerate/dto"
	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/utils"
)

// RateReader serves the current rate table.
type RateReader interface {
	CachedRates(ctx context.Context) ([]exchangerate.ExchangeRate, error)
}

type HistoryReader interface {
	Execute(ctx context.Context, pair, period string) ([]exchangerate.HistoricalPoint, error)
}

type AmountConverter interface {
	Execute(ctx context.Context, cmd appExchangeRate.ConvertCommand) (*dto.ConvertResponse, error)
}

// MarkupManager is the admin side of the rate engine.
type MarkupManager interface {
	SetMarkupFromLiveRate(ctx context.Context, cmd appExchangeRate.SetMarkupCommand) (*exchangerate.Markup, error)
	GetExchangeRateMarkups(ctx context.Context) ([]*exchangerate.Markup, error)
	MergedRates(ctx context.Context) ([]exchangerate.ExchangeRate, error)
	DeactivateMarkup(ctx context.Context, id uint) error
	RefreshRates(ctx context.Context) ([]exchangerate.ExchangeRate, error)
}

type ExchangeRateHandler struct {
	rates     RateReader
	history   HistoryReader
	converter AmountConverter
	manager   MarkupManager
	logger    logger.Interface
}

func NewExchangeRateHandler(
	rates RateReader,
	history HistoryReader,
	converter AmountConverter,
	manager MarkupManager,
	logger logger.Interface,
) *ExchangeRateHandler {
	return &ExchangeRateHandler{
		rates:     rates,
		history:   history,
		converter: converter,
		manager:   manager,
		logger:    logger,
	}
}

// GetLatestRates handles GET /api/exchange-rates/latest
func (h *ExchangeRateHandler) GetLatestRates(c *gin.Context) {
	rates, err := h.rates.CachedRates(c.Request.Context())
	if err != nil {
		h.logger.Warnw("failed to serve latest rates", "error", err)
		utils.ErrorResponseWithError(c, rateError(err, false))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToExchangeRateResponses(rates))
}

// GetHistoricalRates handles GET /api/exchange-rates/historical?pair=&period=
func (h *ExchangeRateHandler) GetHistoricalRates(c *gin.Context) {
	pair := strings.ToUpper(strings.TrimSpace(c.Query("pair")))
	if pair == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("pair is required"))
		return
	}
	period := strings.ToUpper(strings.TrimSpace(c.Query("period")))

	points, err := h.history.Execute(c.Request.Context(), pair, period)
	if err != nil {
		utils.ErrorResponseWithError(c, rateError(err, false))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", points)
}

// Convert handles GET /api/exchange-rates/convert?from=&to=&amount=&side=
func (h *ExchangeRateHandler) Convert(c *gin.Context) {
	from, to, raw := c.Query("from"), c.Query("to"), strings.TrimSpace(c.Query("amount"))
	if from == "" || to == "" || raw == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("from, to and amount are required"))
		return
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("amount must be a number"))
		return
	}
	if amount.IsNegative() {
		utils.ErrorResponseWithError(c, errors.NewValidationError("amount must not be negative"))
		return
	}

	result, err := h.converter.Execute(c.Request.Context(), appExchangeRate.ConvertCommand{
		From:   from,
		To:     to,
		Amount: amount,
		Side:   c.Query("side"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, rateError(err, false))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMergedRates handles GET /api/exchange-rates (admin)
func (h *ExchangeRateHandler) ListMergedRates(c *gin.Context) {
	rates, err := h.manager.MergedRates(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, rateError(err, false))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToExchangeRateResponses(rates))
}

// ListMarkups handles GET /api/exchange-rates/markups (admin)
func (h *ExchangeRateHandler) ListMarkups(c *gin.Context) {
	markups, err := h.manager.GetExchangeRateMarkups(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, rateError(err, false))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToMarkupResponses(markups))
}

// SetMarkup handles POST /api/exchange-rates (admin)
func (h *ExchangeRateHandler) SetMarkup(c *gin.Context) {
	var req dto.SetMarkupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set markup", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	markup, err := h.manager.SetMarkupFromLiveRate(c.Request.Context(), appExchangeRate.SetMarkupCommand{
		BaseCurrency:  req.BaseCurrency,
		QuoteCurrency: req.QuoteCurrency,
		BuyMarkup:     *req.BuyMarkup,
		SellMarkup:    *req.SellMarkup,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, rateError(err, true))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Markup saved", dto.ToMarkupResponse(markup))
}

// DeactivateMarkup handles DELETE /api/exchange-rates?id= (admin)
func (h *ExchangeRateHandler) DeactivateMarkup(c *gin.Context) {
	id, err := utils.ParseIDQuery(c, "id", "markup")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manager.DeactivateMarkup(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, rateError(err, false))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Markup deactivated", nil)
}

// RefreshRates handles POST /api/exchange-rates/refresh (admin)
func (h *ExchangeRateHandler) RefreshRates(c *gin.Context) {
	rates, err := h.manager.RefreshRates(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, rateError(err, false))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Rates refreshed", dto.ToExchangeRateResponses(rates))
}

// rateError maps rate engine errors onto AppErrors. A pair with no live quote
// is a bad request when an operator is saving a markup for it, and a missing
// resource when a client asks for its history.
func rateError(err error, pairIsInput bool) error {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr
	}

	switch {
	case stderrors.Is(err, exchangerate.ErrInvalidPeriod),
		stderrors.Is(err, exchangerate.ErrNegativeMarkup),
		stderrors.Is(err, exchangerate.ErrMarkupTooLarge),
		stderrors.Is(err, exchangerate.ErrInvalidMarkup),
		stderrors.Is(err, exchangerate.ErrInvalidCurrency),
		stderrors.Is(err, appExchangeRate.ErrInvalidSide),
		stderrors.Is(err, appExchangeRate.ErrAmountOutOfRange):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, exchangerate.ErrPairNotFound):
		if pairIsInput {
			return errors.NewValidationError("No live rate for this currency pair", err.Error())
		}
		return errors.NewNotFoundError("Currency pair not found", err.Error())
	case stderrors.Is(err, exchangerate.ErrRateNotFound):
		return errors.NewNotFoundError("No exchange rate available for this conversion", err.Error())
	case stderrors.Is(err, exchangerate.ErrMarkupNotFound):
		return errors.NewNotFoundError("Markup not found")
	case stderrors.Is(err, exchangerate.ErrUpstreamUnavailable):
		return errors.NewUnavailableError("Exchange rates are temporarily unavailable")
	}
	return errors.NewInternalError("Failed to process exchange rates")
}
