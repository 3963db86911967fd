package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appExchangeRate "github.com/avestaexchange/avesta/internal/application/exchangerate"
	"github.com/avestaexchange/avesta/internal/application/exchangerate/dto"
	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mocks
// =====================================================================

type mockRateReader struct {
	rates []exchangerate.ExchangeRate
	err   error
}

func (m *mockRateReader) CachedRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	return m.rates, m.err
}

type mockHistoryReader struct {
	points     []exchangerate.HistoricalPoint
	err        error
	lastPair   string
	lastPeriod string
}

func (m *mockHistoryReader) Execute(ctx context.Context, pair, period string) ([]exchangerate.HistoricalPoint, error) {
	m.lastPair, m.lastPeriod = pair, period
	return m.points, m.err
}

type mockConverter struct {
	result  *dto.ConvertResponse
	err     error
	lastCmd appExchangeRate.ConvertCommand
}

func (m *mockConverter) Execute(ctx context.Context, cmd appExchangeRate.ConvertCommand) (*dto.ConvertResponse, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockMarkupManager struct {
	setFn        func(ctx context.Context, cmd appExchangeRate.SetMarkupCommand) (*exchangerate.Markup, error)
	listFn       func(ctx context.Context) ([]*exchangerate.Markup, error)
	mergedFn     func(ctx context.Context) ([]exchangerate.ExchangeRate, error)
	deactivateFn func(ctx context.Context, id uint) error
	refreshFn    func(ctx context.Context) ([]exchangerate.ExchangeRate, error)
}

func (m *mockMarkupManager) SetMarkupFromLiveRate(ctx context.Context, cmd appExchangeRate.SetMarkupCommand) (*exchangerate.Markup, error) {
	return m.setFn(ctx, cmd)
}

func (m *mockMarkupManager) GetExchangeRateMarkups(ctx context.Context) ([]*exchangerate.Markup, error) {
	return m.listFn(ctx)
}

func (m *mockMarkupManager) MergedRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	return m.mergedFn(ctx)
}

func (m *mockMarkupManager) DeactivateMarkup(ctx context.Context, id uint) error {
	return m.deactivateFn(ctx, id)
}

func (m *mockMarkupManager) RefreshRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	return m.refreshFn(ctx)
}

func testRates() []exchangerate.ExchangeRate {
	return []exchangerate.ExchangeRate{
		exchangerate.NewExchangeRate(exchangerate.USD, exchangerate.IRR, 600000, 1.5, 1.0, 0.3),
		exchangerate.NewExchangeRate(exchangerate.EUR, exchangerate.IRR, 650000, 1.5, 1.0, -0.2),
	}
}

func newTestExchangeRateHandler(rates RateReader, history HistoryReader, converter AmountConverter, manager MarkupManager) *ExchangeRateHandler {
	return NewExchangeRateHandler(rates, history, converter, manager, testutil.NewMockLogger())
}

// =====================================================================
// Public endpoints
// =====================================================================

func TestExchangeRateHandler_GetLatestRates(t *testing.T) {
	tests := []struct {
		name       string
		reader     *mockRateReader
		wantStatus int
		wantCount  int
	}{
		{
			name:       "success",
			reader:     &mockRateReader{rates: testRates()},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:       "upstream down",
			reader:     &mockRateReader{err: fmt.Errorf("fetch: %w", exchangerate.ErrUpstreamUnavailable)},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "missing rate in feed",
			reader:     &mockRateReader{err: &exchangerate.MissingRateError{Currency: exchangerate.USD}},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown error",
			reader:     &mockRateReader{err: fmt.Errorf("boom")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestExchangeRateHandler(tt.reader, nil, nil, nil)
			c, w := testutil.NewTestContext(http.MethodGet, "/api/exchange-rates/latest", nil)

			handler.GetLatestRates(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			if tt.wantStatus != http.StatusOK {
				assert.False(t, resp.Success)
				return
			}

			var rates []dto.ExchangeRateResponse
			require.NoError(t, json.Unmarshal(resp.Data, &rates))
			assert.Len(t, rates, tt.wantCount)
			assert.Equal(t, "USD/IRR", rates[0].Pair)
			assert.InDelta(t, 609000, rates[0].BuyRate, 0.001)
			assert.InDelta(t, 606000, rates[0].SellRate, 0.001)
		})
	}
}

func TestExchangeRateHandler_GetHistoricalRates(t *testing.T) {
	tests := []struct {
		name       string
		query      map[string]string
		historyErr error
		wantStatus int
	}{
		{
			name:       "success",
			query:      map[string]string{"pair": "usd/irr", "period": "1w"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing pair",
			query:      map[string]string{"period": "1W"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid period",
			query:      map[string]string{"pair": "USD/IRR", "period": "2Y"},
			historyErr: exchangerate.ErrInvalidPeriod,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown pair",
			query:      map[string]string{"pair": "JPY/IRR", "period": "1W"},
			historyErr: fmt.Errorf("%w: JPY/IRR", exchangerate.ErrPairNotFound),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &mockHistoryReader{
				points: []exchangerate.HistoricalPoint{{Date: "2026-01-01", Rate: 600000}},
				err:    tt.historyErr,
			}
			handler := newTestExchangeRateHandler(nil, history, nil, nil)
			c, w := testutil.NewTestContext(http.MethodGet, "/api/exchange-rates/historical", nil)
			testutil.SetQueryParams(c, tt.query)

			handler.GetHistoricalRates(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.name == "success" {
				assert.Equal(t, "USD/IRR", history.lastPair)
				assert.Equal(t, "1W", history.lastPeriod)
			}
		})
	}
}

func TestExchangeRateHandler_Convert(t *testing.T) {
	tests := []struct {
		name       string
		query      map[string]string
		convertErr error
		wantStatus int
	}{
		{
			name:       "success",
			query:      map[string]string{"from": "USD", "to": "IRR", "amount": "100", "side": "sell"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing amount",
			query:      map[string]string{"from": "USD", "to": "IRR"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non numeric amount",
			query:      map[string]string{"from": "USD", "to": "IRR", "amount": "ten"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative amount",
			query:      map[string]string{"from": "USD", "to": "IRR", "amount": "-5"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid side",
			query:      map[string]string{"from": "USD", "to": "IRR", "amount": "5", "side": "hold"},
			convertErr: appExchangeRate.ErrInvalidSide,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported currency",
			query:      map[string]string{"from": "JPY", "to": "IRR", "amount": "5"},
			convertErr: exchangerate.ErrInvalidCurrency,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "amount out of range",
			query:      map[string]string{"from": "USD", "to": "IRR", "amount": "1e400"},
			convertErr: appExchangeRate.ErrAmountOutOfRange,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no conversion path",
			query:      map[string]string{"from": "USD", "to": "GBP", "amount": "5"},
			convertErr: exchangerate.ErrRateNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := &mockConverter{
				result: &dto.ConvertResponse{
					From:   "USD",
					To:     "IRR",
					Side:   "sell",
					Amount: decimal.NewFromInt(100),
					Result: decimal.NewFromInt(60600000),
				},
				err: tt.convertErr,
			}
			handler := newTestExchangeRateHandler(nil, nil, converter, nil)
			c, w := testutil.NewTestContext(http.MethodGet, "/api/exchange-rates/convert", nil)
			testutil.SetQueryParams(c, tt.query)

			handler.Convert(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.name == "success" {
				assert.True(t, converter.lastCmd.Amount.Equal(decimal.NewFromInt(100)))
				assert.Equal(t, "sell", converter.lastCmd.Side)

				var resp testutil.APIResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				var result dto.ConvertResponse
				require.NoError(t, json.Unmarshal(resp.Data, &result))
				assert.True(t, result.Result.Equal(decimal.NewFromInt(60600000)))
			}
		})
	}
}

// =====================================================================
// Admin endpoints
// =====================================================================

func TestExchangeRateHandler_SetMarkup(t *testing.T) {
	buy, sell := 2.0, 1.5

	tests := []struct {
		name       string
		body       interface{}
		setErr     error
		wantStatus int
	}{
		{
			name: "success",
			body: dto.SetMarkupRequest{
				BaseCurrency: "USD", QuoteCurrency: "IRR", BuyMarkup: &buy, SellMarkup: &sell,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing markups",
			body:       map[string]string{"baseCurrency": "USD", "quoteCurrency": "IRR"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "lowercase currency code",
			body:       map[string]interface{}{"baseCurrency": "usd", "quoteCurrency": "IRR", "buyMarkup": 1, "sellMarkup": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unsupported currency",
			body: dto.SetMarkupRequest{
				BaseCurrency: "JPY", QuoteCurrency: "IRR", BuyMarkup: &buy, SellMarkup: &sell,
			},
			setErr:     exchangerate.ErrInvalidCurrency,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "negative markup",
			body: dto.SetMarkupRequest{
				BaseCurrency: "USD", QuoteCurrency: "IRR", BuyMarkup: &buy, SellMarkup: &sell,
			},
			setErr:     exchangerate.ErrNegativeMarkup,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "no live rate for pair",
			body: dto.SetMarkupRequest{
				BaseCurrency: "GBP", QuoteCurrency: "AED", BuyMarkup: &buy, SellMarkup: &sell,
			},
			setErr:     fmt.Errorf("%w: GBP/AED", exchangerate.ErrPairNotFound),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got appExchangeRate.SetMarkupCommand
			manager := &mockMarkupManager{
				setFn: func(ctx context.Context, cmd appExchangeRate.SetMarkupCommand) (*exchangerate.Markup, error) {
					got = cmd
					if tt.setErr != nil {
						return nil, tt.setErr
					}
					m, err := exchangerate.NewMarkup(exchangerate.USD, exchangerate.IRR, cmd.BuyMarkup, cmd.SellMarkup, 600000)
					require.NoError(t, err)
					m.SetID(7)
					return m, nil
				},
			}
			handler := newTestExchangeRateHandler(nil, nil, nil, manager)
			c, w := testutil.NewTestContext(http.MethodPost, "/api/exchange-rates", tt.body)

			handler.SetMarkup(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.InDelta(t, 2.0, got.BuyMarkup, 1e-9)
				assert.InDelta(t, 1.5, got.SellMarkup, 1e-9)

				var resp testutil.APIResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				var markup dto.MarkupResponse
				require.NoError(t, json.Unmarshal(resp.Data, &markup))
				assert.Equal(t, uint(7), markup.ID)
				assert.Equal(t, "USD/IRR", markup.Pair)
			}
		})
	}
}

func TestExchangeRateHandler_DeactivateMarkup(t *testing.T) {
	tests := []struct {
		name       string
		query      map[string]string
		err        error
		wantStatus int
	}{
		{name: "success", query: map[string]string{"id": "3"}, wantStatus: http.StatusOK},
		{name: "missing id", query: map[string]string{}, wantStatus: http.StatusBadRequest},
		{name: "invalid id", query: map[string]string{"id": "abc"}, wantStatus: http.StatusBadRequest},
		{name: "not found", query: map[string]string{"id": "9"}, err: exchangerate.ErrMarkupNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID uint
			manager := &mockMarkupManager{
				deactivateFn: func(ctx context.Context, id uint) error {
					gotID = id
					return tt.err
				},
			}
			handler := newTestExchangeRateHandler(nil, nil, nil, manager)
			c, w := testutil.NewTestContext(http.MethodDelete, "/api/exchange-rates", nil)
			testutil.SetQueryParams(c, tt.query)

			handler.DeactivateMarkup(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, uint(3), gotID)
			}
		})
	}
}

func TestExchangeRateHandler_AdminReads(t *testing.T) {
	markup, err := exchangerate.NewMarkup(exchangerate.USD, exchangerate.IRR, 2, 1, 600000)
	require.NoError(t, err)

	manager := &mockMarkupManager{
		listFn: func(ctx context.Context) ([]*exchangerate.Markup, error) {
			return []*exchangerate.Markup{markup}, nil
		},
		mergedFn: func(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
			return testRates(), nil
		},
		refreshFn: func(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
			return nil, exchangerate.ErrUpstreamUnavailable
		},
	}
	handler := newTestExchangeRateHandler(nil, nil, nil, manager)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/exchange-rates/markups", nil)
	handler.ListMarkups(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/exchange-rates", nil)
	handler.ListMergedRates(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var rates []dto.ExchangeRateResponse
	require.NoError(t, json.Unmarshal(resp.Data, &rates))
	assert.Len(t, rates, 2)

	c, w = testutil.NewTestContext(http.MethodPost, "/api/exchange-rates/refresh", nil)
	handler.RefreshRates(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
