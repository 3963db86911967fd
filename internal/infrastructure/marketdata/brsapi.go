// Package marketdata reads spot currency prices from the BrsAPI public feed.
package marketdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	appExchangeRate "github.com/avestaexchange/avesta/internal/application/exchangerate"
	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/shared/biztime"
	"github.com/avestaexchange/avesta/internal/shared/config"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

const (
	DefaultEndpoint         = "https://brsapi.ir/FreeTsetmcBourseApi/Api_Free_Gold_Currency.json"
	DefaultTimeout          = 10 * time.Second
	DefaultMaxResponseBytes = 1 << 20
)

// feedNames are the feed's display names per supported base currency.
var feedNames = map[exchangerate.Currency]string{
	exchangerate.USD: "دلار",
	exchangerate.EUR: "یورو",
	exchangerate.GBP: "پوند",
	exchangerate.AED: "درهم امارات",
}

type feedResponse struct {
	Currency []feedItem `json:"currency"`
}

type feedItem struct {
	Name   string     `json:"name"`
	Price  feedNumber `json:"price"`
	Time   string     `json:"time"`
	Change feedNumber `json:"change"`
}

// feedNumber accepts a JSON number or a numeric string with thousands separators.
type feedNumber struct {
	Value float64
	Valid bool
}

func (n *feedNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = feedNumber{}
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = feedNumber{}
		return nil
	}
	*n = feedNumber{Value: v, Valid: true}
	return nil
}

// BrsAPIClient implements appExchangeRate.MarketDataClient.
type BrsAPIClient struct {
	endpoint   string
	maxBytes   int64
	httpClient *http.Client
	logger     logger.Interface
}

func NewBrsAPIClient(cfg config.MarketConfig, log logger.Interface) *BrsAPIClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxResponseBytes
	}

	return &BrsAPIClient{
		endpoint:   endpoint,
		maxBytes:   maxBytes,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.With("component", "marketdata.brsapi"),
	}
}

func (c *BrsAPIClient) Name() string {
	return "brsapi"
}

// FetchSpotPrices reads the feed once and returns Toman prices for every
// supported base currency.
func (c *BrsAPIClient) FetchSpotPrices(ctx context.Context) (*appExchangeRate.SpotQuotes, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", exchangerate.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", exchangerate.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warnw("market feed returned error status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: feed returned status %d", exchangerate.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body feedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, c.maxBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode feed: %v", exchangerate.ErrUpstreamUnavailable, err)
	}

	return parseQuotes(body.Currency, biztime.NowUTC())
}

func parseQuotes(items []feedItem, fetchedAt time.Time) (*appExchangeRate.SpotQuotes, error) {
	byName := make(map[string]feedItem, len(items))
	for _, item := range items {
		key := normalizeName(item.Name)
		if _, seen := byName[key]; !seen {
			byName[key] = item
		}
	}

	quotes := make(map[exchangerate.Currency]appExchangeRate.SpotQuote, len(exchangerate.SupportedBases))
	for _, cur := range exchangerate.SupportedBases {
		item, ok := byName[normalizeName(feedNames[cur])]
		if !ok {
			return nil, &exchangerate.MissingRateError{Currency: cur, Reason: "not in feed"}
		}
		price := item.Price.Value
		if !item.Price.Valid || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
			return nil, &exchangerate.MissingRateError{Currency: cur, Reason: "invalid price"}
		}

		change := 0.0
		if item.Change.Valid && !math.IsNaN(item.Change.Value) && !math.IsInf(item.Change.Value, 0) {
			change = item.Change.Value
		}

		quotes[cur] = appExchangeRate.SpotQuote{
			Currency:   cur,
			PriceToman: price,
			Change:     change,
		}
	}

	return &appExchangeRate.SpotQuotes{Quotes: quotes, FetchedAt: fetchedAt}, nil
}
