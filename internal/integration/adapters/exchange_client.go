package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashgps/backend/internal/application/adapter"
)

const exchangeRequestTimeout = 10 * time.Second

// exchangeClient implements adapter.ExchangeRateService against an
// exchange-rates HTTP API returning {"rates": {"EUR": 0.92, ...}}.
type exchangeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewExchangeClient creates an exchange-rates API client.
func NewExchangeClient(baseURL, apiKey string) adapter.ExchangeRateService {
	return &exchangeClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: exchangeRequestTimeout,
		},
	}
}

type ratesResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// Rate resolves the conversion rate from one currency to another.
func (c *exchangeClient) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/latest?base=%s&symbols=%s&access_key=%s",
		c.baseURL, url.QueryEscape(from), url.QueryEscape(to), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build exchange rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode exchange rate response: %w", err)
	}

	raw, ok := body.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("exchange rate API has no rate for %s", to)
	}

	rate, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid exchange rate %q: %w", raw.String(), err)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("exchange rate for %s is not positive", to)
	}
	return rate, nil
}
