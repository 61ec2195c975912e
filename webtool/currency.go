package webtool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Rates is the exchange-rate table for one base currency.
type Rates struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// RatesClient fetches exchange rates from exchangerate-api.com.
type RatesClient struct {
	baseURL string
	http    *http.Client
}

// NewRatesClient creates a client against the public API.
func NewRatesClient() *RatesClient {
	return &RatesClient{
		baseURL: "https://api.exchangerate-api.com",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Latest returns the current rates for the base currency. An empty
// base defaults to USD.
func (c *RatesClient) Latest(ctx context.Context, base string) (*Rates, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = "USD"
	}

	endpoint := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates API returned %d for base %s", resp.StatusCode, base)
	}

	var rates Rates
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, fmt.Errorf("failed to parse rates response: %w", err)
	}
	if rates.Base == "" {
		rates.Base = base
	}

	return &rates, nil
}
