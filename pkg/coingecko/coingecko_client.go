// Package coingecko fetches current market data for the tracked asset
// list in one batched call, avoiding per-asset requests.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// MarketAsset is one entry of the batched markets response.
type MarketAsset struct {
	ID               string  `json:"id"`
	Symbol           string  `json:"symbol"`
	CurrentPrice     float64 `json:"current_price"`
	Change24hPercent float64 `json:"price_change_percentage_24h"`
	Sparkline        struct {
		Price []float64 `json:"price"`
	} `json:"sparkline_in_7d"`
}

// GetMarkets fetches price, 24h change and a short price history for all
// requested ids in a single call. Ids missing upstream are simply absent
// from the result.
func (c *Client) GetMarkets(ctx context.Context, ids []string) ([]MarketAsset, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("ids", strings.Join(ids, ","))
	query.Set("price_change_percentage", "24h")
	query.Set("sparkline", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/coins/markets?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	assets := []MarketAsset{}
	if err := json.Unmarshal(responseBytes, &assets); err != nil {
		return nil, fmt.Errorf("failed to parse markets response: %w", err)
	}

	return assets, nil
}
