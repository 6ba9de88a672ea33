// Package p2parmy is the fallback P2P order book source, used when the
// primary Binance search fails or returns too few offers.
package p2parmy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
)

type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: http.DefaultClient,
	}
}

type Ad struct {
	Price     decimal.Decimal
	Seller    string
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
}

// OrderBook is the parsed fallback response. Status is the upstream
// status flag; anything other than 1 means the book is unusable.
type OrderBook struct {
	Status int
	Ads    []Ad
}

type orderBookRequest struct {
	Market string `json:"market"`
	Fiat   string `json:"fiat"`
	Asset  string `json:"asset"`
	Side   string `json:"side"`
	Limit  int    `json:"limit"`
}

type orderBookResponse struct {
	Status int `json:"status"`
	Ads    []struct {
		Price    string `json:"price"`
		UserName string `json:"user_name"`
		MinFiat  string `json:"min_fiat"`
		MaxFiat  string `json:"max_fiat"`
	} `json:"ads"`
}

func (c *Client) GetOrderBook(ctx context.Context) (*OrderBook, error) {
	body, err := json.Marshal(orderBookRequest{
		Market: "binance",
		Fiat:   "COP",
		Asset:  "USDT",
		Side:   "SELL",
		Limit:  5,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

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

	parsed := orderBookResponse{}
	if err := json.Unmarshal(responseBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse order book response: %w", err)
	}

	book := &OrderBook{Status: parsed.Status}
	for _, ad := range parsed.Ads {
		price, err := decimal.NewFromString(ad.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ad price %q: %w", ad.Price, err)
		}
		minAmount, _ := decimal.NewFromString(ad.MinFiat)
		maxAmount, _ := decimal.NewFromString(ad.MaxFiat)

		book.Ads = append(book.Ads, Ad{
			Price:     price,
			Seller:    ad.UserName,
			MinAmount: minAmount,
			MaxAmount: maxAmount,
		})
	}

	return book, nil
}
