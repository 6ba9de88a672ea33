// Package binance fetches ranked P2P sell offers for USDT against COP
// from the Binance C2C search endpoint.
package binance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
)

// the endpoint rejects default Go user agents; a mobile UA is enough
const userAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"

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

// StatusError reports a response that arrived with a non-200 status.
// The endpoint rejects datacenter IPs with a JSON error body, so this
// means "no offer data from here", not a transport failure.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("failed with status code %d: %s", e.StatusCode, e.Body)
}

// Offer is one ranked sell offer, best price first.
type Offer struct {
	Price     decimal.Decimal
	Seller    string
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
}

type searchRequest struct {
	Fiat              string   `json:"fiat"`
	Page              int      `json:"page"`
	Rows              int      `json:"rows"`
	TradeType         string   `json:"tradeType"`
	Asset             string   `json:"asset"`
	Countries         []string `json:"countries"`
	ProMerchantAds    bool     `json:"proMerchantAds"`
	ShieldMerchantAds bool     `json:"shieldMerchantAds"`
	PublisherType     *string  `json:"publisherType"`
	PayTypes          []string `json:"payTypes"`
}

type searchResponse struct {
	Data []struct {
		Adv struct {
			Price                string `json:"price"`
			MinSingleTransAmount string `json:"minSingleTransAmount"`
			MaxSingleTransAmount string `json:"maxSingleTransAmount"`
		} `json:"adv"`
		Advertiser struct {
			NickName string `json:"nickName"`
		} `json:"advertiser"`
	} `json:"data"`
}

// GetSellOffers returns the ranked USDT/COP sell offers. The list may be
// shorter than requested; callers apply their own sufficiency rule.
func (c *Client) GetSellOffers(ctx context.Context) ([]Offer, error) {
	body, err := json.Marshal(searchRequest{
		Fiat:      "COP",
		Page:      1,
		Rows:      5,
		TradeType: "SELL",
		Asset:     "USDT",
		Countries: []string{},
		PayTypes:  []string{},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

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
		return nil, StatusError{StatusCode: response.StatusCode, Body: string(responseBytes)}
	}

	parsed := searchResponse{}
	if err := json.Unmarshal(responseBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse p2p search response: %w", err)
	}

	offers := make([]Offer, 0, len(parsed.Data))
	for _, entry := range parsed.Data {
		price, err := decimal.NewFromString(entry.Adv.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to parse offer price %q: %w", entry.Adv.Price, err)
		}
		minAmount, _ := decimal.NewFromString(entry.Adv.MinSingleTransAmount)
		maxAmount, _ := decimal.NewFromString(entry.Adv.MaxSingleTransAmount)

		offers = append(offers, Offer{
			Price:     price,
			Seller:    entry.Advertiser.NickName,
			MinAmount: minAmount,
			MaxAmount: maxAmount,
		})
	}

	return offers, nil
}
