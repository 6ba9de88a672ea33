// Package datosgov fetches the official COP/USD reference rate (TRM)
// from the Colombian open-data portal.
package datosgov

import (
	"cambio/internal/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
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

type trmRecord struct {
	Valor         string `json:"valor"`
	VigenciaDesde string `json:"vigenciadesde"`
}

// GetLatestRate returns the single most recent TRM record by effective
// date.
func (c *Client) GetLatestRate(ctx context.Context) (*domain.ReferenceRate, error) {
	query := url.Values{}
	query.Set("$limit", "1")
	query.Set("$order", "vigenciadesde DESC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+query.Encode(), nil)
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

	records := []trmRecord{}
	if err := json.Unmarshal(responseBytes, &records); err != nil {
		return nil, fmt.Errorf("failed to parse trm response: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("trm response contained no records")
	}

	value, err := decimal.NewFromString(records[0].Valor)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trm value %q: %w", records[0].Valor, err)
	}

	effectiveDate, err := parseEffectiveDate(records[0].VigenciaDesde)
	if err != nil {
		return nil, err
	}

	return &domain.ReferenceRate{
		Value:         value,
		EffectiveDate: effectiveDate,
	}, nil
}

func parseEffectiveDate(in string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02T15:04:05.000",
		time.RFC3339,
		time.DateOnly,
	} {
		if t, err := time.Parse(layout, in); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse effective date %q", in)
}
