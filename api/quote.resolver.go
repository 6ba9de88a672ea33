package api

import (
	"cambio/internal/service"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	Price     *decimal.Decimal `json:"price"`
	Seller    string           `json:"seller,omitempty"`
	MinAmount *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount *decimal.Decimal `json:"maxAmount,omitempty"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
	Source    string           `json:"source,omitempty"`
	Error     string           `json:"error,omitempty"`
	Debug     map[string]int   `json:"debug,omitempty"`
}

// cachedQuote serves the last good quote without a network call, for an
// immediate paint. A live fetch should always follow.
func (m ApiHandler) cachedQuote(c *gin.Context) {
	quote, age, ok := m.App.CachedQuote()
	if !ok {
		c.JSON(200, QuoteResponse{Price: nil, Error: "no cached quote"})
		return
	}
	c.JSON(200, gin.H{
		"price":     quote.Price,
		"seller":    quote.Seller,
		"minAmount": quote.MinAmount,
		"maxAmount": quote.MaxAmount,
		"updatedAt": quote.UpdatedAt,
		"source":    quote.Source,
		"ageMillis": age.Milliseconds(),
	})
}

// quote proxies the upstream P2P aggregation. An insufficient upstream
// response is still a 200 with a null price; only transport failures
// are a 500.
func (m ApiHandler) quote(c *gin.Context) {
	outcome := m.App.FetchQuote(c.Request.Context())

	switch outcome.Status {
	case service.QuoteStatusOK:
		quote := outcome.Quote
		c.JSON(200, QuoteResponse{
			Price:     &quote.Price,
			Seller:    quote.Seller,
			MinAmount: &quote.MinAmount,
			MaxAmount: &quote.MaxAmount,
			UpdatedAt: &quote.UpdatedAt,
			Source:    quote.Source,
		})
	case service.QuoteStatusInsufficientData:
		c.JSON(200, QuoteResponse{
			Price: nil,
			Error: outcome.Reason,
			Debug: outcome.Debug,
		})
	default:
		returnErrorJson(fmt.Errorf("quote aggregation failed: %s", outcome.Reason), c)
	}
}
