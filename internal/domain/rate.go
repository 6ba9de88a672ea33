package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReferenceRate is substituted when the upstream TRM source is
// unavailable, so a decision can always be rendered.
var DefaultReferenceRate = decimal.NewFromInt(4050)

// ReferenceRate is the official COP/USD rate (TRM), published once daily.
// Replaced wholesale on each successful fetch.
type ReferenceRate struct {
	Value         decimal.Decimal `json:"value"`
	EffectiveDate time.Time       `json:"effectiveDate"`
}

func (r ReferenceRate) IsZero() bool {
	return r.Value.IsZero()
}

// P2PQuote is a best-effort peer-to-peer sell quote for USDT against COP.
type P2PQuote struct {
	Price     decimal.Decimal `json:"price"`
	Seller    string          `json:"seller"`
	MinAmount decimal.Decimal `json:"minAmount"`
	MaxAmount decimal.Decimal `json:"maxAmount"`
	Source    string          `json:"source"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Classification string

const (
	ClassificationCheap     Classification = "cheap"
	ClassificationNormal    Classification = "normal"
	ClassificationExpensive Classification = "expensive"
)

// DecisionState is derived on every read from the current reference rate
// and P2P value. It is never persisted.
type DecisionState struct {
	ReferenceRate   decimal.Decimal `json:"referenceRate"`
	P2PValue        decimal.Decimal `json:"p2pValue"`
	SpreadPercent   float64         `json:"spreadPercent"`
	Classification  Classification  `json:"classification"`
	CardNetworkRate decimal.Decimal `json:"cardNetworkRate"`
}
