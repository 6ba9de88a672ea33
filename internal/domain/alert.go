package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AlertDirection string

const (
	AlertDirectionAbove AlertDirection = "above"
	AlertDirectionBelow AlertDirection = "below"
)

// PriceAlert is a user-defined threshold on a tracked symbol. Alerts have
// no expiry; they fire level-triggered on every evaluation pass while the
// condition holds.
type PriceAlert struct {
	ID             uuid.UUID       `json:"id"`
	Symbol         string          `json:"symbol"`
	TargetPriceUSD decimal.Decimal `json:"targetPriceUsd"`
	Direction      AlertDirection  `json:"direction"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Notification is the single active human-readable alert message. When
// several alerts fire in one pass, the last matching alert's message wins.
type Notification struct {
	Message  string     `json:"message"`
	Alert    PriceAlert `json:"alert"`
	PriceUSD float64    `json:"priceUsd"`
	RaisedAt time.Time  `json:"raisedAt"`
}
