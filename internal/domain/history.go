package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxHistoryEntries caps the confirmed-entry log; oldest entries are
// silently dropped.
const MaxHistoryEntries = 30

// HistoryEntry records one explicitly confirmed manual P2P price, along
// with the reference rate and spread at the time of confirmation. This is
// a user action log, not a time series sample.
type HistoryEntry struct {
	P2PPrice      decimal.Decimal `json:"p2pPrice" csv:"p2p_price"`
	ReferenceRate decimal.Decimal `json:"referenceRate" csv:"reference_rate"`
	SpreadPercent float64         `json:"spreadPercent" csv:"spread_percent"`
	Timestamp     time.Time       `json:"timestamp" csv:"timestamp"`
}
