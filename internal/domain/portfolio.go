package domain

import "github.com/shopspring/decimal"

// Holdings maps an asset key (tracked-asset id) to a quantity held.
// Holdings are ephemeral: valuation is recomputed on every snapshot
// update, nothing is persisted.
type Holdings map[string]decimal.Decimal

// PortfolioValuation is the result of valuing holdings against the
// current snapshot set. COP figures use the decision P2P rate, not the
// official rate, reflecting the real conversion cost.
type PortfolioValuation struct {
	PerAssetUSD map[string]decimal.Decimal `json:"perAssetUsd"`
	PerAssetCOP map[string]decimal.Decimal `json:"perAssetCop"`
	TotalUSD    decimal.Decimal            `json:"totalUsd"`
	TotalCOP    decimal.Decimal            `json:"totalCop"`
}
