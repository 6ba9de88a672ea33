package domain

// TrackedAsset is one entry of the fixed, ordered tracking list. Exactly
// one asset is flagged featured for visual emphasis; it does not affect
// any computation.
type TrackedAsset struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Featured bool   `json:"featured"`
}

// TrackedAssets is the configured tracking list, in display order.
var TrackedAssets = []TrackedAsset{
	{ID: "cypher-2", Symbol: "CYPR", Featured: true},
	{ID: "bitcoin", Symbol: "BTC"},
	{ID: "ethereum", Symbol: "ETH"},
	{ID: "solana", Symbol: "SOL"},
	{ID: "useless-3", Symbol: "USELESS"},
}

// MaxRecentPrices caps the sparkline series carried in a snapshot.
const MaxRecentPrices = 20

// AssetSnapshot is the current market view of one tracked asset. The
// snapshot set is replaced atomically on each successful poll; a missing
// upstream entry leaves a hole in the set, never an error.
type AssetSnapshot struct {
	ID               string    `json:"id"`
	Symbol           string    `json:"symbol"`
	CurrentPriceUSD  float64   `json:"currentPriceUsd"`
	Change24hPercent float64   `json:"change24hPercent"`
	RecentPrices     []float64 `json:"recentPrices"`
	Featured         bool      `json:"featured"`
}

// SeriesSummary holds descriptive stats over a snapshot's recent price
// series, for display next to the sparkline.
type SeriesSummary struct {
	Mean       float64 `json:"mean"`
	Volatility float64 `json:"volatility"`
}
