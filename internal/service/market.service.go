package service

import (
	"cambio/internal/domain"
	"cambio/pkg/coingecko"
	"context"
	"fmt"
	"strings"
)

type MarketSource interface {
	GetMarkets(ctx context.Context, ids []string) ([]coingecko.MarketAsset, error)
}

type MarketDataService interface {
	GetSnapshots(ctx context.Context) (map[string]domain.AssetSnapshot, error)
}

type marketDataServiceHandler struct {
	Source  MarketSource
	Tracked []domain.TrackedAsset
}

func NewMarketDataService(source MarketSource, tracked []domain.TrackedAsset) MarketDataService {
	return &marketDataServiceHandler{
		Source:  source,
		Tracked: tracked,
	}
}

// GetSnapshots fetches the full tracked list in one batched call and
// keys the result by asset id. Ids missing upstream leave a hole in the
// set; the configured symbol and featured flag are authoritative.
func (h *marketDataServiceHandler) GetSnapshots(ctx context.Context) (map[string]domain.AssetSnapshot, error) {
	ids := make([]string, 0, len(h.Tracked))
	for _, asset := range h.Tracked {
		ids = append(ids, asset.ID)
	}

	assets, err := h.Source.GetMarkets(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market snapshots: %w", err)
	}

	byID := map[string]coingecko.MarketAsset{}
	for _, asset := range assets {
		byID[strings.ToLower(asset.ID)] = asset
	}

	snapshots := map[string]domain.AssetSnapshot{}
	for _, tracked := range h.Tracked {
		upstream, ok := byID[tracked.ID]
		if !ok {
			continue
		}
		snapshots[tracked.ID] = domain.AssetSnapshot{
			ID:               tracked.ID,
			Symbol:           tracked.Symbol,
			CurrentPriceUSD:  upstream.CurrentPrice,
			Change24hPercent: upstream.Change24hPercent,
			RecentPrices:     trimSeries(upstream.Sparkline.Price),
			Featured:         tracked.Featured,
		}
	}

	return snapshots, nil
}

func trimSeries(prices []float64) []float64 {
	if len(prices) <= domain.MaxRecentPrices {
		return prices
	}
	return prices[len(prices)-domain.MaxRecentPrices:]
}
