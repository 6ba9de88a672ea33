package calculator

import (
	"cambio/internal/domain"
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const (
	// typical observed markup of the P2P market over the official rate,
	// used to estimate a P2P value when no manual price is entered
	p2pEstimateMultiplier = 1.032

	// typical card network fee over the official rate
	cardNetworkMultiplier = 1.039

	cheapBelowPercent     = 2.5
	expensiveAbovePercent = 3.5
)

// ComputeDecision derives the full decision state from the current
// reference rate and an optional manual P2P override. It never fails: a
// zero/absent reference rate falls back to domain.DefaultReferenceRate,
// and an invalid (non-positive) override is ignored.
func ComputeDecision(referenceRate decimal.Decimal, p2pOverride *decimal.Decimal) domain.DecisionState {
	if referenceRate.IsZero() || referenceRate.IsNegative() {
		referenceRate = domain.DefaultReferenceRate
	}

	var p2pValue decimal.Decimal
	if p2pOverride != nil && p2pOverride.IsPositive() {
		p2pValue = *p2pOverride
	} else {
		p2pValue = referenceRate.Mul(decimal.NewFromFloat(p2pEstimateMultiplier)).Round(0)
	}

	spreadPercent := p2pValue.Sub(referenceRate).InexactFloat64() / referenceRate.InexactFloat64() * 100

	return domain.DecisionState{
		ReferenceRate:   referenceRate,
		P2PValue:        p2pValue,
		SpreadPercent:   spreadPercent,
		Classification:  Classify(spreadPercent),
		CardNetworkRate: CardNetworkRate(referenceRate),
	}
}

// Classify buckets a spread percentage. The boundary values 2.5 and 3.5
// are normal.
func Classify(spreadPercent float64) domain.Classification {
	switch {
	case spreadPercent < cheapBelowPercent:
		return domain.ClassificationCheap
	case spreadPercent > expensiveAbovePercent:
		return domain.ClassificationExpensive
	default:
		return domain.ClassificationNormal
	}
}

// CardNetworkRate is a comparison figure only; it does not participate
// in classification.
func CardNetworkRate(referenceRate decimal.Decimal) decimal.Decimal {
	return referenceRate.Mul(decimal.NewFromFloat(cardNetworkMultiplier)).Round(0)
}

// FormatSpread renders a spread percentage with one decimal place and a
// leading + for non-negative values, e.g. "+3.2".
func FormatSpread(spreadPercent float64) string {
	if spreadPercent >= 0 {
		return fmt.Sprintf("+%.1f", spreadPercent)
	}
	return fmt.Sprintf("%.1f", spreadPercent)
}

// ComputePortfolioValue values holdings against the current snapshot set.
// A holding with no matching snapshot contributes zero. COP values use
// the decision P2P rate, not the official rate.
func ComputePortfolioValue(
	holdings domain.Holdings,
	snapshots map[string]domain.AssetSnapshot,
	p2pValue decimal.Decimal,
) domain.PortfolioValuation {
	valuation := domain.PortfolioValuation{
		PerAssetUSD: map[string]decimal.Decimal{},
		PerAssetCOP: map[string]decimal.Decimal{},
		TotalUSD:    decimal.Zero,
		TotalCOP:    decimal.Zero,
	}

	for assetKey, quantity := range holdings {
		valueUSD := decimal.Zero
		if snapshot, ok := snapshots[assetKey]; ok {
			valueUSD = quantity.Mul(decimal.NewFromFloat(snapshot.CurrentPriceUSD))
		}
		valueCOP := valueUSD.Mul(p2pValue)

		valuation.PerAssetUSD[assetKey] = valueUSD
		valuation.PerAssetCOP[assetKey] = valueCOP
		valuation.TotalUSD = valuation.TotalUSD.Add(valueUSD)
		valuation.TotalCOP = valuation.TotalCOP.Add(valueCOP)
	}

	return valuation
}

// SummarizeSeries computes descriptive stats over a snapshot's recent
// price series. Series shorter than two points have zero volatility.
func SummarizeSeries(prices []float64) (domain.SeriesSummary, error) {
	if len(prices) == 0 {
		return domain.SeriesSummary{}, nil
	}

	mean, err := stats.Mean(prices)
	if err != nil {
		return domain.SeriesSummary{}, err
	}

	volatility := 0.0
	if len(prices) > 1 {
		volatility, err = stats.StandardDeviationSample(prices)
		if err != nil {
			return domain.SeriesSummary{}, err
		}
	}

	return domain.SeriesSummary{
		Mean:       mean,
		Volatility: volatility,
	}, nil
}
