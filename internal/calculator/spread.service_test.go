package calculator

import (
	"cambio/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
	return d1.Equal(d2)
})

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestComputeDecision(t *testing.T) {
	t.Run("estimates p2p value when no override given", func(t *testing.T) {
		decision := ComputeDecision(decimal.NewFromInt(4000), nil)

		require.Equal(t, "4128", decision.P2PValue.String())
		require.InDelta(t, 3.2, decision.SpreadPercent, 0.0001)
		require.Equal(t, domain.ClassificationNormal, decision.Classification)
		require.Equal(t, "4156", decision.CardNetworkRate.String())
	})

	t.Run("uses positive override as p2p value", func(t *testing.T) {
		decision := ComputeDecision(decimal.NewFromInt(4000), decimalPtr(decimal.NewFromInt(4050)))

		require.Equal(t, "4050", decision.P2PValue.String())
		require.InDelta(t, 1.25, decision.SpreadPercent, 0.0001)
		require.Equal(t, domain.ClassificationCheap, decision.Classification)
	})

	t.Run("ignores non-positive override", func(t *testing.T) {
		decision := ComputeDecision(decimal.NewFromInt(4000), decimalPtr(decimal.NewFromInt(-10)))

		require.Equal(t, "4128", decision.P2PValue.String())
	})

	t.Run("falls back to default reference rate", func(t *testing.T) {
		decision := ComputeDecision(decimal.Zero, nil)

		require.Equal(t, domain.DefaultReferenceRate.String(), decision.ReferenceRate.String())
		require.Equal(t, "4180", decision.P2PValue.String())
		require.Equal(t, domain.ClassificationNormal, decision.Classification)
	})

	t.Run("estimate matches rounded multiplier for a range of rates", func(t *testing.T) {
		for _, rate := range []int64{3500, 3900, 4000, 4133, 4500, 5000} {
			ref := decimal.NewFromInt(rate)
			decision := ComputeDecision(ref, nil)

			expected := ref.Mul(decimal.NewFromFloat(1.032)).Round(0)
			require.Equal(t, expected.String(), decision.P2PValue.String(), "rate %d", rate)
		}
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		spread   float64
		expected domain.Classification
	}{
		{2.4, domain.ClassificationCheap},
		{2.5, domain.ClassificationNormal},
		{3.0, domain.ClassificationNormal},
		{3.5, domain.ClassificationNormal},
		{3.6, domain.ClassificationExpensive},
		{-1.0, domain.ClassificationCheap},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, Classify(tc.spread), "spread %f", tc.spread)
	}
}

func TestFormatSpread(t *testing.T) {
	require.Equal(t, "+3.2", FormatSpread(3.2))
	require.Equal(t, "+0.0", FormatSpread(0))
	require.Equal(t, "-1.3", FormatSpread(-1.25))
	require.Equal(t, "+1.3", FormatSpread(1.25))
}

func TestComputePortfolioValue(t *testing.T) {
	snapshots := map[string]domain.AssetSnapshot{
		"bitcoin":  {ID: "bitcoin", Symbol: "BTC", CurrentPriceUSD: 50000},
		"ethereum": {ID: "ethereum", Symbol: "ETH", CurrentPriceUSD: 2500},
	}
	p2pValue := decimal.NewFromInt(4128)

	t.Run("values holdings in usd and cop", func(t *testing.T) {
		holdings := domain.Holdings{
			"bitcoin":  decimal.NewFromFloat(0.5),
			"ethereum": decimal.NewFromInt(2),
		}

		valuation := ComputePortfolioValue(holdings, snapshots, p2pValue)

		require.Equal(t, "", cmp.Diff(
			domain.PortfolioValuation{
				PerAssetUSD: map[string]decimal.Decimal{
					"bitcoin":  decimal.NewFromInt(25000),
					"ethereum": decimal.NewFromInt(5000),
				},
				PerAssetCOP: map[string]decimal.Decimal{
					"bitcoin":  decimal.NewFromInt(103200000),
					"ethereum": decimal.NewFromInt(20640000),
				},
				TotalUSD: decimal.NewFromInt(30000),
				TotalCOP: decimal.NewFromInt(123840000),
			},
			valuation,
			decimalComparer,
		))
	})

	t.Run("missing snapshot contributes zero", func(t *testing.T) {
		holdings := domain.Holdings{
			"bitcoin":   decimal.NewFromInt(1),
			"useless-3": decimal.NewFromInt(1000),
		}

		valuation := ComputePortfolioValue(holdings, snapshots, p2pValue)

		require.True(t, valuation.PerAssetUSD["useless-3"].IsZero())
		require.Equal(t, "50000", valuation.TotalUSD.String())
	})
}

func TestSummarizeSeries(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		summary, err := SummarizeSeries(nil)
		require.NoError(t, err)
		require.Zero(t, summary.Mean)
		require.Zero(t, summary.Volatility)
	})

	t.Run("single point has no volatility", func(t *testing.T) {
		summary, err := SummarizeSeries([]float64{100})
		require.NoError(t, err)
		require.InDelta(t, 100, summary.Mean, 0.0001)
		require.Zero(t, summary.Volatility)
	})

	t.Run("mean and stdev", func(t *testing.T) {
		summary, err := SummarizeSeries([]float64{100, 102, 98, 100})
		require.NoError(t, err)
		require.InDelta(t, 100, summary.Mean, 0.0001)
		require.Greater(t, summary.Volatility, 0.0)
	})
}
