package service

import (
	"cambio/internal/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func alert(symbol string, target int64, direction domain.AlertDirection) domain.PriceAlert {
	return domain.PriceAlert{
		ID:             uuid.New(),
		Symbol:         symbol,
		TargetPriceUSD: decimal.NewFromInt(target),
		Direction:      direction,
	}
}

func TestCheck(t *testing.T) {
	snapshots := map[string]domain.AssetSnapshot{
		"bitcoin":  {ID: "bitcoin", Symbol: "BTC", CurrentPriceUSD: 50000},
		"ethereum": {ID: "ethereum", Symbol: "ETH", CurrentPriceUSD: 2499.99},
	}

	t.Run("above fires at exactly the target", func(t *testing.T) {
		notification, fired := Check(alert("BTC", 50000, domain.AlertDirectionAbove), snapshots)
		require.True(t, fired)
		require.Contains(t, notification.Message, "BTC")
		require.Equal(t, 50000.0, notification.PriceUSD)
	})

	t.Run("above does not fire just below the target", func(t *testing.T) {
		below := map[string]domain.AssetSnapshot{
			"bitcoin": {ID: "bitcoin", Symbol: "BTC", CurrentPriceUSD: 49999.99},
		}
		_, fired := Check(alert("BTC", 50000, domain.AlertDirectionAbove), below)
		require.False(t, fired)
	})

	t.Run("below fires at or under the target", func(t *testing.T) {
		_, fired := Check(alert("ETH", 2500, domain.AlertDirectionBelow), snapshots)
		require.True(t, fired)
	})

	t.Run("symbol match is case-insensitive", func(t *testing.T) {
		_, fired := Check(alert("btc", 1, domain.AlertDirectionAbove), snapshots)
		require.True(t, fired)
	})

	t.Run("missing snapshot is skipped, not an error", func(t *testing.T) {
		_, fired := Check(alert("CYPR", 1, domain.AlertDirectionAbove), snapshots)
		require.False(t, fired)
	})
}

func TestEvaluate(t *testing.T) {
	snapshots := map[string]domain.AssetSnapshot{
		"bitcoin":  {ID: "bitcoin", Symbol: "BTC", CurrentPriceUSD: 50000},
		"ethereum": {ID: "ethereum", Symbol: "ETH", CurrentPriceUSD: 2500},
	}

	t.Run("nothing fires", func(t *testing.T) {
		notification := Evaluate([]domain.PriceAlert{
			alert("BTC", 60000, domain.AlertDirectionAbove),
			alert("ETH", 2000, domain.AlertDirectionBelow),
		}, snapshots)
		require.Nil(t, notification)
	})

	t.Run("last matching alert wins", func(t *testing.T) {
		first := alert("BTC", 40000, domain.AlertDirectionAbove)
		second := alert("ETH", 3000, domain.AlertDirectionBelow)

		notification := Evaluate([]domain.PriceAlert{first, second}, snapshots)
		require.NotNil(t, notification)
		require.Equal(t, second.ID, notification.Alert.ID)
	})

	t.Run("re-fires on every pass while the condition holds", func(t *testing.T) {
		alerts := []domain.PriceAlert{alert("BTC", 40000, domain.AlertDirectionAbove)}

		require.NotNil(t, Evaluate(alerts, snapshots))
		require.NotNil(t, Evaluate(alerts, snapshots))
	})
}
