package repository

import (
	"cambio/internal/domain"
	"cambio/internal/store"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	return store.NewFileStore(dir, zap.NewNop().Sugar()), dir
}

func TestAlertRepository(t *testing.T) {
	t.Run("add list remove round trip", func(t *testing.T) {
		s, _ := newTestStore(t)
		repo := NewAlertRepository(s)

		first, err := repo.Add("btc", "50000", domain.AlertDirectionAbove)
		require.NoError(t, err)
		second, err := repo.Add("ETH", "2000", domain.AlertDirectionBelow)
		require.NoError(t, err)

		alerts := repo.List()
		require.Len(t, alerts, 2)
		require.Equal(t, "BTC", alerts[0].Symbol)
		require.Equal(t, first.ID, alerts[0].ID)
		require.Equal(t, second.ID, alerts[1].ID)

		require.True(t, repo.Remove(first.ID))
		require.False(t, repo.Remove(first.ID))
		require.Len(t, repo.List(), 1)
	})

	t.Run("rejects invalid targets", func(t *testing.T) {
		s, _ := newTestStore(t)
		repo := NewAlertRepository(s)

		_, err := repo.Add("BTC", "not-a-number", domain.AlertDirectionAbove)
		require.Error(t, err)

		_, err = repo.Add("BTC", "-5", domain.AlertDirectionAbove)
		require.Error(t, err)

		_, err = repo.Add("BTC", "5", domain.AlertDirection("sideways"))
		require.Error(t, err)

		require.Empty(t, repo.List())
	})

	t.Run("corrupt storage yields empty list", func(t *testing.T) {
		s, dir := newTestStore(t)
		repo := NewAlertRepository(s)

		err := os.WriteFile(filepath.Join(dir, "alerts.json"), []byte("%%%"), 0o644)
		require.NoError(t, err)

		require.Empty(t, repo.List())
	})
}

func TestHistoryRepository(t *testing.T) {
	t.Run("newest first, capped", func(t *testing.T) {
		s, _ := newTestStore(t)
		repo := NewHistoryRepository(s)

		for i := 0; i < domain.MaxHistoryEntries+1; i++ {
			repo.Append(domain.HistoryEntry{
				P2PPrice:      decimal.NewFromInt(int64(4000 + i)),
				ReferenceRate: decimal.NewFromInt(4000),
				SpreadPercent: float64(i) / 40,
				Timestamp:     time.Now().UTC(),
			})
		}

		entries := repo.List()
		require.Len(t, entries, domain.MaxHistoryEntries)
		// entry 0 (price 4000) was dropped; newest (price 4030) is first
		require.Equal(t, fmt.Sprintf("%d", 4000+domain.MaxHistoryEntries), entries[0].P2PPrice.String())
		require.Equal(t, "4001", entries[len(entries)-1].P2PPrice.String())
	})

	t.Run("clear empties the persisted log", func(t *testing.T) {
		s, _ := newTestStore(t)
		repo := NewHistoryRepository(s)

		repo.Append(domain.HistoryEntry{
			P2PPrice:      decimal.NewFromInt(4128),
			ReferenceRate: decimal.NewFromInt(4000),
			Timestamp:     time.Now().UTC(),
		})
		require.Len(t, repo.List(), 1)

		repo.Clear()
		require.Empty(t, repo.List())

		// clearing an already-empty log is a no-op
		repo.Clear()
		require.Empty(t, repo.List())
	})
}

func TestQuoteCacheRepository(t *testing.T) {
	t.Run("quote round trip with age", func(t *testing.T) {
		s, _ := newTestStore(t)
		repo := NewQuoteCacheRepository(s)

		_, _, ok := repo.GetQuote()
		require.False(t, ok)

		repo.SetQuote(domain.P2PQuote{
			Price:  decimal.NewFromInt(4128),
			Seller: "maria",
			Source: "binance_direct",
		})

		quote, age, ok := repo.GetQuote()
		require.True(t, ok)
		require.Equal(t, "4128", quote.Price.String())
		require.Less(t, age, time.Minute)
	})

	t.Run("snapshot set round trip", func(t *testing.T) {
		s, _ := newTestStore(t)
		repo := NewQuoteCacheRepository(s)

		repo.SetSnapshots(map[string]domain.AssetSnapshot{
			"bitcoin": {ID: "bitcoin", Symbol: "BTC", CurrentPriceUSD: 50000},
		})

		snapshots, _, ok := repo.GetSnapshots()
		require.True(t, ok)
		require.Equal(t, 50000.0, snapshots["bitcoin"].CurrentPriceUSD)
	})
}
