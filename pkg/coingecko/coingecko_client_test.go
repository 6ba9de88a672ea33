package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMarkets(t *testing.T) {
	t.Run("single batched call for all ids", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/coins/markets", r.URL.Path)
			require.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
			require.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
			require.Equal(t, "true", r.URL.Query().Get("sparkline"))

			w.Write([]byte(`[
				{"id":"bitcoin","symbol":"btc","current_price":50000.5,"price_change_percentage_24h":1.2,"sparkline_in_7d":{"price":[49000,49500,50000]}},
				{"id":"ethereum","symbol":"eth","current_price":2500,"price_change_percentage_24h":-0.8,"sparkline_in_7d":{"price":[2550,2520,2500]}}
			]`))
		}))
		defer server.Close()

		assets, err := NewClient(server.URL).GetMarkets(context.Background(), []string{"bitcoin", "ethereum"})
		require.NoError(t, err)
		require.Len(t, assets, 2)
		require.Equal(t, 50000.5, assets[0].CurrentPrice)
		require.Equal(t, -0.8, assets[1].Change24hPercent)
		require.Equal(t, []float64{49000, 49500, 50000}, assets[0].Sparkline.Price)
	})

	t.Run("missing ids leave holes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"bitcoin","symbol":"btc","current_price":50000,"price_change_percentage_24h":0}]`))
		}))
		defer server.Close()

		assets, err := NewClient(server.URL).GetMarkets(context.Background(), []string{"bitcoin", "cypher-2"})
		require.NoError(t, err)
		require.Len(t, assets, 1)
	})
}
