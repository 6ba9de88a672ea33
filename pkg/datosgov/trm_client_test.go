package datosgov

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetLatestRate(t *testing.T) {
	t.Run("most recent record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "1", r.URL.Query().Get("$limit"))
			require.Equal(t, "vigenciadesde DESC", r.URL.Query().Get("$order"))
			w.Write([]byte(`[{"valor":"3999.73","vigenciadesde":"2026-08-27T00:00:00.000"}]`))
		}))
		defer server.Close()

		rate, err := NewClient(server.URL).GetLatestRate(context.Background())
		require.NoError(t, err)
		require.Equal(t, "3999.73", rate.Value.String())
		require.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), rate.EffectiveDate)
	})

	t.Run("empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).GetLatestRate(context.Background())
		require.ErrorContains(t, err, "no records")
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(503)
		}))
		defer server.Close()

		_, err := NewClient(server.URL).GetLatestRate(context.Background())
		require.ErrorContains(t, err, "status code 503")
	})
}
