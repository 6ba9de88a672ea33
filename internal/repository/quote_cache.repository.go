package repository

import (
	"cambio/internal/domain"
	"cambio/internal/store"
	"time"
)

const (
	quoteCacheKey    = "quote_cache"
	snapshotCacheKey = "snapshot_cache"
)

// QuoteCacheRepository holds the last good upstream results so a view
// can be painted immediately at startup. Freshness is judged by the
// caller from the returned age; the cache never suppresses a refresh.
type QuoteCacheRepository interface {
	GetQuote() (*domain.P2PQuote, time.Duration, bool)
	SetQuote(quote domain.P2PQuote)
	GetSnapshots() (map[string]domain.AssetSnapshot, time.Duration, bool)
	SetSnapshots(snapshots map[string]domain.AssetSnapshot)
}

type quoteCacheRepositoryHandler struct {
	Store store.Store
}

func NewQuoteCacheRepository(s store.Store) QuoteCacheRepository {
	return &quoteCacheRepositoryHandler{Store: s}
}

func (h *quoteCacheRepositoryHandler) GetQuote() (*domain.P2PQuote, time.Duration, bool) {
	var quote domain.P2PQuote
	age, ok := h.Store.Get(quoteCacheKey, &quote)
	if !ok {
		return nil, 0, false
	}
	return &quote, age, true
}

func (h *quoteCacheRepositoryHandler) SetQuote(quote domain.P2PQuote) {
	h.Store.Set(quoteCacheKey, quote)
}

func (h *quoteCacheRepositoryHandler) GetSnapshots() (map[string]domain.AssetSnapshot, time.Duration, bool) {
	snapshots := map[string]domain.AssetSnapshot{}
	age, ok := h.Store.Get(snapshotCacheKey, &snapshots)
	if !ok {
		return nil, 0, false
	}
	return snapshots, age, true
}

func (h *quoteCacheRepositoryHandler) SetSnapshots(snapshots map[string]domain.AssetSnapshot) {
	h.Store.Set(snapshotCacheKey, snapshots)
}
