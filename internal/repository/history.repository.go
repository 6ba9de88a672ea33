package repository

import (
	"cambio/internal/domain"
	"cambio/internal/store"
)

const historyKey = "p2p_history"

type HistoryRepository interface {
	List() []domain.HistoryEntry
	Append(entry domain.HistoryEntry) []domain.HistoryEntry
	Clear()
}

type historyRepositoryHandler struct {
	Store store.Store
}

func NewHistoryRepository(s store.Store) HistoryRepository {
	return &historyRepositoryHandler{Store: s}
}

// List returns the confirmed-entry log, newest first.
func (h *historyRepositoryHandler) List() []domain.HistoryEntry {
	entries := []domain.HistoryEntry{}
	h.Store.Get(historyKey, &entries)
	return entries
}

// Append prepends the entry and silently drops the oldest entries past
// the cap. Returns the new log.
func (h *historyRepositoryHandler) Append(entry domain.HistoryEntry) []domain.HistoryEntry {
	entries := append([]domain.HistoryEntry{entry}, h.List()...)
	if len(entries) > domain.MaxHistoryEntries {
		entries = entries[:domain.MaxHistoryEntries]
	}
	h.Store.Set(historyKey, entries)
	return entries
}

// Clear drops the persisted log entirely.
func (h *historyRepositoryHandler) Clear() {
	h.Store.Delete(historyKey)
}
