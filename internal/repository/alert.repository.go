package repository

import (
	"cambio/internal/domain"
	"cambio/internal/store"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const alertsKey = "alerts"

type AlertRepository interface {
	List() []domain.PriceAlert
	Add(symbol string, targetPriceUSD string, direction domain.AlertDirection) (*domain.PriceAlert, error)
	Remove(id uuid.UUID) bool
}

type alertRepositoryHandler struct {
	Store store.Store
}

func NewAlertRepository(s store.Store) AlertRepository {
	return &alertRepositoryHandler{Store: s}
}

// List returns the persisted alerts in creation order. A corrupt or
// absent blob yields an empty list.
func (h *alertRepositoryHandler) List() []domain.PriceAlert {
	alerts := []domain.PriceAlert{}
	h.Store.Get(alertsKey, &alerts)
	return alerts
}

// Add validates only that the target parses as a positive number, then
// appends and persists immediately.
func (h *alertRepositoryHandler) Add(symbol string, targetPriceUSD string, direction domain.AlertDirection) (*domain.PriceAlert, error) {
	target, err := decimal.NewFromString(targetPriceUSD)
	if err != nil {
		return nil, fmt.Errorf("invalid target price %q: %w", targetPriceUSD, err)
	}
	if !target.IsPositive() {
		return nil, fmt.Errorf("target price must be positive, got %s", target)
	}
	if direction != domain.AlertDirectionAbove && direction != domain.AlertDirectionBelow {
		return nil, fmt.Errorf("invalid direction %q", direction)
	}

	alert := domain.PriceAlert{
		ID:             uuid.New(),
		Symbol:         strings.ToUpper(symbol),
		TargetPriceUSD: target,
		Direction:      direction,
		CreatedAt:      time.Now().UTC(),
	}

	alerts := append(h.List(), alert)
	h.Store.Set(alertsKey, alerts)

	return &alert, nil
}

func (h *alertRepositoryHandler) Remove(id uuid.UUID) bool {
	alerts := h.List()
	kept := make([]domain.PriceAlert, 0, len(alerts))
	removed := false
	for _, alert := range alerts {
		if alert.ID == id {
			removed = true
			continue
		}
		kept = append(kept, alert)
	}

	if removed {
		h.Store.Set(alertsKey, kept)
	}
	return removed
}
