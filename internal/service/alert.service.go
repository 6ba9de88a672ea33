package service

import (
	"cambio/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Check reports whether a single alert fires against the snapshot set.
// The symbol match is case-insensitive; a missing snapshot never fires.
// Firing is level-triggered: the same alert fires again on every pass
// while the condition holds.
func Check(alert domain.PriceAlert, snapshots map[string]domain.AssetSnapshot) (*domain.Notification, bool) {
	for _, snapshot := range snapshots {
		if !strings.EqualFold(snapshot.Symbol, alert.Symbol) {
			continue
		}

		price := decimal.NewFromFloat(snapshot.CurrentPriceUSD)
		fired := false
		switch alert.Direction {
		case domain.AlertDirectionAbove:
			fired = price.GreaterThanOrEqual(alert.TargetPriceUSD)
		case domain.AlertDirectionBelow:
			fired = price.LessThanOrEqual(alert.TargetPriceUSD)
		}
		if !fired {
			return nil, false
		}

		return &domain.Notification{
			Message: fmt.Sprintf(
				"%s is %s your target of $%s (now $%s)",
				strings.ToUpper(alert.Symbol),
				alert.Direction,
				alert.TargetPriceUSD.String(),
				price.String(),
			),
			Alert:    alert,
			PriceUSD: snapshot.CurrentPriceUSD,
			RaisedAt: time.Now().UTC(),
		}, true
	}

	return nil, false
}

// Evaluate runs all alerts in order and returns at most one notification.
// When several alerts fire in the same pass, the last matching alert's
// message wins - callers that need every firing should call Check per
// alert instead.
func Evaluate(alerts []domain.PriceAlert, snapshots map[string]domain.AssetSnapshot) *domain.Notification {
	var active *domain.Notification
	for _, alert := range alerts {
		if notification, fired := Check(alert, snapshots); fired {
			active = notification
		}
	}
	return active
}
