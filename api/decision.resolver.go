package api

import (
	"cambio/internal/calculator"
	"cambio/internal/domain"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DecisionResponse struct {
	ReferenceRate   decimal.Decimal       `json:"referenceRate"`
	EffectiveDate   *time.Time            `json:"effectiveDate,omitempty"`
	P2PValue        decimal.Decimal       `json:"p2pValue"`
	SpreadPercent   float64               `json:"spreadPercent"`
	SpreadDisplay   string                `json:"spreadDisplay"`
	Classification  domain.Classification `json:"classification"`
	CardNetworkRate decimal.Decimal       `json:"cardNetworkRate"`
}

// decision returns the current decision state. An optional p2p query
// parameter computes a what-if decision without touching the stored
// override; invalid values are ignored.
func (m ApiHandler) decision(c *gin.Context) {
	rate := m.App.ReferenceRate()

	var decision domain.DecisionState
	if raw := c.Query("p2p"); raw != "" {
		if override, err := decimal.NewFromString(raw); err == nil && override.IsPositive() {
			decision = calculator.ComputeDecision(rate.Value, &override)
		} else {
			decision = m.App.Decision()
		}
	} else {
		decision = m.App.Decision()
	}

	response := DecisionResponse{
		ReferenceRate:   decision.ReferenceRate,
		P2PValue:        decision.P2PValue,
		SpreadPercent:   decision.SpreadPercent,
		SpreadDisplay:   calculator.FormatSpread(decision.SpreadPercent),
		Classification:  decision.Classification,
		CardNetworkRate: decision.CardNetworkRate,
	}
	if !rate.EffectiveDate.IsZero() {
		response.EffectiveDate = &rate.EffectiveDate
	}

	c.JSON(200, response)
}

type SetP2PRequest struct {
	Price   string `json:"price"`
	Confirm bool   `json:"confirm"`
}

// setManualP2P stores a manual P2P price. With confirm=true the entry is
// also appended to the history log; this is the only write path to
// history.
func (m ApiHandler) setManualP2P(c *gin.Context) {
	var requestBody SetP2PRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}

	if requestBody.Confirm {
		entries, err := m.App.ConfirmP2PEntry(requestBody.Price)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		c.JSON(200, gin.H{
			"decision":       m.App.Decision(),
			"historyEntries": len(entries),
		})
		return
	}

	if err := m.App.SetManualP2P(requestBody.Price); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	c.JSON(200, gin.H{"decision": m.App.Decision()})
}

func (m ApiHandler) clearManualP2P(c *gin.Context) {
	m.App.ClearManualP2P()
	c.JSON(200, gin.H{"decision": m.App.Decision()})
}
