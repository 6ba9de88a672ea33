package api

import (
	"cambio/internal/domain"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AddAlertRequest struct {
	Symbol         string `json:"symbol"`
	TargetPriceUSD string `json:"targetPriceUsd"`
	Direction      string `json:"direction"`
}

func (m ApiHandler) listAlerts(c *gin.Context) {
	c.JSON(200, gin.H{"alerts": m.AlertRepository.List()})
}

func (m ApiHandler) addAlert(c *gin.Context) {
	var requestBody AddAlertRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}

	alert, err := m.AlertRepository.Add(
		requestBody.Symbol,
		requestBody.TargetPriceUSD,
		domain.AlertDirection(requestBody.Direction),
	)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{"alert": alert})
}

func (m ApiHandler) removeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid alert id: %w", err), c, 400)
		return
	}

	if !m.AlertRepository.Remove(id) {
		returnErrorJsonCode(fmt.Errorf("alert %s not found", id), c, 404)
		return
	}
	c.JSON(200, gin.H{"removed": id})
}
