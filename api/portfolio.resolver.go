package api

import (
	"cambio/internal/domain"
	"fmt"

	"github.com/gin-gonic/gin"
)

type PortfolioValueRequest struct {
	Holdings domain.Holdings `json:"holdings"`
}

// portfolioValue values the submitted holdings against the current
// snapshot set. Holdings are never stored server-side.
func (m ApiHandler) portfolioValue(c *gin.Context) {
	var requestBody PortfolioValueRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}

	c.JSON(200, m.App.PortfolioValue(requestBody.Holdings))
}
