package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

func (m ApiHandler) listHistory(c *gin.Context) {
	c.JSON(200, gin.H{"entries": m.HistoryRepository.List()})
}

type ConfirmHistoryRequest struct {
	Price string `json:"price"`
}

// confirmHistoryEntry records a confirmed manual P2P price in the
// capped log, same as POST /decision/p2p with confirm=true.
func (m ApiHandler) confirmHistoryEntry(c *gin.Context) {
	var requestBody ConfirmHistoryRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}

	entries, err := m.App.ConfirmP2PEntry(requestBody.Price)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	c.JSON(200, gin.H{"entries": entries})
}

func (m ApiHandler) clearHistory(c *gin.Context) {
	m.HistoryRepository.Clear()
	c.JSON(200, gin.H{"entries": []interface{}{}})
}

func (m ApiHandler) exportHistory(c *gin.Context) {
	entries := m.HistoryRepository.List()

	csv, err := gocsv.MarshalString(&entries)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to export history: %w", err), c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="p2p_history.csv"`)
	c.Data(200, "text/csv", []byte(csv))
}
