package api

import (
	"cambio/internal/app"
	"cambio/internal/domain"
	"time"

	"github.com/gin-gonic/gin"
)

type SnapshotsResponse struct {
	Snapshots    []app.SnapshotView   `json:"snapshots"`
	AsOf         *time.Time           `json:"asOf,omitempty"`
	Fresh        bool                 `json:"fresh"`
	Notification *domain.Notification `json:"notification,omitempty"`
}

func (m ApiHandler) snapshots(c *gin.Context) {
	views, asOf := m.App.Snapshots()

	response := SnapshotsResponse{
		Snapshots:    views,
		Fresh:        !asOf.IsZero() && time.Since(asOf) < app.SnapshotTTL,
		Notification: m.App.Notification(),
	}
	if !asOf.IsZero() {
		response.AsOf = &asOf
	}

	c.JSON(200, response)
}
