package api

import (
	"cambio/internal/app"
	"cambio/internal/logger"
	"cambio/internal/repository"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	App               *app.DashboardApp
	AlertRepository   repository.AlertRepository
	HistoryRepository repository.HistoryRepository
}

// InitializeRouterEngine builds the gin engine; split out so the lambda
// entrypoint can wrap it.
func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to cambio"})
	})

	router.GET("/quote", m.quote)
	router.POST("/quote", m.quote)
	router.GET("/quote/cached", m.cachedQuote)

	router.GET("/decision", m.decision)
	router.POST("/decision/p2p", m.setManualP2P)
	router.DELETE("/decision/p2p", m.clearManualP2P)

	router.GET("/snapshots", m.snapshots)

	router.GET("/alerts", m.listAlerts)
	router.POST("/alerts", m.addAlert)
	router.DELETE("/alerts/:id", m.removeAlert)

	router.GET("/history", m.listHistory)
	router.POST("/history", m.confirmHistoryEntry)
	router.DELETE("/history", m.clearHistory)
	router.GET("/history/export", m.exportHistory)

	router.POST("/portfolio/value", m.portfolioValue)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	requestCtx := logger.AddToContext(ctx.Request.Context(), zap.S())
	ctx.Request = ctx.Request.WithContext(requestCtx)
	ctx.Next()
	logger.Info(
		"%s %s -> %d (%dms)",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}
