package controller

import (
	"net/http"

	"stockdash/service"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	symbols service.SymbolService
}

func NewHealthController(symbols service.SymbolService) *HealthController {
	return &HealthController{symbols: symbols}
}

// RegisterRoutes sets up the health check under the /api group.
func (ctrl *HealthController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ctrl.healthCheck)
	router.HEAD("/health", ctrl.healthCheck)
}

// healthCheck reports the server is up along with the loaded symbol counts.
// HEAD gets the status only.
func (ctrl *HealthController) healthCheck(c *gin.Context) {
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"tickers":   len(ctrl.symbols.Tickers()),
		"watchlist": len(ctrl.symbols.Watchlist()),
	})
}
