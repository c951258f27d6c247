package handlers

import (
	"net/http"

	"hotelops/services/stats"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler serves the dashboard summary document.
type StatsHandler struct {
	Svc    stats.Service
	Logger *zap.Logger
}

func NewStatsHandler(svc stats.Service, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{Svc: svc, Logger: logger}
}

// GetDashboardHandler returns the current dashboard stats document.
func (h *StatsHandler) GetDashboardHandler(c *gin.Context) {
	doc, err := h.Svc.Dashboard(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read dashboard stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// HealthHandler returns the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
}
