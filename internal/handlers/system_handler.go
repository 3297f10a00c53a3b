package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgetnatin/internal/logger"
)

const (
	serviceName    = "budgetnatin-backend"
	serviceVersion = "1.0.0"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the unauthenticated service endpoints
type SystemHandler struct {
	db  Pinger
	env string
	now func() time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, env string) *SystemHandler {
	return &SystemHandler{db: db, env: env, now: time.Now}
}

// HealthResponse is the health check body
type HealthResponse struct {
	Status      string    `json:"status" example:"OK"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service" example:"budgetnatin-backend"`
	Environment string    `json:"environment" example:"production"`
	Database    string    `json:"database" example:"up"`
}

// Health reports service and database status
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:      "OK",
		Timestamp:   h.now().UTC(),
		Service:     serviceName,
		Environment: h.env,
		Database:    "up",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		logger.Get().Errorw("health check database ping failed", "error", err)
		resp.Status = "DEGRADED"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// KeepAlive answers uptime pings
// @Summary     Keep-alive
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /keep-alive [get]
func (h *SystemHandler) KeepAlive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": h.now().UTC(),
		"message":   "Service is active",
	})
}

// Index describes the service
// @Summary     Service index
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      / [get]
func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Budgetnatin Backend API is running!",
		"version": serviceVersion,
		"endpoints": gin.H{
			"system": gin.H{
				"health":    "/health",
				"keepAlive": "/keep-alive",
				"metrics":   "/metrics",
				"docs":      "/swagger/index.html",
			},
			"api": gin.H{
				"auth":          "/api/auth",
				"expenses":      "/api/expenses",
				"categories":    "/api/expense-categories",
				"budget":        "/api/monthly-budget",
				"extraMoney":    "/api/extra-money",
				"notifications": "/api/notifications",
			},
		},
	})
}
