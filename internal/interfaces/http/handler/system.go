package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	appName   string
	startTime time.Time
}

// NewSystemHandler creates a SystemHandler
func NewSystemHandler(db *persistence.Database, appName string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		appName:   appName,
		startTime: time.Now(),
	}
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status    string         `json:"status"`
	Name      string         `json:"name"`
	GoVersion string         `json:"goVersion"`
	Uptime    string         `json:"uptime"`
	Database  DatabaseHealth `json:"database"`
}

// DatabaseHealth reports connection pool state
type DatabaseHealth struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"openConnections"`
	InUse           int    `json:"inUse"`
	Idle            int    `json:"idle"`
}

// Health reports whether the service and its database are reachable. A
// failing database ping degrades the status but still answers 200 so load
// balancers can distinguish degraded from dead.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Name:      h.appName,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Database:  DatabaseHealth{Status: "ok"},
	}

	if err := h.db.Ping(); err != nil {
		resp.Status = "degraded"
		resp.Database.Status = "unreachable"
	} else if stats, err := h.db.Stats(); err == nil {
		resp.Database.OpenConnections = stats.OpenConnections
		resp.Database.InUse = stats.InUse
		resp.Database.Idle = stats.Idle
	}

	c.JSON(http.StatusOK, resp)
}
