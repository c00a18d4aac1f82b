package handler

import (
	reportapp "github.com/backoffice/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// FinanceHandler handles the finance dashboard endpoint
type FinanceHandler struct {
	BaseHandler
	dashboardService *reportapp.FinanceDashboardService
}

// NewFinanceHandler creates a FinanceHandler
func NewFinanceHandler(dashboardService *reportapp.FinanceDashboardService) *FinanceHandler {
	return &FinanceHandler{dashboardService: dashboardService}
}

// Dashboard returns the accrual, cash and derived position blocks for the
// queried window
func (h *FinanceHandler) Dashboard(c *gin.Context) {
	r, ok := h.bindDateRange(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), r)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Finance dashboard retrieved", dashboard)
}
