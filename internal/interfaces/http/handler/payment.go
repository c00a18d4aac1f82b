package handler

import (
	ledgerapp "github.com/backoffice/backend/internal/application/ledger"
	reportapp "github.com/backoffice/backend/internal/application/report"
	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService   *ledgerapp.PaymentService
	dashboardService *reportapp.PaymentDashboardService
}

// NewPaymentHandler creates a PaymentHandler
func NewPaymentHandler(paymentService *ledgerapp.PaymentService, dashboardService *reportapp.PaymentDashboardService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:   paymentService,
		dashboardService: dashboardService,
	}
}

// CreatePaymentRequest is the request body for recording a payment
type CreatePaymentRequest struct {
	TransactionID *string           `json:"transactionId" binding:"omitempty,uuid"`
	Method        string            `json:"method" binding:"required,oneof=CASH BANK_TRANSFER E_WALLET OTHER"`
	Direction     string            `json:"direction" binding:"required,oneof=INFLOW OUTFLOW"`
	Amount        valueobject.Money `json:"amount"`
	PaymentDate   string            `json:"paymentDate" binding:"required"`
	Description   string            `json:"description" binding:"max=500"`
	FileID        *string           `json:"fileId" binding:"omitempty,uuid"`
}

// Create records a cash movement, optionally settling a transaction
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	cmd := ledgerapp.CreatePaymentCommand{
		Method:      req.Method,
		Direction:   req.Direction,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if req.TransactionID != nil {
		transactionID := uuid.MustParse(*req.TransactionID)
		cmd.TransactionID = &transactionID
	}
	if req.FileID != nil {
		fileID := uuid.MustParse(*req.FileID)
		cmd.FileID = &fileID
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Payment recorded", payment)
}

// ListPaymentsRequest is the query surface for listing payments
type ListPaymentsRequest struct {
	dto.ListRequest
	Direction     string `form:"direction" binding:"omitempty,oneof=INFLOW OUTFLOW"`
	TransactionID string `form:"transactionId" binding:"omitempty,uuid"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
}

// List returns a page of payments
func (h *PaymentHandler) List(c *gin.Context) {
	var req ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := ledger.PaymentFilter{Filter: req.ToFilter()}
	if req.Direction != "" {
		direction := ledger.PaymentDirection(req.Direction)
		filter.Direction = &direction
	}
	if req.TransactionID != "" {
		transactionID := uuid.MustParse(req.TransactionID)
		filter.TransactionID = &transactionID
	}
	if req.StartDate != "" || req.EndDate != "" {
		r, err := shared.ParseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		filter.DateRange = &r
	}

	page, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	respondList(c, "Payments retrieved", page)
}

// GetByID loads one payment
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}
	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Payment retrieved", payment)
}

// Dashboard returns the per-customer payable and receivable rollups with the
// bucketed settlement series for the queried window
func (h *PaymentHandler) Dashboard(c *gin.Context) {
	r, ok := h.bindDateRange(c)
	if !ok {
		return
	}
	interval, ok := h.bindInterval(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), r, interval)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Payment dashboard retrieved", dashboard)
}
