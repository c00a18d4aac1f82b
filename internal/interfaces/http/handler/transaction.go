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
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction API endpoints
type TransactionHandler struct {
	BaseHandler
	transactionService   *ledgerapp.TransactionService
	productReportService *reportapp.ProductReportService
}

// NewTransactionHandler creates a TransactionHandler
func NewTransactionHandler(transactionService *ledgerapp.TransactionService, productReportService *reportapp.ProductReportService) *TransactionHandler {
	return &TransactionHandler{
		transactionService:   transactionService,
		productReportService: productReportService,
	}
}

// TransactionItemRequest is one requested line on a transaction
type TransactionItemRequest struct {
	ProductID      string            `json:"productId" binding:"required,uuid"`
	UnitQuantityID string            `json:"unitQuantityId" binding:"required,uuid"`
	Quantity       decimal.Decimal   `json:"quantity" binding:"required"`
	PricePerUnit   valueobject.Money `json:"pricePerUnit"`
	DiscountType   *string           `json:"discountType" binding:"omitempty,oneof=PERCENTAGE FIXED"`
	DiscountValue  decimal.Decimal   `json:"discountValue"`
	Remark         string            `json:"remark" binding:"max=500"`
}

// TransactionDiscountRequest is a requested document-level discount
type TransactionDiscountRequest struct {
	Type       string            `json:"type" binding:"required,oneof=PERCENTAGE FIXED"`
	Percentage decimal.Decimal   `json:"percentage"`
	Amount     valueobject.Money `json:"amount"`
	Remark     string            `json:"remark" binding:"max=500"`
}

// CreateTransactionRequest is the request body for posting a transaction
type CreateTransactionRequest struct {
	Type            string                       `json:"type" binding:"required,oneof=SELL BUY"`
	CustomerID      *string                      `json:"customerId" binding:"omitempty,uuid"`
	TransactionDate string                       `json:"transactionDate" binding:"required"`
	Remark          string                       `json:"remark" binding:"max=500"`
	Items           []TransactionItemRequest     `json:"items" binding:"required,min=1,dive"`
	Discounts       []TransactionDiscountRequest `json:"discounts" binding:"omitempty,dive"`
	TaxIDs          []string                     `json:"taxIds" binding:"omitempty,dive,uuid"`
	FileID          *string                      `json:"fileId" binding:"omitempty,uuid"`
}

// Create posts a new transaction with its lines, discounts and taxes
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}
	transactionDate, err := parseDate(req.TransactionDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	cmd := ledgerapp.CreateTransactionCommand{
		Type:            req.Type,
		TransactionDate: transactionDate,
		Remark:          req.Remark,
		CreatedBy:       userID,
	}
	if req.CustomerID != nil {
		customerID := uuid.MustParse(*req.CustomerID)
		cmd.CustomerID = &customerID
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, ledgerapp.ItemCommand{
			ProductID:      uuid.MustParse(item.ProductID),
			UnitQuantityID: uuid.MustParse(item.UnitQuantityID),
			Quantity:       item.Quantity,
			PricePerUnit:   item.PricePerUnit,
			DiscountType:   item.DiscountType,
			DiscountValue:  item.DiscountValue,
			Remark:         item.Remark,
		})
	}
	for _, discount := range req.Discounts {
		cmd.Discounts = append(cmd.Discounts, ledgerapp.DiscountCommand{
			Type:       discount.Type,
			Percentage: discount.Percentage,
			Amount:     discount.Amount,
			Remark:     discount.Remark,
		})
	}
	for _, taxID := range req.TaxIDs {
		cmd.TaxIDs = append(cmd.TaxIDs, uuid.MustParse(taxID))
	}
	if req.FileID != nil {
		fileID := uuid.MustParse(*req.FileID)
		cmd.FileID = &fileID
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Transaction created", tx)
}

// ListTransactionsRequest is the query surface for listing transactions
type ListTransactionsRequest struct {
	dto.ListRequest
	Type       string `form:"type" binding:"omitempty,oneof=SELL BUY"`
	Status     string `form:"status" binding:"omitempty,oneof=UNPAID PARTIALLY_PAID PAID"`
	CustomerID string `form:"customerId" binding:"omitempty,uuid"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
}

// List returns a page of transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := ledger.TransactionFilter{Filter: req.ToFilter()}
	if req.Type != "" {
		typ := ledger.TransactionType(req.Type)
		filter.Type = &typ
	}
	if req.Status != "" {
		status := ledger.TransactionStatus(req.Status)
		filter.Status = &status
	}
	if req.CustomerID != "" {
		customerID := uuid.MustParse(req.CustomerID)
		filter.CustomerID = &customerID
	}
	if req.StartDate != "" || req.EndDate != "" {
		r, err := shared.ParseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		filter.DateRange = &r
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	respondList(c, "Transactions retrieved", page)
}

// GetByID loads one transaction with its lines and payments
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}
	tx, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Transaction retrieved", tx)
}

// ProductReport returns the per-product totals and bucketed series for one
// product over the queried window
func (h *TransactionHandler) ProductReport(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	r, ok := h.bindDateRange(c)
	if !ok {
		return
	}
	interval, ok := h.bindInterval(c)
	if !ok {
		return
	}
	var typ *ledger.TransactionType
	if s := c.Query("type"); s != "" {
		parsed, err := ledger.ParseTransactionType(s)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		typ = &parsed
	}

	report, err := h.productReportService.GetProductReport(c.Request.Context(), productID, typ, r, interval)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product report retrieved", report)
}

// ProductSummary returns aggregate quantity and amount per product over the
// queried window, ordered by amount
func (h *TransactionHandler) ProductSummary(c *gin.Context) {
	r, ok := h.bindDateRange(c)
	if !ok {
		return
	}
	var typ *ledger.TransactionType
	if s := c.Query("type"); s != "" {
		parsed, err := ledger.ParseTransactionType(s)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		typ = &parsed
	}

	summaries, err := h.productReportService.GetSummary(c.Request.Context(), typ, r)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product summary retrieved", summaries)
}
