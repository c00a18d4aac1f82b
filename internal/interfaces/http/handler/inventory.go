package handler

import (
	inventoryapp "github.com/backoffice/backend/internal/application/inventory"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryHandler handles inventory history API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateMovementRequest is the request body for a manual stock adjustment
type CreateMovementRequest struct {
	ProductID      string          `json:"productId" binding:"required,uuid"`
	UnitQuantityID string          `json:"unitQuantityId" binding:"required,uuid"`
	Type           string          `json:"type" binding:"required,oneof=IN OUT"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	MovementDate   string          `json:"movementDate" binding:"required"`
	Remark         string          `json:"remark" binding:"max=500"`
}

// Create appends a manual adjustment to the movement history
func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}
	movementDate, err := parseDate(req.MovementDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	movement, err := h.inventoryService.CreateMovement(c.Request.Context(), inventoryapp.CreateMovementCommand{
		ProductID:      uuid.MustParse(req.ProductID),
		UnitQuantityID: uuid.MustParse(req.UnitQuantityID),
		Type:           req.Type,
		Quantity:       req.Quantity,
		MovementDate:   movementDate,
		Remark:         req.Remark,
		CreatedBy:      userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Inventory movement recorded", movement)
}

// ListMovementsRequest is the query surface for listing movement history
type ListMovementsRequest struct {
	dto.ListRequest
	ProductID      string `form:"productId" binding:"omitempty,uuid"`
	UnitQuantityID string `form:"unitQuantityId" binding:"omitempty,uuid"`
	Type           string `form:"type" binding:"omitempty,oneof=IN OUT"`
	StartDate      string `form:"startDate"`
	EndDate        string `form:"endDate"`
}

// List returns a page of movement history entries
func (h *InventoryHandler) List(c *gin.Context) {
	var req ListMovementsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := inventory.MovementFilter{Filter: req.ToFilter()}
	if req.ProductID != "" {
		productID := uuid.MustParse(req.ProductID)
		filter.ProductID = &productID
	}
	if req.UnitQuantityID != "" {
		unitID := uuid.MustParse(req.UnitQuantityID)
		filter.UnitQuantityID = &unitID
	}
	if req.Type != "" {
		typ := inventory.MovementType(req.Type)
		filter.Type = &typ
	}
	if req.StartDate != "" || req.EndDate != "" {
		r, err := shared.ParseDateRange(req.StartDate, req.EndDate)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		filter.DateRange = &r
	}

	page, err := h.inventoryService.ListMovements(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	respondList(c, "Inventory movements retrieved", page)
}

// Summary returns current stock per (product, unit) pair
func (h *InventoryHandler) Summary(c *gin.Context) {
	summaries, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Inventory summary retrieved", summaries)
}

// Series returns the cumulative stock curve over the queried window
func (h *InventoryHandler) Series(c *gin.Context) {
	r, ok := h.bindDateRange(c)
	if !ok {
		return
	}
	interval, ok := h.bindInterval(c)
	if !ok {
		return
	}

	query := inventoryapp.SeriesQuery{Range: r, Interval: interval}
	if s := c.Query("productId"); s != "" {
		productID, err := uuid.Parse(s)
		if err != nil {
			h.BadRequest(c, "Invalid product ID format")
			return
		}
		query.ProductID = &productID
	}
	if s := c.Query("unitQuantityId"); s != "" {
		unitID, err := uuid.Parse(s)
		if err != nil {
			h.BadRequest(c, "Invalid unit quantity ID format")
			return
		}
		query.UnitQuantityID = &unitID
	}

	series, err := h.inventoryService.Series(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Inventory series retrieved", series)
}
