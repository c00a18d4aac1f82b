package handler

import (
	catalogapp "github.com/backoffice/backend/internal/application/catalog"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// UnitQuantityHandler handles unit quantity master data API endpoints
type UnitQuantityHandler struct {
	BaseHandler
	unitService *catalogapp.UnitQuantityService
}

// NewUnitQuantityHandler creates a UnitQuantityHandler
func NewUnitQuantityHandler(unitService *catalogapp.UnitQuantityService) *UnitQuantityHandler {
	return &UnitQuantityHandler{unitService: unitService}
}

// UnitQuantityRequest is the request body for creating or updating a unit
type UnitQuantityRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Remark string `json:"remark" binding:"max=500"`
}

// Create registers a new unit of measure
func (h *UnitQuantityHandler) Create(c *gin.Context) {
	var req UnitQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	unit, err := h.unitService.CreateUnitQuantity(c.Request.Context(), req.Name, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Unit quantity created", unit)
}

// List returns a page of units
func (h *UnitQuantityHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	page, err := h.unitService.ListUnitQuantities(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	respondList(c, "Unit quantities retrieved", page)
}

// GetByID loads one unit
func (h *UnitQuantityHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit quantity ID format")
		return
	}
	unit, err := h.unitService.GetUnitQuantity(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Unit quantity retrieved", unit)
}

// Update changes a unit's name or remark
func (h *UnitQuantityHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit quantity ID format")
		return
	}
	var req UnitQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	unit, err := h.unitService.UpdateUnitQuantity(c.Request.Context(), id, req.Name, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Unit quantity updated", unit)
}

// Delete soft-deletes a unit
func (h *UnitQuantityHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit quantity ID format")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}
	if err := h.unitService.DeleteUnitQuantity(c.Request.Context(), id, userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
