package handler

import (
	catalogapp "github.com/backoffice/backend/internal/application/catalog"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TaxHandler handles tax master data API endpoints
type TaxHandler struct {
	BaseHandler
	taxService *catalogapp.TaxService
}

// NewTaxHandler creates a TaxHandler
func NewTaxHandler(taxService *catalogapp.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// TaxRequest is the request body for creating or updating a tax
type TaxRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=100"`
	Percentage decimal.Decimal `json:"percentage" binding:"required"`
	Remark     string          `json:"remark" binding:"max=500"`
}

// Create registers a new tax
func (h *TaxHandler) Create(c *gin.Context) {
	var req TaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	tax, err := h.taxService.CreateTax(c.Request.Context(), req.Name, req.Percentage, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Tax created", tax)
}

// List returns a page of taxes
func (h *TaxHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	page, err := h.taxService.ListTaxes(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	respondList(c, "Taxes retrieved", page)
}

// GetByID loads one tax
func (h *TaxHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tax ID format")
		return
	}
	tax, err := h.taxService.GetTax(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Tax retrieved", tax)
}

// Update changes a tax's name, percentage or remark
func (h *TaxHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tax ID format")
		return
	}
	var req TaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	tax, err := h.taxService.UpdateTax(c.Request.Context(), id, req.Name, req.Percentage, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Tax updated", tax)
}

// Delete soft-deletes a tax
func (h *TaxHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tax ID format")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}
	if err := h.taxService.DeleteTax(c.Request.Context(), id, userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
