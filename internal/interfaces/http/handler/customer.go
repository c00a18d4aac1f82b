package handler

import (
	partnerapp "github.com/backoffice/backend/internal/application/partner"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer master data API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CustomerRequest is the request body for creating or updating a customer
type CustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
	Remark  string `json:"remark" binding:"max=500"`
}

// Create registers a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req.Name, req.Phone, req.Address, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Customer created", customer)
}

// List returns a page of customers
func (h *CustomerHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	page, err := h.customerService.ListCustomers(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	respondList(c, "Customers retrieved", page)
}

// GetByID loads one customer
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Customer retrieved", customer)
}

// Update changes a customer's details
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, req.Name, req.Phone, req.Address, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Customer updated", customer)
}

// Delete soft-deletes a customer. Posted transactions keep the customer name
// they captured at posting time.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}
	if err := h.customerService.DeleteCustomer(c.Request.Context(), id, userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
