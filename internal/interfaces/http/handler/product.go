package handler

import (
	catalogapp "github.com/backoffice/backend/internal/application/catalog"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product master data API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest is the request body for creating or updating a product
type ProductRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=200"`
	Remark string `json:"remark" binding:"max=500"`
}

// Create registers a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	product, err := h.productService.CreateProduct(c.Request.Context(), req.Name, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Product created", product)
}

// List returns a page of products
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	page, err := h.productService.ListProducts(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	respondList(c, "Products retrieved", page)
}

// GetByID loads one product
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product retrieved", product)
}

// Update changes a product's name or remark
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req.Name, req.Remark)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product updated", product)
}

// Delete soft-deletes a product. Posted transactions keep the product name
// they captured at posting time.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user identity")
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), id, userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
