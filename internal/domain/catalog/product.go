package catalog

import (
	"github.com/backoffice/backend/internal/domain/shared"
)

// Product is a catalog entry referenced by transaction items and inventory
// movements. Its name is denormalized onto transaction items at write time,
// so soft-deleting a product never blanks historical records.
type Product struct {
	shared.Entity
	shared.SoftDelete
	Name   string `gorm:"size:255;not null;index" json:"name"`
	Remark string `gorm:"size:1000" json:"remark,omitempty"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product catalog entry
func NewProduct(name, remark string) (*Product, error) {
	if name == "" {
		return nil, shared.NewValidationError("product name is required")
	}
	return &Product{
		Entity: shared.NewEntity(),
		Name:   name,
		Remark: remark,
	}, nil
}

// Update changes the catalog entry
func (p *Product) Update(name, remark string) error {
	if name == "" {
		return shared.NewValidationError("product name is required")
	}
	p.Name = name
	p.Remark = remark
	p.Touch()
	return nil
}
