package catalog

import (
	"github.com/backoffice/backend/internal/domain/shared"
)

// UnitQuantity is a unit of measure (piece, box, kilogram) used by
// transaction items and inventory movements. Stock is tracked per
// (product, unit) pair; units are never converted into one another.
type UnitQuantity struct {
	shared.Entity
	shared.SoftDelete
	Name   string `gorm:"size:100;not null" json:"name"`
	Remark string `gorm:"size:1000" json:"remark,omitempty"`
}

// TableName returns the table name for GORM
func (UnitQuantity) TableName() string {
	return "unit_quantities"
}

// NewUnitQuantity creates a unit of measure
func NewUnitQuantity(name, remark string) (*UnitQuantity, error) {
	if name == "" {
		return nil, shared.NewValidationError("unit name is required")
	}
	return &UnitQuantity{
		Entity: shared.NewEntity(),
		Name:   name,
		Remark: remark,
	}, nil
}

// Update changes the unit of measure
func (u *UnitQuantity) Update(name, remark string) error {
	if name == "" {
		return shared.NewValidationError("unit name is required")
	}
	u.Name = name
	u.Remark = remark
	u.Touch()
	return nil
}
