package catalog

import (
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Tax is a catalog entry describing a percentage levy applied on the
// discounted subtotal of a transaction. Taxes referenced by a transaction
// are frozen onto it at creation time; editing or deleting a tax never
// rewrites history.
type Tax struct {
	shared.Entity
	shared.SoftDelete
	Name       string          `gorm:"size:255;not null" json:"name"`
	Percentage decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"percentage"`
	Remark     string          `gorm:"size:1000" json:"remark,omitempty"`
}

// TableName returns the table name for GORM
func (Tax) TableName() string {
	return "taxes"
}

// NewTax creates a tax catalog entry
func NewTax(name string, percentage decimal.Decimal, remark string) (*Tax, error) {
	if name == "" {
		return nil, shared.NewValidationError("tax name is required")
	}
	if err := validatePercentage(percentage); err != nil {
		return nil, err
	}
	return &Tax{
		Entity:     shared.NewEntity(),
		Name:       name,
		Percentage: percentage,
		Remark:     remark,
	}, nil
}

// Update changes the catalog entry. Historical transactions keep the
// percentage that was frozen onto them.
func (t *Tax) Update(name string, percentage decimal.Decimal, remark string) error {
	if name == "" {
		return shared.NewValidationError("tax name is required")
	}
	if err := validatePercentage(percentage); err != nil {
		return err
	}
	t.Name = name
	t.Percentage = percentage
	t.Remark = remark
	t.Touch()
	return nil
}

func validatePercentage(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewValidationError("percentage must be between 0 and 100")
	}
	return nil
}
