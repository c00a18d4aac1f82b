package partner

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is a trading counterparty. A SELL transaction's receivable and a
// BUY transaction's payable both roll up to the linked customer. The name is
// denormalized onto transactions at write time.
type Customer struct {
	shared.Entity
	shared.SoftDelete
	Name    string `gorm:"size:255;not null;index" json:"name"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`
	Address string `gorm:"size:500" json:"address,omitempty"`
	Remark  string `gorm:"size:1000" json:"remark,omitempty"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer record
func NewCustomer(name, phone, address, remark string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewValidationError("customer name is required")
	}
	return &Customer{
		Entity:  shared.NewEntity(),
		Name:    name,
		Phone:   phone,
		Address: address,
		Remark:  remark,
	}, nil
}

// Update changes the customer record
func (c *Customer) Update(name, phone, address, remark string) error {
	if name == "" {
		return shared.NewValidationError("customer name is required")
	}
	c.Name = name
	c.Phone = phone
	c.Address = address
	c.Remark = remark
	c.Touch()
	return nil
}

// CustomerRepository provides access to customer master data
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)
	Save(ctx context.Context, customer *Customer) error
}
