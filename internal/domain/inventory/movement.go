package inventory

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType marks the direction of a stock movement
type MovementType string

const (
	// MovementIn adds stock (purchase receipt, correction up)
	MovementIn MovementType = "IN"
	// MovementOut removes stock (sale, correction down)
	MovementOut MovementType = "OUT"
)

// ParseMovementType validates a movement type string
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementIn, MovementOut:
		return MovementType(s), nil
	default:
		return "", shared.NewValidationError("movement type must be IN or OUT")
	}
}

// Movement is one entry in the append-only inventory history. Quantity is
// always positive; the type carries the sign. Movements are never updated or
// deleted, so current stock is always reproducible from the history.
type Movement struct {
	shared.Entity
	TransactionID  *uuid.UUID      `gorm:"type:uuid;index" json:"transactionId,omitempty"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_movements_product_unit" json:"productId"`
	ProductName    string          `gorm:"size:255;not null" json:"productName"`
	UnitQuantityID uuid.UUID       `gorm:"type:uuid;not null;index:idx_movements_product_unit" json:"unitQuantityId"`
	UnitName       string          `gorm:"size:100;not null" json:"unitName"`
	Type           MovementType    `gorm:"size:10;not null" json:"type"`
	Quantity       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	MovementDate   time.Time       `gorm:"not null;index" json:"movementDate"`
	Remark         string          `gorm:"size:1000" json:"remark,omitempty"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null" json:"createdBy"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "inventory_histories"
}

// NewMovement creates a history entry
func NewMovement(productID uuid.UUID, productName string, unitID uuid.UUID, unitName string, typ MovementType, quantity decimal.Decimal, date time.Time, remark string, createdBy uuid.UUID) (*Movement, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewValidationError("movement quantity must be positive")
	}
	if date.IsZero() {
		return nil, shared.NewValidationError("movement date is required")
	}
	return &Movement{
		Entity:         shared.NewEntity(),
		ProductID:      productID,
		ProductName:    productName,
		UnitQuantityID: unitID,
		UnitName:       unitName,
		Type:           typ,
		Quantity:       quantity,
		MovementDate:   date,
		Remark:         remark,
		CreatedBy:      createdBy,
	}, nil
}

// SignedQuantity returns the quantity with the direction applied
func (m *Movement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
