package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLevel is the materialized net quantity per (product, unit) pair. It is
// maintained in the same database transaction as the movement that changes
// it, with a conditional update enforcing that stock never goes negative.
type StockLevel struct {
	ProductID      uuid.UUID       `gorm:"type:uuid;primaryKey" json:"productId"`
	UnitQuantityID uuid.UUID       `gorm:"type:uuid;primaryKey" json:"unitQuantityId"`
	Quantity       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TableName returns the table name for GORM
func (StockLevel) TableName() string {
	return "stock_levels"
}
