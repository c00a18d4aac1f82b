package ledger

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes revenue from expense documents
type TransactionType string

const (
	// TransactionSell is a sale to a customer, counted as revenue
	TransactionSell TransactionType = "SELL"
	// TransactionBuy is a purchase from a supplier, counted as expense
	TransactionBuy TransactionType = "BUY"
)

// ParseTransactionType validates a transaction type string
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionSell, TransactionBuy:
		return TransactionType(s), nil
	default:
		return "", shared.NewValidationError("transaction type must be SELL or BUY")
	}
}

// TransactionStatus is derived from the payments linked to a transaction,
// never stored as an independent source of truth.
type TransactionStatus string

const (
	StatusUnpaid        TransactionStatus = "UNPAID"
	StatusPartiallyPaid TransactionStatus = "PARTIALLY_PAID"
	StatusPaid          TransactionStatus = "PAID"
)

// StatusFor derives the settlement status from the grand total and the net
// amount settled so far (inflows minus outflows on linked payments).
func StatusFor(grandTotal, paid valueobject.Money) TransactionStatus {
	if !paid.IsPositive() {
		return StatusUnpaid
	}
	if paid.GreaterThanOrEqual(grandTotal) {
		return StatusPaid
	}
	return StatusPartiallyPaid
}

// DiscountType selects how a discount amount is computed
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// ParseDiscountType validates a discount type string
func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", shared.NewValidationError("discount type must be PERCENTAGE or FIXED")
	}
}

// Transaction is the ledger aggregate root. Monetary figures and counterparty
// names are frozen at creation time; later edits to master data never change
// a posted transaction.
type Transaction struct {
	shared.Entity
	Type            TransactionType   `gorm:"size:10;not null;index" json:"type"`
	Status          TransactionStatus `gorm:"size:20;not null" json:"status"`
	CustomerID      *uuid.UUID        `gorm:"type:uuid;index" json:"customerId,omitempty"`
	CustomerName    string            `gorm:"size:255;not null" json:"customerName,omitempty"`
	TransactionDate time.Time         `gorm:"not null;index" json:"transactionDate"`
	Subtotal        valueobject.Money `gorm:"type:decimal(20,4);not null" json:"subtotal"`
	TotalTax        valueobject.Money `gorm:"type:decimal(20,4);not null" json:"totalTax"`
	GrandTotal      valueobject.Money `gorm:"type:decimal(20,4);not null" json:"grandTotal"`
	Remark          string            `gorm:"size:1000" json:"remark,omitempty"`
	FileID          *uuid.UUID        `gorm:"type:uuid" json:"fileId,omitempty"`
	CreatedBy       uuid.UUID         `gorm:"type:uuid;not null" json:"createdBy"`

	Items     []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"items"`
	Discounts []Discount        `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"discounts,omitempty"`
	Taxes     []TransactionTax  `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"taxes,omitempty"`
	Payments  []Payment         `gorm:"foreignKey:TransactionID" json:"payments,omitempty"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem is a priced line on a transaction. Product and unit names
// are denormalized so the line survives soft-deletion of master data.
type TransactionItem struct {
	shared.Entity
	TransactionID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"transactionId"`
	ProductID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"productId"`
	ProductName    string              `gorm:"size:255;not null" json:"productName"`
	UnitQuantityID uuid.UUID           `gorm:"type:uuid;not null" json:"unitQuantityId"`
	UnitName       string              `gorm:"size:100;not null" json:"unitName"`
	Quantity       decimal.Decimal     `gorm:"type:decimal(20,4);not null" json:"quantity"`
	PricePerUnit   valueobject.Money   `gorm:"type:decimal(20,4);not null" json:"pricePerUnit"`
	DiscountType   *DiscountType       `gorm:"size:20" json:"discountType,omitempty"`
	DiscountValue  decimal.NullDecimal `gorm:"type:decimal(20,4)" json:"discountValue,omitempty"`
	Total          valueobject.Money   `gorm:"type:decimal(20,4);not null" json:"total"`
	Remark         string              `gorm:"size:1000" json:"remark,omitempty"`
}

// TableName returns the table name for GORM
func (TransactionItem) TableName() string {
	return "transaction_items"
}

// Discount is a transaction-scoped reduction applied after item discounts.
// Amount is the frozen monetary effect, rounded to display precision.
type Discount struct {
	shared.Entity
	TransactionID uuid.UUID           `gorm:"type:uuid;not null;index" json:"transactionId"`
	Type          DiscountType        `gorm:"size:20;not null" json:"type"`
	Percentage    decimal.NullDecimal `gorm:"type:decimal(10,4)" json:"percentage,omitempty"`
	Amount        valueobject.Money   `gorm:"type:decimal(20,4);not null" json:"amount"`
	Remark        string              `gorm:"size:1000" json:"remark,omitempty"`
}

// TableName returns the table name for GORM
func (Discount) TableName() string {
	return "transaction_discounts"
}

// TransactionTax freezes a tax application. The rate and resulting amount are
// copied from the tax catalog so later rate changes never alter history.
type TransactionTax struct {
	shared.Entity
	TransactionID uuid.UUID         `gorm:"type:uuid;not null;index" json:"transactionId"`
	TaxID         uuid.UUID         `gorm:"type:uuid;not null" json:"taxId"`
	Name          string            `gorm:"size:100;not null" json:"name"`
	Percentage    decimal.Decimal   `gorm:"type:decimal(10,4);not null" json:"percentage"`
	Amount        valueobject.Money `gorm:"type:decimal(20,4);not null" json:"amount"`
}

// TableName returns the table name for GORM
func (TransactionTax) TableName() string {
	return "transaction_taxes"
}

// PaidAmount sums linked payments, inflows positive and outflows negative.
func (t *Transaction) PaidAmount() valueobject.Money {
	paid := valueobject.Zero()
	for _, p := range t.Payments {
		paid = paid.Add(p.SignedAmount())
	}
	return paid
}

// RecalculateStatus re-derives the settlement status from loaded payments.
func (t *Transaction) RecalculateStatus() {
	t.Status = StatusFor(t.GrandTotal, t.PaidAmount())
}
