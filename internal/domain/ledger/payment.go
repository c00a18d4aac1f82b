package ledger

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PaymentDirection marks which way cash moved
type PaymentDirection string

const (
	// PaymentInflow is cash received
	PaymentInflow PaymentDirection = "INFLOW"
	// PaymentOutflow is cash paid out
	PaymentOutflow PaymentDirection = "OUTFLOW"
)

// ParsePaymentDirection validates a payment direction string
func ParsePaymentDirection(s string) (PaymentDirection, error) {
	switch PaymentDirection(s) {
	case PaymentInflow, PaymentOutflow:
		return PaymentDirection(s), nil
	default:
		return "", shared.NewValidationError("payment direction must be INFLOW or OUTFLOW")
	}
}

// PaymentMethod is how the cash moved
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodEWallet      PaymentMethod = "E_WALLET"
	MethodOther        PaymentMethod = "OTHER"
)

// ParsePaymentMethod validates a payment method string
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodBankTransfer, MethodEWallet, MethodOther:
		return PaymentMethod(s), nil
	default:
		return "", shared.NewValidationError("payment method must be CASH, BANK_TRANSFER, E_WALLET or OTHER")
	}
}

// Payment is a cash movement. It may settle a transaction or stand alone
// (owner drawings, capital injections, sundry expenses). Amount is always
// positive; the direction carries the sign.
type Payment struct {
	shared.Entity
	TransactionID *uuid.UUID        `gorm:"type:uuid;index" json:"transactionId,omitempty"`
	Method        PaymentMethod     `gorm:"size:30;not null" json:"method"`
	Direction     PaymentDirection  `gorm:"size:10;not null;index" json:"direction"`
	Amount        valueobject.Money `gorm:"type:decimal(20,4);not null" json:"amount"`
	PaymentDate   time.Time         `gorm:"not null;index" json:"paymentDate"`
	Description   string            `gorm:"size:1000" json:"description,omitempty"`
	FileID        *uuid.UUID        `gorm:"type:uuid" json:"fileId,omitempty"`
	CreatedBy     uuid.UUID         `gorm:"type:uuid;not null" json:"createdBy"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a payment record. The optional file attachment reference
// is set by the caller afterwards.
func NewPayment(transactionID *uuid.UUID, method PaymentMethod, direction PaymentDirection, amount valueobject.Money, paymentDate time.Time, description string, createdBy uuid.UUID) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("payment amount must be positive")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewValidationError("payment date is required")
	}
	return &Payment{
		Entity:        shared.NewEntity(),
		TransactionID: transactionID,
		Method:        method,
		Direction:     direction,
		Amount:        amount,
		PaymentDate:   paymentDate,
		Description:   description,
		CreatedBy:     createdBy,
	}, nil
}

// SignedAmount returns the amount with the direction applied, inflows
// positive and outflows negative.
func (p *Payment) SignedAmount() valueobject.Money {
	if p.Direction == PaymentOutflow {
		return p.Amount.Negate()
	}
	return p.Amount
}
