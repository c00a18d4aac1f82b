package ledger

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	shared.Filter
	Type       *TransactionType
	Status     *TransactionStatus
	CustomerID *uuid.UUID
	DateRange  *shared.DateRange
}

// TransactionRepository persists the transaction aggregate. Save writes the
// root with its items, discounts and taxes in one statement batch; the caller
// controls the enclosing database transaction.
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindAll(ctx context.Context, filter TransactionFilter) ([]Transaction, int64, error)
	Save(ctx context.Context, transaction *Transaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status TransactionStatus) error
}

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	shared.Filter
	Direction     *PaymentDirection
	TransactionID *uuid.UUID
	DateRange     *shared.DateRange
}

// PaymentRepository persists cash movements
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindAll(ctx context.Context, filter PaymentFilter) ([]Payment, int64, error)
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]Payment, error)
	FindByDateRange(ctx context.Context, r shared.DateRange) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
}
