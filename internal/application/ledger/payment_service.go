package ledger

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CreatePaymentCommand records a cash movement, optionally settling a
// transaction
type CreatePaymentCommand struct {
	TransactionID *uuid.UUID
	Method        string
	Direction     string
	Amount        valueobject.Money
	PaymentDate   time.Time
	Description   string
	FileID        *uuid.UUID
	CreatedBy     uuid.UUID
}

// PaymentService records cash movements and keeps transaction settlement
// statuses in step with them.
type PaymentService struct {
	paymentRepo ledger.PaymentRepository
	scope       TransactionScope
}

// NewPaymentService creates a PaymentService
func NewPaymentService(paymentRepo ledger.PaymentRepository, scope TransactionScope) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, scope: scope}
}

// CreatePayment saves the payment and, when it settles a transaction,
// re-derives that transaction's status from all its payments in the same
// database transaction.
func (s *PaymentService) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (*ledger.Payment, error) {
	method, err := ledger.ParsePaymentMethod(cmd.Method)
	if err != nil {
		return nil, err
	}
	direction, err := ledger.ParsePaymentDirection(cmd.Direction)
	if err != nil {
		return nil, err
	}
	payment, err := ledger.NewPayment(cmd.TransactionID, method, direction, cmd.Amount, cmd.PaymentDate, cmd.Description, cmd.CreatedBy)
	if err != nil {
		return nil, err
	}
	payment.FileID = cmd.FileID

	if cmd.TransactionID == nil {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return nil, err
		}
		return payment, nil
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tx, err := repos.Transactions().FindByID(ctx, *cmd.TransactionID)
		if err != nil {
			return err
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		payments, err := repos.Payments().FindByTransactionID(ctx, tx.ID)
		if err != nil {
			return err
		}
		paid := valueobject.Zero()
		for _, p := range payments {
			paid = paid.Add(p.SignedAmount())
		}
		return repos.Transactions().UpdateStatus(ctx, tx.ID, ledger.StatusFor(tx.GrandTotal, paid))
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPayment loads one payment
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// ListPayments returns a page of payments
func (s *PaymentService) ListPayments(ctx context.Context, filter ledger.PaymentFilter) (*shared.Paginated[ledger.Payment], error) {
	payments, total, err := s.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shared.NewPaginated(payments, total, filter.Page, filter.Limit), nil
}
