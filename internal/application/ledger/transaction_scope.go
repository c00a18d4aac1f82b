package ledger

import (
	"context"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/ledger"
)

// TransactionScope runs a function with all ledger and inventory repositories
// bound to one database transaction. The function's error rolls everything
// back; success commits. Posting a transaction writes the ledger row, its
// inventory movements and the stock guard updates atomically through this.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the current
// database transaction
type TransactionalRepositories interface {
	Transactions() ledger.TransactionRepository
	Payments() ledger.PaymentRepository
	Movements() inventory.MovementRepository
	StockLevels() inventory.StockLevelRepository
}

// NoOpTransactionScope passes the wired repositories through without a real
// database transaction. Used in tests with mocked repositories.
type NoOpTransactionScope struct {
	TransactionRepo ledger.TransactionRepository
	PaymentRepo     ledger.PaymentRepository
	MovementRepo    inventory.MovementRepository
	StockLevelRepo  inventory.StockLevelRepository
}

// Execute runs fn against the wired repositories directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Transactions returns the wired transaction repository
func (s *NoOpTransactionScope) Transactions() ledger.TransactionRepository { return s.TransactionRepo }

// Payments returns the wired payment repository
func (s *NoOpTransactionScope) Payments() ledger.PaymentRepository { return s.PaymentRepo }

// Movements returns the wired movement repository
func (s *NoOpTransactionScope) Movements() inventory.MovementRepository { return s.MovementRepo }

// StockLevels returns the wired stock level repository
func (s *NoOpTransactionScope) StockLevels() inventory.StockLevelRepository { return s.StockLevelRepo }
