package persistence

import (
	"context"

	appinventory "github.com/backoffice/backend/internal/application/inventory"
	appledger "github.com/backoffice/backend/internal/application/ledger"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormLedgerScope implements the ledger application's TransactionScope on a
// GORM database transaction
type GormLedgerScope struct {
	db *gorm.DB
}

// NewGormLedgerScope creates a GormLedgerScope
func NewGormLedgerScope(db *gorm.DB) *GormLedgerScope {
	return &GormLedgerScope{db: db}
}

// Execute runs fn inside one database transaction
func (s *GormLedgerScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerScopeRepos{tx: tx})
	})
}

type ledgerScopeRepos struct {
	tx *gorm.DB
}

func (r *ledgerScopeRepos) Transactions() ledger.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

func (r *ledgerScopeRepos) Payments() ledger.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

func (r *ledgerScopeRepos) Movements() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

func (r *ledgerScopeRepos) StockLevels() inventory.StockLevelRepository {
	return NewGormStockLevelRepository(r.tx)
}

var _ appledger.TransactionScope = (*GormLedgerScope)(nil)

// GormInventoryScope implements the inventory application's TransactionScope
// on a GORM database transaction
type GormInventoryScope struct {
	db *gorm.DB
}

// NewGormInventoryScope creates a GormInventoryScope
func NewGormInventoryScope(db *gorm.DB) *GormInventoryScope {
	return &GormInventoryScope{db: db}
}

// Execute runs fn inside one database transaction
func (s *GormInventoryScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&inventoryScopeRepos{tx: tx})
	})
}

type inventoryScopeRepos struct {
	tx *gorm.DB
}

func (r *inventoryScopeRepos) Movements() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

func (r *inventoryScopeRepos) StockLevels() inventory.StockLevelRepository {
	return NewGormStockLevelRepository(r.tx)
}

var _ appinventory.TransactionScope = (*GormInventoryScope)(nil)
