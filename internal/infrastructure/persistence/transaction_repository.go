package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var transactionSortColumns = map[string]bool{
	"transaction_date": true,
	"created_at":       true,
	"grand_total":      true,
	"customer_name":    true,
}

// GormTransactionRepository implements ledger.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID loads a transaction with its lines, discounts, taxes and payments
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var transaction ledger.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Discounts").
		Preload("Taxes").
		Preload("Payments").
		First(&transaction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// FindAll lists transactions matching the filter, items preloaded
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&ledger.Transaction{})
	query = r.applyFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []ledger.Transaction
	query = applyOrder(query, filter.Filter, transactionSortColumns, "transaction_date DESC")
	if err := applyPagination(query, filter.Filter).Preload("Items").Find(&transactions).Error; err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (r *GormTransactionRepository) applyFilter(query *gorm.DB, filter ledger.TransactionFilter) *gorm.DB {
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.DateRange != nil {
		query = query.Where("transaction_date BETWEEN ? AND ?", filter.DateRange.Start, filter.DateRange.End)
	}
	return query
}

// Save writes the transaction root and its child rows. Children carry their
// own IDs, so a single Create covers the whole aggregate.
func (r *GormTransactionRepository) Save(ctx context.Context, transaction *ledger.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// UpdateStatus sets the derived settlement status without touching the
// frozen monetary columns
func (r *GormTransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.TransactionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&ledger.Transaction{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ ledger.TransactionRepository = (*GormTransactionRepository)(nil)
