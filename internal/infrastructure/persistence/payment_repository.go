package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var paymentSortColumns = map[string]bool{
	"payment_date": true,
	"created_at":   true,
	"amount":       true,
}

// GormPaymentRepository implements ledger.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	var payment ledger.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindAll lists payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter ledger.PaymentFilter) ([]ledger.Payment, int64, error) {
	query := r.db.WithContext(ctx).Model(&ledger.Payment{})
	if filter.Direction != nil {
		query = query.Where("direction = ?", *filter.Direction)
	}
	if filter.TransactionID != nil {
		query = query.Where("transaction_id = ?", *filter.TransactionID)
	}
	if filter.DateRange != nil {
		query = query.Where("payment_date BETWEEN ? AND ?", filter.DateRange.Start, filter.DateRange.End)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []ledger.Payment
	query = applyOrder(query, filter.Filter, paymentSortColumns, "payment_date DESC")
	if err := applyPagination(query, filter.Filter).Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// FindByTransactionID lists the payments settling one transaction
func (r *GormPaymentRepository) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]ledger.Payment, error) {
	var payments []ledger.Payment
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("payment_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByDateRange lists all payments inside the window
func (r *GormPaymentRepository) FindByDateRange(ctx context.Context, dateRange shared.DateRange) ([]ledger.Payment, error) {
	var payments []ledger.Payment
	err := r.db.WithContext(ctx).
		Where("payment_date BETWEEN ? AND ?", dateRange.Start, dateRange.End).
		Order("payment_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

var _ ledger.PaymentRepository = (*GormPaymentRepository)(nil)
