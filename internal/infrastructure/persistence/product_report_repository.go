package persistence

import (
	"context"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductReportRepository implements report.ProductReportRepository
type GormProductReportRepository struct {
	db *gorm.DB
}

// NewGormProductReportRepository creates a GormProductReportRepository
func NewGormProductReportRepository(db *gorm.DB) *GormProductReportRepository {
	return &GormProductReportRepository{db: db}
}

// FindActivityInRange returns the frozen transaction lines posted inside the
// window joined with their document's type and date, optionally narrowed to
// one transaction type or one product
func (r *GormProductReportRepository) FindActivityInRange(ctx context.Context, typ *ledger.TransactionType, productID *uuid.UUID, dateRange shared.DateRange) ([]report.ProductActivity, error) {
	query := r.db.WithContext(ctx).
		Table("transaction_items").
		Select("transaction_items.product_id, transaction_items.product_name, "+
			"transaction_items.unit_quantity_id, transaction_items.unit_name, "+
			"transaction_items.quantity, transaction_items.total AS amount, "+
			"transactions.type AS transaction_type, transactions.transaction_date").
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transactions.transaction_date BETWEEN ? AND ?", dateRange.Start, dateRange.End)
	if typ != nil {
		query = query.Where("transactions.type = ?", *typ)
	}
	if productID != nil {
		query = query.Where("transaction_items.product_id = ?", *productID)
	}

	var activity []report.ProductActivity
	if err := query.Scan(&activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

var _ report.ProductReportRepository = (*GormProductReportRepository)(nil)
