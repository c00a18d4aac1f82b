package persistence

import (
	"context"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormFinanceReportRepository implements report.FinanceReportRepository with
// window sum queries. Empty windows sum to zero via COALESCE, never error.
type GormFinanceReportRepository struct {
	db *gorm.DB
}

// NewGormFinanceReportRepository creates a GormFinanceReportRepository
func NewGormFinanceReportRepository(db *gorm.DB) *GormFinanceReportRepository {
	return &GormFinanceReportRepository{db: db}
}

// SumTransactionTotals sums the grand totals of one transaction type inside
// the window
func (r *GormFinanceReportRepository) SumTransactionTotals(ctx context.Context, typ ledger.TransactionType, dateRange shared.DateRange) (valueobject.Money, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(grand_total), 0) FROM transactions WHERE type = ? AND transaction_date BETWEEN ? AND ?",
			typ, dateRange.Start, dateRange.End).
		Scan(&total).Error
	if err != nil {
		return valueobject.Zero(), err
	}
	return valueobject.NewMoney(total), nil
}

// SumPayments sums the payment amounts of one direction inside the window
func (r *GormFinanceReportRepository) SumPayments(ctx context.Context, direction ledger.PaymentDirection, dateRange shared.DateRange) (valueobject.Money, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(amount), 0) FROM payments WHERE direction = ? AND payment_date BETWEEN ? AND ?",
			direction, dateRange.Start, dateRange.End).
		Scan(&total).Error
	if err != nil {
		return valueobject.Zero(), err
	}
	return valueobject.NewMoney(total), nil
}

var _ report.FinanceReportRepository = (*GormFinanceReportRepository)(nil)
