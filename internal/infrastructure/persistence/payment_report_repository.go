package persistence

import (
	"context"

	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPaymentReportRepository implements report.PaymentReportRepository
type GormPaymentReportRepository struct {
	db *gorm.DB
}

// NewGormPaymentReportRepository creates a GormPaymentReportRepository
func NewGormPaymentReportRepository(db *gorm.DB) *GormPaymentReportRepository {
	return &GormPaymentReportRepository{db: db}
}

// FindSettlementsInRange returns the window's payments joined with their
// transaction's type and customer. Unlinked payments come back with null
// transaction fields.
func (r *GormPaymentReportRepository) FindSettlementsInRange(ctx context.Context, dateRange shared.DateRange) ([]report.SettlementRecord, error) {
	var records []report.SettlementRecord
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payments.id AS payment_id, payments.payment_date, payments.direction, payments.amount, "+
			"transactions.type AS transaction_type, transactions.customer_id, transactions.customer_name").
		Joins("LEFT JOIN transactions ON transactions.id = payments.transaction_id").
		Where("payments.payment_date BETWEEN ? AND ?", dateRange.Start, dateRange.End).
		Order("payments.payment_date ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

var _ report.PaymentReportRepository = (*GormPaymentReportRepository)(nil)
