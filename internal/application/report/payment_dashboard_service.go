package report

import (
	"context"

	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
)

// PaymentDashboardService serves per-customer settlement positions and their
// time series
type PaymentDashboardService struct {
	paymentReportRepo report.PaymentReportRepository
}

// NewPaymentDashboardService creates a PaymentDashboardService
func NewPaymentDashboardService(paymentReportRepo report.PaymentReportRepository) *PaymentDashboardService {
	return &PaymentDashboardService{paymentReportRepo: paymentReportRepo}
}

// GetDashboard folds the window's settlements into customer positions and
// per-bucket deltas
func (s *PaymentDashboardService) GetDashboard(ctx context.Context, r shared.DateRange, interval shared.Interval) (*report.PaymentDashboard, error) {
	records, err := s.paymentReportRepo.FindSettlementsInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	dashboard := report.BuildPaymentDashboard(records, r, interval)
	return &dashboard, nil
}
