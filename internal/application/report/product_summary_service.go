package report

import (
	"context"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductReportService serves product-level transaction rollups
type ProductReportService struct {
	productReportRepo report.ProductReportRepository
}

// NewProductReportService creates a ProductReportService
func NewProductReportService(productReportRepo report.ProductReportRepository) *ProductReportService {
	return &ProductReportService{productReportRepo: productReportRepo}
}

// GetSummary aggregates transaction lines in the window per (product, unit)
// pair. A nil type covers both SELL and BUY documents.
func (s *ProductReportService) GetSummary(ctx context.Context, typ *ledger.TransactionType, r shared.DateRange) ([]report.ProductSummary, error) {
	activity, err := s.productReportRepo.FindActivityInRange(ctx, typ, nil, r)
	if err != nil {
		return nil, err
	}
	return report.SummarizeProducts(activity), nil
}

// GetProductReport builds one product's traded totals and bucketed series
// over the window
func (s *ProductReportService) GetProductReport(ctx context.Context, productID uuid.UUID, typ *ledger.TransactionType, r shared.DateRange, interval shared.Interval) (*report.ProductTransactionReport, error) {
	activity, err := s.productReportRepo.FindActivityInRange(ctx, typ, &productID, r)
	if err != nil {
		return nil, err
	}
	rep := report.BuildProductReport(productID, activity, r, interval)
	return &rep, nil
}
