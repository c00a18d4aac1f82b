package report

import (
	"context"
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DashboardCache caches serialized dashboard payloads. Implementations must
// treat a miss and a backend failure the same way, by returning ok=false;
// dashboards are always recomputable from the database.
type DashboardCache interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// DashboardCacheTTL bounds how stale a cached dashboard may get
const DashboardCacheTTL = 5 * time.Minute

// FinanceDashboardService serves the accrual and cash dashboard
type FinanceDashboardService struct {
	reportRepo report.FinanceReportRepository
	cache      DashboardCache
	logger     *zap.Logger
}

// NewFinanceDashboardService creates a FinanceDashboardService. The cache is
// optional; pass nil to always compute from the database.
func NewFinanceDashboardService(reportRepo report.FinanceReportRepository, cache DashboardCache, logger *zap.Logger) *FinanceDashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceDashboardService{reportRepo: reportRepo, cache: cache, logger: logger}
}

// GetDashboard computes the dashboard for the window, serving a cached copy
// when one is fresh. Cache failures are logged and otherwise ignored.
func (s *FinanceDashboardService) GetDashboard(ctx context.Context, r shared.DateRange) (*report.FinanceDashboard, error) {
	key := fmt.Sprintf("dashboard:finance:%s:%s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	if s.cache != nil {
		var cached report.FinanceDashboard
		ok, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			return &cached, nil
		}
	}

	revenue, err := s.reportRepo.SumTransactionTotals(ctx, ledger.TransactionSell, r)
	if err != nil {
		return nil, err
	}
	expenses, err := s.reportRepo.SumTransactionTotals(ctx, ledger.TransactionBuy, r)
	if err != nil {
		return nil, err
	}
	inflow, err := s.reportRepo.SumPayments(ctx, ledger.PaymentInflow, r)
	if err != nil {
		return nil, err
	}
	outflow, err := s.reportRepo.SumPayments(ctx, ledger.PaymentOutflow, r)
	if err != nil {
		return nil, err
	}

	dashboard := report.BuildFinanceDashboard(r, revenue, expenses, inflow, outflow)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, dashboard, DashboardCacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return &dashboard, nil
}
