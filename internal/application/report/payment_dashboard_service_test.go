package report

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPaymentReportRepo struct{ mock.Mock }

func (m *mockPaymentReportRepo) FindSettlementsInRange(ctx context.Context, r shared.DateRange) ([]report.SettlementRecord, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.SettlementRecord), args.Error(1)
}

func TestPaymentDashboard_FoldsSettlements(t *testing.T) {
	repo := &mockPaymentReportRepo{}
	r := window(t, "2026-01-01", "2026-01-02")

	sell := ledger.TransactionSell
	customerID := uuid.New()
	date, _ := time.Parse("2006-01-02", "2026-01-01")
	repo.On("FindSettlementsInRange", mock.Anything, r).Return([]report.SettlementRecord{
		{
			PaymentID:       uuid.New(),
			PaymentDate:     date,
			Direction:       ledger.PaymentInflow,
			Amount:          money("75.00"),
			TransactionType: &sell,
			CustomerID:      &customerID,
			CustomerName:    "Acme Trading",
		},
	}, nil)

	service := NewPaymentDashboardService(repo)
	d, err := service.GetDashboard(context.Background(), r, shared.IntervalDay)
	require.NoError(t, err)

	assert.Equal(t, "75.00", d.TotalReceivable.String())
	require.Len(t, d.Customers, 1)
	assert.Equal(t, "Acme Trading", d.Customers[0].CustomerName)
	require.Len(t, d.Series, 2)
}

func TestPaymentDashboard_EmptyWindowIsZeroedReport(t *testing.T) {
	repo := &mockPaymentReportRepo{}
	r := window(t, "2026-01-01", "2026-01-03")
	repo.On("FindSettlementsInRange", mock.Anything, r).Return([]report.SettlementRecord{}, nil)

	service := NewPaymentDashboardService(repo)
	d, err := service.GetDashboard(context.Background(), r, shared.IntervalDay)
	require.NoError(t, err)

	assert.True(t, d.TotalReceivable.IsZero())
	assert.True(t, d.TotalPayable.IsZero())
	assert.Empty(t, d.Customers)
	assert.Len(t, d.Series, 3)
}
