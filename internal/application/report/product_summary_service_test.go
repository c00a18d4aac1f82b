package report

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductReportRepo struct{ mock.Mock }

func (m *mockProductReportRepo) FindActivityInRange(ctx context.Context, typ *ledger.TransactionType, productID *uuid.UUID, r shared.DateRange) ([]report.ProductActivity, error) {
	args := m.Called(ctx, typ, productID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.ProductActivity), args.Error(1)
}

func productLine(productID uuid.UUID, name, qty, amount, date string) report.ProductActivity {
	d, _ := time.Parse("2006-01-02", date)
	return report.ProductActivity{
		ProductID:       productID,
		ProductName:     name,
		UnitQuantityID:  uuid.New(),
		UnitName:        "kg",
		TransactionType: ledger.TransactionSell,
		TransactionDate: d,
		Quantity:        decimal.RequireFromString(qty),
		Amount:          money(amount),
	}
}

func TestProductReport_Summary(t *testing.T) {
	repo := &mockProductReportRepo{}
	r := window(t, "2026-01-01", "2026-01-31")
	productID := uuid.New()
	repo.On("FindActivityInRange", mock.Anything, (*ledger.TransactionType)(nil), (*uuid.UUID)(nil), r).
		Return([]report.ProductActivity{
			productLine(productID, "Rice", "10", "100.00", "2026-01-05"),
			productLine(productID, "Rice", "5", "50.00", "2026-01-10"),
		}, nil)

	service := NewProductReportService(repo)
	summaries, err := service.GetSummary(context.Background(), nil, r)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Rice", summaries[0].ProductName)
}

func TestProductReport_PerProductSeries(t *testing.T) {
	repo := &mockProductReportRepo{}
	r := window(t, "2026-01-01", "2026-01-02")
	productID := uuid.New()
	repo.On("FindActivityInRange", mock.Anything, (*ledger.TransactionType)(nil), &productID, r).
		Return([]report.ProductActivity{
			productLine(productID, "Rice", "10", "100.00", "2026-01-01"),
			productLine(productID, "Rice", "2", "20.00", "2026-01-02"),
		}, nil)

	service := NewProductReportService(repo)
	rep, err := service.GetProductReport(context.Background(), productID, nil, r, shared.IntervalDay)
	require.NoError(t, err)

	assert.Equal(t, "12", rep.TotalQuantity.String())
	assert.Equal(t, "120.00", rep.TotalAmount.String())
	require.Len(t, rep.Series, 2)
	assert.Equal(t, "100.00", rep.Series[0].Amount.String())
}
