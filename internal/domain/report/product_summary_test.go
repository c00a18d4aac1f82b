package report

import (
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productName, unitName, qty, total, date string) ProductActivity {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return ProductActivity{
		ProductID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(productName)),
		ProductName:     productName,
		UnitQuantityID:  uuid.NewSHA1(uuid.NameSpaceOID, []byte(productName+"/"+unitName)),
		UnitName:        unitName,
		TransactionType: ledger.TransactionSell,
		TransactionDate: d,
		Quantity:        decimal.RequireFromString(qty),
		Amount:          money(total),
	}
}

func TestSummarizeProducts(t *testing.T) {
	activity := []ProductActivity{
		line("Rice", "kg", "10", "100.00", "2026-01-01"),
		line("Rice", "kg", "5", "50.00", "2026-01-02"),
		line("Oil", "bottle", "2", "300.00", "2026-01-01"),
	}

	summaries := SummarizeProducts(activity)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Oil", summaries[0].ProductName)
	assert.Equal(t, "300.00", summaries[0].TotalAmount.String())
	assert.Equal(t, "Rice", summaries[1].ProductName)
	assert.Equal(t, "15", summaries[1].TotalQuantity.String())
	assert.Equal(t, "150.00", summaries[1].TotalAmount.String())
}

func TestSummarizeProducts_SeparatesUnits(t *testing.T) {
	activity := []ProductActivity{
		line("Rice", "kg", "10", "100.00", "2026-01-01"),
		line("Rice", "sack", "1", "80.00", "2026-01-01"),
	}

	summaries := SummarizeProducts(activity)

	require.Len(t, summaries, 2)
	assert.Equal(t, "kg", summaries[0].UnitName)
	assert.Equal(t, "sack", summaries[1].UnitName)
}

func TestSummarizeProducts_Empty(t *testing.T) {
	assert.Empty(t, SummarizeProducts(nil))
}

func TestBuildProductReport(t *testing.T) {
	activity := []ProductActivity{
		line("Rice", "kg", "10", "100.00", "2026-01-01"),
		line("Rice", "kg", "5", "50.00", "2026-01-01"),
		line("Rice", "kg", "3", "30.00", "2026-01-03"),
	}
	productID := activity[0].ProductID
	r := window(t, "2026-01-01", "2026-01-03")

	rep := BuildProductReport(productID, activity, r, shared.IntervalDay)

	assert.Equal(t, "Rice", rep.ProductName)
	assert.Equal(t, "18", rep.TotalQuantity.String())
	assert.Equal(t, "180.00", rep.TotalAmount.String())

	require.Len(t, rep.Series, 3)
	assert.Equal(t, "15", rep.Series[0].Quantity.String())
	assert.Equal(t, "150.00", rep.Series[0].Amount.String())
	assert.True(t, rep.Series[1].Quantity.IsZero())
	assert.Equal(t, "30.00", rep.Series[2].Amount.String())
}

func TestBuildProductReport_FiltersOtherProductsAndWindow(t *testing.T) {
	rice := line("Rice", "kg", "10", "100.00", "2026-01-02")
	activity := []ProductActivity{
		rice,
		line("Oil", "bottle", "2", "300.00", "2026-01-02"),
		line("Rice", "kg", "99", "990.00", "2026-02-01"),
	}
	r := window(t, "2026-01-01", "2026-01-03")

	rep := BuildProductReport(rice.ProductID, activity, r, shared.IntervalDay)

	assert.Equal(t, "10", rep.TotalQuantity.String())
	assert.Equal(t, "100.00", rep.TotalAmount.String())
}

func TestBuildProductReport_EmptyActivity(t *testing.T) {
	r := window(t, "2026-01-01", "2026-01-02")

	rep := BuildProductReport(uuid.New(), nil, r, shared.IntervalDay)

	assert.Empty(t, rep.ProductName)
	assert.True(t, rep.TotalQuantity.IsZero())
	assert.True(t, rep.TotalAmount.IsZero())
	require.Len(t, rep.Series, 2)
}
