package inventory

import (
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movement(productName, unitName, typ, qty string, date time.Time) Movement {
	return Movement{
		Entity:         shared.NewEntity(),
		ProductID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte(productName)),
		ProductName:    productName,
		UnitQuantityID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(productName+"/"+unitName)),
		UnitName:       unitName,
		Type:           MovementType(typ),
		Quantity:       decimal.RequireFromString(qty),
		MovementDate:   date,
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSummarize(t *testing.T) {
	movements := []Movement{
		movement("Rice", "kg", "IN", "10", day("2026-01-01")),
		movement("Rice", "kg", "OUT", "3", day("2026-01-02")),
		movement("Rice", "kg", "IN", "5", day("2026-01-03")),
		movement("Oil", "bottle", "IN", "4", day("2026-01-01")),
		// Nets to zero, must be suppressed.
		movement("Flour", "kg", "IN", "7", day("2026-01-01")),
		movement("Flour", "kg", "OUT", "7", day("2026-01-02")),
	}

	summaries := Summarize(movements)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Oil", summaries[0].ProductName)
	assert.Equal(t, "4", summaries[0].Quantity.String())
	assert.Equal(t, "Rice", summaries[1].ProductName)
	assert.Equal(t, "12", summaries[1].Quantity.String())
}

func TestSummarize_TracksUnitsSeparately(t *testing.T) {
	movements := []Movement{
		movement("Rice", "kg", "IN", "10", day("2026-01-01")),
		movement("Rice", "sack", "IN", "2", day("2026-01-01")),
	}

	summaries := Summarize(movements)

	require.Len(t, summaries, 2)
	assert.Equal(t, "kg", summaries[0].UnitName)
	assert.Equal(t, "10", summaries[0].Quantity.String())
	assert.Equal(t, "sack", summaries[1].UnitName)
	assert.Equal(t, "2", summaries[1].Quantity.String())
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestSeries_Cumulative(t *testing.T) {
	movements := []Movement{
		movement("Rice", "kg", "IN", "10", day("2026-01-01")),
		movement("Rice", "kg", "OUT", "3", day("2026-01-02")),
		movement("Rice", "kg", "IN", "5", day("2026-01-04")),
	}
	r, err := shared.ParseDateRange("2026-01-01", "2026-01-04")
	require.NoError(t, err)

	points := Series(movements, r, shared.IntervalDay)

	require.Len(t, points, 4)
	assert.Equal(t, "10", points[0].Quantity.String())
	assert.Equal(t, "7", points[1].Quantity.String())
	assert.Equal(t, "7", points[2].Quantity.String())
	assert.Equal(t, "12", points[3].Quantity.String())
}

func TestSeries_OpeningBalanceFromPriorHistory(t *testing.T) {
	movements := []Movement{
		movement("Rice", "kg", "IN", "100", day("2025-12-20")),
		movement("Rice", "kg", "OUT", "5", day("2026-01-02")),
	}
	r, err := shared.ParseDateRange("2026-01-01", "2026-01-03")
	require.NoError(t, err)

	points := Series(movements, r, shared.IntervalDay)

	require.Len(t, points, 3)
	assert.Equal(t, "100", points[0].Quantity.String())
	assert.Equal(t, "95", points[1].Quantity.String())
	assert.Equal(t, "95", points[2].Quantity.String())
}

func TestSeries_WeeklyBucketsStartMonday(t *testing.T) {
	// 2026-01-01 is a Thursday; its week bucket starts Monday 2025-12-29.
	movements := []Movement{
		movement("Rice", "kg", "IN", "8", day("2026-01-01")),
		movement("Rice", "kg", "IN", "2", day("2026-01-06")),
	}
	r, err := shared.ParseDateRange("2026-01-01", "2026-01-10")
	require.NoError(t, err)

	points := Series(movements, r, shared.IntervalWeek)

	require.Len(t, points, 2)
	assert.Equal(t, day("2025-12-29"), points[0].Date)
	assert.Equal(t, "8", points[0].Quantity.String())
	assert.Equal(t, day("2026-01-05"), points[1].Date)
	assert.Equal(t, "10", points[1].Quantity.String())
}

func TestSeries_EmptyHistoryYieldsZeros(t *testing.T) {
	r, err := shared.ParseDateRange("2026-01-01", "2026-01-03")
	require.NoError(t, err)

	points := Series(nil, r, shared.IntervalDay)

	require.Len(t, points, 3)
	for _, p := range points {
		assert.True(t, p.Quantity.IsZero())
	}
}

func TestNewMovement_Validation(t *testing.T) {
	productID, unitID, creator := uuid.New(), uuid.New(), uuid.New()

	_, err := NewMovement(productID, "Rice", unitID, "kg", MovementIn, decimal.Zero, day("2026-01-01"), "", creator)
	require.Error(t, err)

	_, err = NewMovement(productID, "Rice", unitID, "kg", MovementIn, decimal.NewFromInt(-1), day("2026-01-01"), "", creator)
	require.Error(t, err)

	_, err = NewMovement(productID, "Rice", unitID, "kg", MovementIn, decimal.NewFromInt(1), time.Time{}, "", creator)
	require.Error(t, err)

	m, err := NewMovement(productID, "Rice", unitID, "kg", MovementOut, decimal.NewFromInt(3), day("2026-01-01"), "", creator)
	require.NoError(t, err)
	assert.Equal(t, "-3", m.SignedQuantity().String())
}
