package inventory

import (
	"sort"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockSummary is the net stock for one (product, unit) pair
type StockSummary struct {
	ProductID      uuid.UUID       `json:"productId"`
	ProductName    string          `json:"productName"`
	UnitQuantityID uuid.UUID       `json:"unitQuantityId"`
	UnitName       string          `json:"unitName"`
	Quantity       decimal.Decimal `json:"quantity"`
}

type stockKey struct {
	productID uuid.UUID
	unitID    uuid.UUID
}

// Summarize folds a movement history into net stock per (product, unit) pair.
// Pairs that net out to exactly zero are omitted. Results are ordered by
// product name, then unit name, for stable presentation.
func Summarize(movements []Movement) []StockSummary {
	byKey := make(map[stockKey]*StockSummary)
	for _, m := range movements {
		key := stockKey{productID: m.ProductID, unitID: m.UnitQuantityID}
		entry, ok := byKey[key]
		if !ok {
			entry = &StockSummary{
				ProductID:      m.ProductID,
				ProductName:    m.ProductName,
				UnitQuantityID: m.UnitQuantityID,
				UnitName:       m.UnitName,
			}
			byKey[key] = entry
		}
		entry.Quantity = entry.Quantity.Add(m.SignedQuantity())
	}

	summaries := make([]StockSummary, 0, len(byKey))
	for _, entry := range byKey {
		if entry.Quantity.IsZero() {
			continue
		}
		summaries = append(summaries, *entry)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].ProductName != summaries[j].ProductName {
			return summaries[i].ProductName < summaries[j].ProductName
		}
		return summaries[i].UnitName < summaries[j].UnitName
	})
	return summaries
}

// SeriesPoint is the stock on hand at the start of one bucket
type SeriesPoint struct {
	Date     time.Time       `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Series produces a cumulative stock curve over the requested range. The
// movements slice must contain the full history up to the range end;
// movements dated before the range seed the opening balance, so the first
// bucket already reflects prior stock. Each point reports the net stock after
// all movements inside that bucket.
func Series(movements []Movement, r shared.DateRange, interval shared.Interval) []SeriesPoint {
	sorted := make([]Movement, len(movements))
	copy(sorted, movements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MovementDate.Before(sorted[j].MovementDate)
	})

	buckets := interval.Buckets(r)
	points := make([]SeriesPoint, 0, len(buckets))

	running := decimal.Zero
	next := 0
	for _, bucket := range buckets {
		end := interval.Next(bucket)
		for next < len(sorted) && sorted[next].MovementDate.Before(end) {
			running = running.Add(sorted[next].SignedQuantity())
			next++
		}
		points = append(points, SeriesPoint{Date: bucket, Quantity: running})
	}
	return points
}
