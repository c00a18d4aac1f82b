package report

import (
	"context"
	"sort"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductActivity is one frozen transaction line joined with its document's
// type and date, the unit the product report folds over
type ProductActivity struct {
	ProductID       uuid.UUID
	ProductName     string
	UnitQuantityID  uuid.UUID
	UnitName        string
	TransactionType ledger.TransactionType
	TransactionDate time.Time
	Quantity        decimal.Decimal
	Amount          valueobject.Money
}

// ProductReportRepository fetches the frozen transaction lines feeding the
// product reports. A nil type includes both SELL and BUY lines; a nil
// product covers the whole catalog.
type ProductReportRepository interface {
	FindActivityInRange(ctx context.Context, typ *ledger.TransactionType, productID *uuid.UUID, r shared.DateRange) ([]ProductActivity, error)
}

// ProductSummary is the traded volume and value of one (product, unit) pair
// over a window, taken from frozen transaction lines.
type ProductSummary struct {
	ProductID      uuid.UUID         `json:"productId"`
	ProductName    string            `json:"productName"`
	UnitQuantityID uuid.UUID         `json:"unitQuantityId"`
	UnitName       string            `json:"unitName"`
	TotalQuantity  decimal.Decimal   `json:"totalQuantity"`
	TotalAmount    valueobject.Money `json:"totalAmount"`
}

type productKey struct {
	productID uuid.UUID
	unitID    uuid.UUID
}

// SummarizeProducts folds activity into per-product totals, ordered by total
// amount descending so the best sellers come first. Ties break on product
// name for stable output.
func SummarizeProducts(activity []ProductActivity) []ProductSummary {
	byKey := make(map[productKey]*ProductSummary)
	for _, line := range activity {
		key := productKey{productID: line.ProductID, unitID: line.UnitQuantityID}
		entry, ok := byKey[key]
		if !ok {
			entry = &ProductSummary{
				ProductID:      line.ProductID,
				ProductName:    line.ProductName,
				UnitQuantityID: line.UnitQuantityID,
				UnitName:       line.UnitName,
				TotalAmount:    valueobject.Zero(),
			}
			byKey[key] = entry
		}
		entry.TotalQuantity = entry.TotalQuantity.Add(line.Quantity)
		entry.TotalAmount = entry.TotalAmount.Add(line.Amount)
	}

	summaries := make([]ProductSummary, 0, len(byKey))
	for _, entry := range byKey {
		summaries = append(summaries, *entry)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].TotalAmount.Equals(summaries[j].TotalAmount) {
			return summaries[j].TotalAmount.LessThan(summaries[i].TotalAmount)
		}
		return summaries[i].ProductName < summaries[j].ProductName
	})
	return summaries
}

// ProductSeriesPoint is the traded volume and value inside one bucket,
// a per-bucket delta like the payment series
type ProductSeriesPoint struct {
	Date     time.Time         `json:"date"`
	Quantity decimal.Decimal   `json:"quantity"`
	Amount   valueobject.Money `json:"amount"`
}

// ProductTransactionReport is one product's traded totals and time series
// over a window
type ProductTransactionReport struct {
	ProductID     uuid.UUID            `json:"productId"`
	ProductName   string               `json:"productName"`
	StartDate     string               `json:"startDate"`
	EndDate       string               `json:"endDate"`
	TotalQuantity decimal.Decimal      `json:"totalQuantity"`
	TotalAmount   valueobject.Money    `json:"totalAmount"`
	Series        []ProductSeriesPoint `json:"series"`
}

// BuildProductReport folds one product's activity into totals and a bucketed
// series. Lines outside the window are ignored; every bucket appears even
// when empty. The product name is taken from the most recent line since it
// is denormalized at posting time.
func BuildProductReport(productID uuid.UUID, activity []ProductActivity, r shared.DateRange, interval shared.Interval) ProductTransactionReport {
	inWindow := make([]ProductActivity, 0, len(activity))
	for _, line := range activity {
		if line.ProductID == productID && r.Contains(line.TransactionDate) {
			inWindow = append(inWindow, line)
		}
	}
	sort.Slice(inWindow, func(i, j int) bool {
		return inWindow[i].TransactionDate.Before(inWindow[j].TransactionDate)
	})

	rep := ProductTransactionReport{
		ProductID:   productID,
		StartDate:   r.Start.Format("2006-01-02"),
		EndDate:     r.End.Format("2006-01-02"),
		TotalAmount: valueobject.Zero(),
	}
	if len(inWindow) > 0 {
		rep.ProductName = inWindow[len(inWindow)-1].ProductName
	}

	buckets := interval.Buckets(r)
	rep.Series = make([]ProductSeriesPoint, 0, len(buckets))
	next := 0
	for _, bucket := range buckets {
		end := interval.Next(bucket)
		point := ProductSeriesPoint{
			Date:   bucket,
			Amount: valueobject.Zero(),
		}
		for next < len(inWindow) && inWindow[next].TransactionDate.Before(end) {
			line := inWindow[next]
			point.Quantity = point.Quantity.Add(line.Quantity)
			point.Amount = point.Amount.Add(line.Amount)
			next++
		}
		rep.TotalQuantity = rep.TotalQuantity.Add(point.Quantity)
		rep.TotalAmount = rep.TotalAmount.Add(point.Amount)
		rep.Series = append(rep.Series, point)
	}

	return rep
}
