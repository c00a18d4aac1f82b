package report

import (
	"context"
	"sort"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SettlementRecord is a payment joined with the transaction it settles.
// Unlinked payments (owner drawings, sundry expenses) carry nil transaction
// fields and fold into a dedicated bucket.
type SettlementRecord struct {
	PaymentID       uuid.UUID
	PaymentDate     time.Time
	Direction       ledger.PaymentDirection
	Amount          valueobject.Money
	TransactionType *ledger.TransactionType
	CustomerID      *uuid.UUID
	CustomerName    string
}

// receivableContribution is the record's effect on money collected from
// customers: inflows on SELL documents count positive, refunds negative.
// Unlinked inflows count here too so the dashboard covers all cash.
func (s SettlementRecord) receivableContribution() valueobject.Money {
	sell := s.TransactionType == nil || *s.TransactionType == ledger.TransactionSell
	if !sell {
		return valueobject.Zero()
	}
	if s.Direction == ledger.PaymentOutflow {
		if s.TransactionType == nil {
			return valueobject.Zero()
		}
		return s.Amount.Negate()
	}
	return s.Amount
}

// payableContribution mirrors receivableContribution for money paid to
// suppliers on BUY documents; unlinked outflows count as payable.
func (s SettlementRecord) payableContribution() valueobject.Money {
	if s.TransactionType == nil {
		if s.Direction == ledger.PaymentOutflow {
			return s.Amount
		}
		return valueobject.Zero()
	}
	if *s.TransactionType != ledger.TransactionBuy {
		return valueobject.Zero()
	}
	if s.Direction == ledger.PaymentInflow {
		return s.Amount.Negate()
	}
	return s.Amount
}

// CustomerPosition is one customer's settled receivable and payable over the
// window. The unlinked bucket has a nil CustomerID.
type CustomerPosition struct {
	CustomerID   *uuid.UUID        `json:"customerId"`
	CustomerName string            `json:"customerName"`
	Receivable   valueobject.Money `json:"receivable"`
	Payable      valueobject.Money `json:"payable"`
	Net          valueobject.Money `json:"net"`
}

// PaymentSeriesPoint is the settlement activity inside one bucket. Unlike
// the inventory series, buckets are deltas, not running balances.
type PaymentSeriesPoint struct {
	Date       time.Time         `json:"date"`
	Receivable valueobject.Money `json:"receivable"`
	Payable    valueobject.Money `json:"payable"`
	Net        valueobject.Money `json:"net"`
}

// PaymentDashboard aggregates settlement activity over a window
type PaymentDashboard struct {
	StartDate       string               `json:"startDate"`
	EndDate         string               `json:"endDate"`
	TotalReceivable valueobject.Money    `json:"totalReceivable"`
	TotalPayable    valueobject.Money    `json:"totalPayable"`
	Net             valueobject.Money    `json:"net"`
	Customers       []CustomerPosition   `json:"customers"`
	Series          []PaymentSeriesPoint `json:"series"`
}

// BuildPaymentDashboard folds settlement records inside the window into
// per-customer positions and a per-bucket series. Records outside the window
// are ignored; every bucket in the window appears in the series even when
// empty, so charts have no gaps. Customers sort by name with the unlinked
// bucket last.
func BuildPaymentDashboard(records []SettlementRecord, r shared.DateRange, interval shared.Interval) PaymentDashboard {
	inWindow := make([]SettlementRecord, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.PaymentDate) {
			inWindow = append(inWindow, rec)
		}
	}
	sort.Slice(inWindow, func(i, j int) bool {
		return inWindow[i].PaymentDate.Before(inWindow[j].PaymentDate)
	})

	dashboard := PaymentDashboard{
		StartDate:       r.Start.Format("2006-01-02"),
		EndDate:         r.End.Format("2006-01-02"),
		TotalReceivable: valueobject.Zero(),
		TotalPayable:    valueobject.Zero(),
	}

	type customerKey struct {
		linked bool
		id     uuid.UUID
	}
	positions := make(map[customerKey]*CustomerPosition)
	for _, rec := range inWindow {
		key := customerKey{}
		if rec.CustomerID != nil {
			key = customerKey{linked: true, id: *rec.CustomerID}
		}
		pos, ok := positions[key]
		if !ok {
			pos = &CustomerPosition{
				CustomerID:   rec.CustomerID,
				CustomerName: rec.CustomerName,
				Receivable:   valueobject.Zero(),
				Payable:      valueobject.Zero(),
			}
			positions[key] = pos
		}
		pos.Receivable = pos.Receivable.Add(rec.receivableContribution())
		pos.Payable = pos.Payable.Add(rec.payableContribution())
	}

	dashboard.Customers = make([]CustomerPosition, 0, len(positions))
	for _, pos := range positions {
		pos.Net = pos.Receivable.Subtract(pos.Payable)
		dashboard.Customers = append(dashboard.Customers, *pos)
		dashboard.TotalReceivable = dashboard.TotalReceivable.Add(pos.Receivable)
		dashboard.TotalPayable = dashboard.TotalPayable.Add(pos.Payable)
	}
	sort.Slice(dashboard.Customers, func(i, j int) bool {
		a, b := dashboard.Customers[i], dashboard.Customers[j]
		if (a.CustomerID == nil) != (b.CustomerID == nil) {
			return b.CustomerID == nil
		}
		return a.CustomerName < b.CustomerName
	})
	dashboard.Net = dashboard.TotalReceivable.Subtract(dashboard.TotalPayable)

	buckets := interval.Buckets(r)
	dashboard.Series = make([]PaymentSeriesPoint, 0, len(buckets))
	next := 0
	for _, bucket := range buckets {
		end := interval.Next(bucket)
		point := PaymentSeriesPoint{
			Date:       bucket,
			Receivable: valueobject.Zero(),
			Payable:    valueobject.Zero(),
		}
		for next < len(inWindow) && inWindow[next].PaymentDate.Before(end) {
			rec := inWindow[next]
			point.Receivable = point.Receivable.Add(rec.receivableContribution())
			point.Payable = point.Payable.Add(rec.payableContribution())
			next++
		}
		point.Net = point.Receivable.Subtract(point.Payable)
		dashboard.Series = append(dashboard.Series, point)
	}

	return dashboard
}

// PaymentReportRepository fetches payments joined with their transaction
// context for the payment dashboard
type PaymentReportRepository interface {
	FindSettlementsInRange(ctx context.Context, r shared.DateRange) ([]SettlementRecord, error)
}
