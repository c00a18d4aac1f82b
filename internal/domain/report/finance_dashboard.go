package report

import (
	"context"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
)

// GrossSales reports earnings as booked, independent of cash timing.
// Revenue is the sum of SELL grand totals in the window, expenses the sum of
// BUY grand totals.
type GrossSales struct {
	TotalRevenue  valueobject.Money `json:"totalRevenue"`
	TotalExpenses valueobject.Money `json:"totalExpenses"`
	NetIncome     valueobject.Money `json:"netIncome"`
}

// Cashflow reports actual cash movement in the window
type Cashflow struct {
	Inflow      valueobject.Money `json:"inflow"`
	Outflow     valueobject.Money `json:"outflow"`
	NetCashFlow valueobject.Money `json:"netCashFlow"`
}

// TradeAccount reports the gap between booked figures and settled cash.
// Receivable goes negative on overpayment; the raw signed value is reported,
// never clamped.
type TradeAccount struct {
	AccountsReceivable valueobject.Money `json:"accountsReceivable"`
	AccountsPayable    valueobject.Money `json:"accountsPayable"`
	OutstandingBalance valueobject.Money `json:"outstandingBalance"`
}

// DeferredItems reports cash collected or paid ahead of recognition
type DeferredItems struct {
	UnearnedRevenue     valueobject.Money `json:"unearnedRevenue"`
	PrepaidExpenses     valueobject.Money `json:"prepaidExpenses"`
	NetDeferredPosition valueobject.Money `json:"netDeferredPosition"`
}

// BalanceSheetPosition combines the trade and deferred positions into a
// working-capital view
type BalanceSheetPosition struct {
	CurrentAssets      valueobject.Money `json:"currentAssets"`
	CurrentLiabilities valueobject.Money `json:"currentLiabilities"`
	NetWorkingCapital  valueobject.Money `json:"netWorkingCapital"`
}

// FinanceDashboard is the five-block finance report over one window
type FinanceDashboard struct {
	StartDate            string               `json:"startDate"`
	EndDate              string               `json:"endDate"`
	GrossSales           GrossSales           `json:"grossSales"`
	Cashflow             Cashflow             `json:"cashflow"`
	TradeAccount         TradeAccount         `json:"tradeAccount"`
	DeferredItems        DeferredItems        `json:"deferredItems"`
	BalanceSheetPosition BalanceSheetPosition `json:"balanceSheetPosition"`
}

// BuildFinanceDashboard derives all five blocks from the four window sums.
// The first four blocks are linear combinations of (revenue, expenses,
// inflow, outflow) and report raw signed values. The balance-sheet block
// floors each contributor at zero before combining: a negative receivable or
// deferred figure means none exists on that side, so it must not offset the
// other contributors.
func BuildFinanceDashboard(r shared.DateRange, revenue, expenses, inflow, outflow valueobject.Money) FinanceDashboard {
	receivable := revenue.Subtract(inflow)
	payable := expenses.Subtract(outflow)
	unearned := inflow.Subtract(revenue)
	prepaid := outflow.Subtract(expenses)
	assets := positivePart(receivable).Add(positivePart(unearned))
	liabilities := positivePart(payable).Add(positivePart(prepaid))

	return FinanceDashboard{
		StartDate: r.Start.Format("2006-01-02"),
		EndDate:   r.End.Format("2006-01-02"),
		GrossSales: GrossSales{
			TotalRevenue:  revenue,
			TotalExpenses: expenses,
			NetIncome:     revenue.Subtract(expenses),
		},
		Cashflow: Cashflow{
			Inflow:      inflow,
			Outflow:     outflow,
			NetCashFlow: inflow.Subtract(outflow),
		},
		TradeAccount: TradeAccount{
			AccountsReceivable: receivable,
			AccountsPayable:    payable,
			OutstandingBalance: receivable.Subtract(payable),
		},
		DeferredItems: DeferredItems{
			UnearnedRevenue:     unearned,
			PrepaidExpenses:     prepaid,
			NetDeferredPosition: unearned.Subtract(prepaid),
		},
		BalanceSheetPosition: BalanceSheetPosition{
			CurrentAssets:      assets,
			CurrentLiabilities: liabilities,
			NetWorkingCapital:  assets.Subtract(liabilities),
		},
	}
}

// positivePart returns m when positive, zero otherwise
func positivePart(m valueobject.Money) valueobject.Money {
	if m.IsNegative() {
		return valueobject.Zero()
	}
	return m
}

// FinanceReportRepository runs the window sum queries behind the dashboards.
// Sums over empty windows are zero, never an error.
type FinanceReportRepository interface {
	SumTransactionTotals(ctx context.Context, typ ledger.TransactionType, r shared.DateRange) (valueobject.Money, error)
	SumPayments(ctx context.Context, direction ledger.PaymentDirection, r shared.DateRange) (valueobject.Money, error)
}
