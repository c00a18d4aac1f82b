package report

import (
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settlementCustomer struct {
	id   uuid.UUID
	name string
}

func settlement(c *settlementCustomer, typ ledger.TransactionType, direction ledger.PaymentDirection, amount, date string) SettlementRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	rec := SettlementRecord{
		PaymentID:   uuid.New(),
		PaymentDate: d,
		Direction:   direction,
		Amount:      money(amount),
	}
	if c != nil {
		t := typ
		rec.TransactionType = &t
		rec.CustomerID = &c.id
		rec.CustomerName = c.name
	}
	return rec
}

func TestBuildPaymentDashboard_PerCustomerPositions(t *testing.T) {
	acme := &settlementCustomer{id: uuid.New(), name: "Acme Trading"}
	zenith := &settlementCustomer{id: uuid.New(), name: "Zenith Supplies"}
	records := []SettlementRecord{
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "100.00", "2026-01-01"),
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "50.00", "2026-01-02"),
		settlement(zenith, ledger.TransactionBuy, ledger.PaymentOutflow, "30.00", "2026-01-02"),
	}
	r := window(t, "2026-01-01", "2026-01-03")

	d := BuildPaymentDashboard(records, r, shared.IntervalDay)

	require.Len(t, d.Customers, 2)
	assert.Equal(t, "Acme Trading", d.Customers[0].CustomerName)
	assert.Equal(t, "150.00", d.Customers[0].Receivable.String())
	assert.True(t, d.Customers[0].Payable.IsZero())
	assert.Equal(t, "150.00", d.Customers[0].Net.String())

	assert.Equal(t, "Zenith Supplies", d.Customers[1].CustomerName)
	assert.Equal(t, "30.00", d.Customers[1].Payable.String())
	assert.Equal(t, "-30.00", d.Customers[1].Net.String())

	assert.Equal(t, "150.00", d.TotalReceivable.String())
	assert.Equal(t, "30.00", d.TotalPayable.String())
	assert.Equal(t, "120.00", d.Net.String())
}

func TestBuildPaymentDashboard_UnlinkedPaymentsBucketLast(t *testing.T) {
	acme := &settlementCustomer{id: uuid.New(), name: "Acme Trading"}
	records := []SettlementRecord{
		settlement(nil, "", ledger.PaymentInflow, "40.00", "2026-01-01"),
		settlement(nil, "", ledger.PaymentOutflow, "15.00", "2026-01-02"),
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "100.00", "2026-01-01"),
	}
	r := window(t, "2026-01-01", "2026-01-03")

	d := BuildPaymentDashboard(records, r, shared.IntervalDay)

	require.Len(t, d.Customers, 2)
	assert.Equal(t, "Acme Trading", d.Customers[0].CustomerName)

	unlinked := d.Customers[1]
	assert.Nil(t, unlinked.CustomerID)
	assert.Equal(t, "40.00", unlinked.Receivable.String())
	assert.Equal(t, "15.00", unlinked.Payable.String())
	assert.Equal(t, "25.00", unlinked.Net.String())
}

func TestBuildPaymentDashboard_RefundsNetAgainstPosition(t *testing.T) {
	acme := &settlementCustomer{id: uuid.New(), name: "Acme Trading"}
	records := []SettlementRecord{
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "100.00", "2026-01-01"),
		settlement(acme, ledger.TransactionSell, ledger.PaymentOutflow, "20.00", "2026-01-02"),
	}
	r := window(t, "2026-01-01", "2026-01-03")

	d := BuildPaymentDashboard(records, r, shared.IntervalDay)

	require.Len(t, d.Customers, 1)
	assert.Equal(t, "80.00", d.Customers[0].Receivable.String())
	assert.Equal(t, "80.00", d.Net.String())
}

func TestBuildPaymentDashboard_SeriesIsPerBucketDeltas(t *testing.T) {
	acme := &settlementCustomer{id: uuid.New(), name: "Acme Trading"}
	records := []SettlementRecord{
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "10.00", "2026-01-01"),
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "10.00", "2026-01-02"),
		settlement(acme, ledger.TransactionBuy, ledger.PaymentOutflow, "4.00", "2026-01-02"),
	}
	r := window(t, "2026-01-01", "2026-01-02")

	d := BuildPaymentDashboard(records, r, shared.IntervalDay)

	require.Len(t, d.Series, 2)
	assert.Equal(t, "10.00", d.Series[0].Receivable.String())
	assert.Equal(t, "10.00", d.Series[0].Net.String())
	assert.Equal(t, "10.00", d.Series[1].Receivable.String())
	assert.Equal(t, "4.00", d.Series[1].Payable.String())
	assert.Equal(t, "6.00", d.Series[1].Net.String())
}

func TestBuildPaymentDashboard_IgnoresRecordsOutsideWindow(t *testing.T) {
	acme := &settlementCustomer{id: uuid.New(), name: "Acme Trading"}
	records := []SettlementRecord{
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "999.00", "2025-12-31"),
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "25.00", "2026-01-02"),
		settlement(acme, ledger.TransactionBuy, ledger.PaymentOutflow, "999.00", "2026-01-04"),
	}
	r := window(t, "2026-01-01", "2026-01-03")

	d := BuildPaymentDashboard(records, r, shared.IntervalDay)

	assert.Equal(t, "25.00", d.TotalReceivable.String())
	assert.True(t, d.TotalPayable.IsZero())
}

func TestBuildPaymentDashboard_EmptyBucketsArePresent(t *testing.T) {
	acme := &settlementCustomer{id: uuid.New(), name: "Acme Trading"}
	records := []SettlementRecord{
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "5.00", "2026-01-01"),
	}
	r := window(t, "2026-01-01", "2026-01-05")

	d := BuildPaymentDashboard(records, r, shared.IntervalDay)

	require.Len(t, d.Series, 5)
	for _, p := range d.Series[1:] {
		assert.True(t, p.Receivable.IsZero())
		assert.True(t, p.Payable.IsZero())
		assert.True(t, p.Net.IsZero())
	}
}

func TestBuildPaymentDashboard_MonthlyInterval(t *testing.T) {
	acme := &settlementCustomer{id: uuid.New(), name: "Acme Trading"}
	records := []SettlementRecord{
		settlement(acme, ledger.TransactionSell, ledger.PaymentInflow, "100.00", "2026-01-15"),
		settlement(acme, ledger.TransactionBuy, ledger.PaymentOutflow, "40.00", "2026-02-10"),
	}
	r := window(t, "2026-01-01", "2026-02-28")

	d := BuildPaymentDashboard(records, r, shared.IntervalMonth)

	require.Len(t, d.Series, 2)
	assert.Equal(t, "100.00", d.Series[0].Net.String())
	assert.Equal(t, "-40.00", d.Series[1].Net.String())
	assert.Equal(t, "60.00", d.Net.String())
}
