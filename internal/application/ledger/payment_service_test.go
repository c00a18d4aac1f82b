package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	paymentRepo     *mockPaymentRepo
	transactionRepo *mockTransactionRepo
	service         *PaymentService
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		paymentRepo:     &mockPaymentRepo{},
		transactionRepo: &mockTransactionRepo{},
	}
	scope := &NoOpTransactionScope{
		TransactionRepo: f.transactionRepo,
		PaymentRepo:     f.paymentRepo,
	}
	f.service = NewPaymentService(f.paymentRepo, scope)
	return f
}

func paymentCommand(txID *uuid.UUID, direction, amount string) CreatePaymentCommand {
	return CreatePaymentCommand{
		TransactionID: txID,
		Method:        "CASH",
		Direction:     direction,
		Amount:        valueobject.MustMoneyFromString(amount),
		PaymentDate:   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		CreatedBy:     uuid.New(),
	}
}

func TestCreatePayment_StandaloneSavesWithoutStatusWork(t *testing.T) {
	f := newPaymentFixture()
	f.paymentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	payment, err := f.service.CreatePayment(context.Background(), paymentCommand(nil, "OUTFLOW", "45.00"))
	require.NoError(t, err)

	assert.Nil(t, payment.TransactionID)
	assert.Equal(t, ledger.PaymentOutflow, payment.Direction)
	f.transactionRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePayment_LinkedPaymentRecomputesStatus(t *testing.T) {
	f := newPaymentFixture()
	txID := uuid.New()
	tx := &ledger.Transaction{
		Entity:     shared.Entity{ID: txID},
		GrandTotal: valueobject.MustMoneyFromString("100.00"),
	}
	f.transactionRepo.On("FindByID", mock.Anything, txID).Return(tx, nil)
	f.paymentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.paymentRepo.On("FindByTransactionID", mock.Anything, txID).Return([]ledger.Payment{
		{Direction: ledger.PaymentInflow, Amount: valueobject.MustMoneyFromString("40.00")},
	}, nil)
	f.transactionRepo.On("UpdateStatus", mock.Anything, txID, ledger.StatusPartiallyPaid).Return(nil)

	_, err := f.service.CreatePayment(context.Background(), paymentCommand(&txID, "INFLOW", "40.00"))
	require.NoError(t, err)

	f.transactionRepo.AssertCalled(t, "UpdateStatus", mock.Anything, txID, ledger.StatusPartiallyPaid)
}

func TestCreatePayment_SettlingPaymentMarksPaid(t *testing.T) {
	f := newPaymentFixture()
	txID := uuid.New()
	tx := &ledger.Transaction{
		Entity:     shared.Entity{ID: txID},
		GrandTotal: valueobject.MustMoneyFromString("100.00"),
	}
	f.transactionRepo.On("FindByID", mock.Anything, txID).Return(tx, nil)
	f.paymentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.paymentRepo.On("FindByTransactionID", mock.Anything, txID).Return([]ledger.Payment{
		{Direction: ledger.PaymentInflow, Amount: valueobject.MustMoneyFromString("60.00")},
		{Direction: ledger.PaymentInflow, Amount: valueobject.MustMoneyFromString("40.00")},
	}, nil)
	f.transactionRepo.On("UpdateStatus", mock.Anything, txID, ledger.StatusPaid).Return(nil)

	_, err := f.service.CreatePayment(context.Background(), paymentCommand(&txID, "INFLOW", "40.00"))
	require.NoError(t, err)

	f.transactionRepo.AssertCalled(t, "UpdateStatus", mock.Anything, txID, ledger.StatusPaid)
}

func TestCreatePayment_RefundCanReopenTransaction(t *testing.T) {
	f := newPaymentFixture()
	txID := uuid.New()
	tx := &ledger.Transaction{
		Entity:     shared.Entity{ID: txID},
		GrandTotal: valueobject.MustMoneyFromString("100.00"),
	}
	f.transactionRepo.On("FindByID", mock.Anything, txID).Return(tx, nil)
	f.paymentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.paymentRepo.On("FindByTransactionID", mock.Anything, txID).Return([]ledger.Payment{
		{Direction: ledger.PaymentInflow, Amount: valueobject.MustMoneyFromString("100.00")},
		{Direction: ledger.PaymentOutflow, Amount: valueobject.MustMoneyFromString("100.00")},
	}, nil)
	f.transactionRepo.On("UpdateStatus", mock.Anything, txID, ledger.StatusUnpaid).Return(nil)

	_, err := f.service.CreatePayment(context.Background(), paymentCommand(&txID, "OUTFLOW", "100.00"))
	require.NoError(t, err)

	f.transactionRepo.AssertCalled(t, "UpdateStatus", mock.Anything, txID, ledger.StatusUnpaid)
}

func TestCreatePayment_UnknownTransactionFails(t *testing.T) {
	f := newPaymentFixture()
	txID := uuid.New()
	f.transactionRepo.On("FindByID", mock.Anything, txID).Return(nil, shared.ErrNotFound)

	_, err := f.service.CreatePayment(context.Background(), paymentCommand(&txID, "INFLOW", "10.00"))
	assert.ErrorIs(t, err, shared.ErrNotFound)
	f.paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreatePayment_InvalidInputs(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.service.CreatePayment(context.Background(), paymentCommand(nil, "SIDEWAYS", "10.00"))
	require.Error(t, err)

	cmd := paymentCommand(nil, "INFLOW", "0")
	_, err = f.service.CreatePayment(context.Background(), cmd)
	require.Error(t, err)

	f.paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
