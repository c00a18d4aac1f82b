package ledger

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*partner.Customer, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uuid.UUID]*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uuid.UUID]*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

type mockUnitRepo struct{ mock.Mock }

func (m *mockUnitRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.UnitQuantity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.UnitQuantity), args.Error(1)
}

func (m *mockUnitRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.UnitQuantity, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uuid.UUID]*catalog.UnitQuantity), args.Error(1)
}

func (m *mockUnitRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.UnitQuantity, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.UnitQuantity), args.Get(1).(int64), args.Error(2)
}

func (m *mockUnitRepo) Save(ctx context.Context, unit *catalog.UnitQuantity) error {
	return m.Called(ctx, unit).Error(0)
}

type mockTaxRepo struct{ mock.Mock }

func (m *mockTaxRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Tax, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tax), args.Error(1)
}

func (m *mockTaxRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Tax, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uuid.UUID]*catalog.Tax), args.Error(1)
}

func (m *mockTaxRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Tax, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Tax), args.Get(1).(int64), args.Error(2)
}

func (m *mockTaxRepo) Save(ctx context.Context, tax *catalog.Tax) error {
	return m.Called(ctx, tax).Error(0)
}

type mockTransactionRepo struct{ mock.Mock }

func (m *mockTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) FindAll(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *mockTransactionRepo) Save(ctx context.Context, transaction *ledger.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *mockTransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.TransactionStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindAll(ctx context.Context, filter ledger.PaymentFilter) ([]ledger.Payment, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *mockPaymentRepo) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]ledger.Payment, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).([]ledger.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindByDateRange(ctx context.Context, r shared.DateRange) ([]ledger.Payment, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]ledger.Payment), args.Error(1)
}

func (m *mockPaymentRepo) Save(ctx context.Context, payment *ledger.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

type mockMovementRepo struct{ mock.Mock }

func (m *mockMovementRepo) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Movement), args.Error(1)
}

func (m *mockMovementRepo) FindAll(ctx context.Context, filter inventory.MovementFilter) ([]inventory.Movement, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Movement), args.Get(1).(int64), args.Error(2)
}

func (m *mockMovementRepo) FindUntil(ctx context.Context, productID, unitID *uuid.UUID, until time.Time) ([]inventory.Movement, error) {
	args := m.Called(ctx, productID, unitID, until)
	return args.Get(0).([]inventory.Movement), args.Error(1)
}

func (m *mockMovementRepo) Save(ctx context.Context, movement *inventory.Movement) error {
	return m.Called(ctx, movement).Error(0)
}

type mockStockLevelRepo struct{ mock.Mock }

func (m *mockStockLevelRepo) Find(ctx context.Context, productID, unitID uuid.UUID) (*inventory.StockLevel, error) {
	args := m.Called(ctx, productID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLevel), args.Error(1)
}

func (m *mockStockLevelRepo) FindAll(ctx context.Context) ([]inventory.StockLevel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.StockLevel), args.Error(1)
}

func (m *mockStockLevelRepo) Apply(ctx context.Context, productID, unitID uuid.UUID, delta decimal.Decimal) error {
	return m.Called(ctx, productID, unitID, delta).Error(0)
}
