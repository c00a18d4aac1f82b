package inventory

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionScope runs a function with the movement and stock level
// repositories bound to one database transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the inventory repositories scoped to the
// current database transaction
type TransactionalRepositories interface {
	Movements() inventory.MovementRepository
	StockLevels() inventory.StockLevelRepository
}

// NoOpTransactionScope passes the wired repositories through without a real
// database transaction. Used in tests with mocked repositories.
type NoOpTransactionScope struct {
	MovementRepo   inventory.MovementRepository
	StockLevelRepo inventory.StockLevelRepository
}

// Execute runs fn against the wired repositories directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Movements returns the wired movement repository
func (s *NoOpTransactionScope) Movements() inventory.MovementRepository { return s.MovementRepo }

// StockLevels returns the wired stock level repository
func (s *NoOpTransactionScope) StockLevels() inventory.StockLevelRepository { return s.StockLevelRepo }

// CreateMovementCommand records a manual stock adjustment
type CreateMovementCommand struct {
	ProductID      uuid.UUID
	UnitQuantityID uuid.UUID
	Type           string
	Quantity       decimal.Decimal
	MovementDate   time.Time
	Remark         string
	CreatedBy      uuid.UUID
}

// SeriesQuery selects the window and bucket size for the stock curve
type SeriesQuery struct {
	ProductID      *uuid.UUID
	UnitQuantityID *uuid.UUID
	Range          shared.DateRange
	Interval       shared.Interval
}

// InventoryService records manual stock adjustments and serves the stock
// aggregations. Transaction-driven movements are posted by the ledger
// service; both paths share the same append-only history and guard rows.
type InventoryService struct {
	movementRepo inventory.MovementRepository
	productRepo  catalog.ProductRepository
	unitRepo     catalog.UnitQuantityRepository
	scope        TransactionScope
}

// NewInventoryService creates an InventoryService
func NewInventoryService(
	movementRepo inventory.MovementRepository,
	productRepo catalog.ProductRepository,
	unitRepo catalog.UnitQuantityRepository,
	scope TransactionScope,
) *InventoryService {
	return &InventoryService{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		unitRepo:     unitRepo,
		scope:        scope,
	}
}

// CreateMovement appends a manual adjustment to the history and updates the
// stock guard row atomically. An OUT movement larger than the current stock
// fails without writing anything.
func (s *InventoryService) CreateMovement(ctx context.Context, cmd CreateMovementCommand) (*inventory.Movement, error) {
	typ, err := inventory.ParseMovementType(cmd.Type)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if product.IsDeleted() {
		return nil, shared.NewValidationError("product has been deleted")
	}
	unit, err := s.unitRepo.FindByID(ctx, cmd.UnitQuantityID)
	if err != nil {
		return nil, err
	}
	if unit.IsDeleted() {
		return nil, shared.NewValidationError("unit has been deleted")
	}

	movement, err := inventory.NewMovement(
		product.ID, product.Name, unit.ID, unit.Name,
		typ, cmd.Quantity, cmd.MovementDate, cmd.Remark, cmd.CreatedBy,
	)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.StockLevels().Apply(ctx, movement.ProductID, movement.UnitQuantityID, movement.SignedQuantity()); err != nil {
			return err
		}
		return repos.Movements().Save(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// ListMovements returns a page of history entries
func (s *InventoryService) ListMovements(ctx context.Context, filter inventory.MovementFilter) (*shared.Paginated[inventory.Movement], error) {
	movements, total, err := s.movementRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shared.NewPaginated(movements, total, filter.Page, filter.Limit), nil
}

// Summary folds the full history into current stock per (product, unit) pair
func (s *InventoryService) Summary(ctx context.Context) ([]inventory.StockSummary, error) {
	movements, err := s.movementRepo.FindUntil(ctx, nil, nil, time.Now())
	if err != nil {
		return nil, err
	}
	return inventory.Summarize(movements), nil
}

// Series produces the cumulative stock curve for the queried window
func (s *InventoryService) Series(ctx context.Context, q SeriesQuery) ([]inventory.SeriesPoint, error) {
	movements, err := s.movementRepo.FindUntil(ctx, q.ProductID, q.UnitQuantityID, q.Range.End)
	if err != nil {
		return nil, err
	}
	return inventory.Series(movements, q.Range, q.Interval), nil
}
