package inventory

import (
	"context"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementFilter narrows movement listings
type MovementFilter struct {
	shared.Filter
	ProductID      *uuid.UUID
	UnitQuantityID *uuid.UUID
	Type           *MovementType
	DateRange      *shared.DateRange
}

// MovementRepository persists the append-only movement history
type MovementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Movement, error)
	FindAll(ctx context.Context, filter MovementFilter) ([]Movement, int64, error)
	// FindUntil returns the full history up to the given instant, optionally
	// narrowed to one product or unit, ordered by movement date. It feeds the
	// summary and series aggregations.
	FindUntil(ctx context.Context, productID, unitID *uuid.UUID, until time.Time) ([]Movement, error)
	Save(ctx context.Context, movement *Movement) error
}

// StockLevelRepository maintains the materialized stock guard rows.
// Apply adjusts the level by delta inside the caller's database transaction
// and returns ErrInsufficientStock when the adjustment would drive the level
// negative, leaving the row untouched.
type StockLevelRepository interface {
	Find(ctx context.Context, productID, unitID uuid.UUID) (*StockLevel, error)
	FindAll(ctx context.Context) ([]StockLevel, error)
	Apply(ctx context.Context, productID, unitID uuid.UUID, delta decimal.Decimal) error
}
