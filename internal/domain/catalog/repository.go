package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository provides access to product master data
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, int64, error)
	Save(ctx context.Context, product *Product) error
}

// UnitQuantityRepository provides access to unit-of-measure master data
type UnitQuantityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UnitQuantity, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*UnitQuantity, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]UnitQuantity, int64, error)
	Save(ctx context.Context, unit *UnitQuantity) error
}

// TaxRepository provides access to the tax catalog
type TaxRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tax, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Tax, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tax, int64, error)
	Save(ctx context.Context, tax *Tax) error
}
