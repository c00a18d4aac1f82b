package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var movementSortColumns = map[string]bool{
	"movement_date": true,
	"created_at":    true,
	"product_name":  true,
}

// GormMovementRepository implements inventory.MovementRepository using GORM.
// The history is append-only; there is no update or delete path.
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// FindByID finds a movement by ID
func (r *GormMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Movement, error) {
	var movement inventory.Movement
	if err := r.db.WithContext(ctx).First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindAll lists movements matching the filter
func (r *GormMovementRepository) FindAll(ctx context.Context, filter inventory.MovementFilter) ([]inventory.Movement, int64, error) {
	query := r.db.WithContext(ctx).Model(&inventory.Movement{})
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.UnitQuantityID != nil {
		query = query.Where("unit_quantity_id = ?", *filter.UnitQuantityID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.DateRange != nil {
		query = query.Where("movement_date BETWEEN ? AND ?", filter.DateRange.Start, filter.DateRange.End)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movements []inventory.Movement
	query = applyOrder(query, filter.Filter, movementSortColumns, "movement_date DESC")
	if err := applyPagination(query, filter.Filter).Find(&movements).Error; err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// FindUntil returns the history up to the given instant, ordered by movement
// date, optionally narrowed to one product or unit
func (r *GormMovementRepository) FindUntil(ctx context.Context, productID, unitID *uuid.UUID, until time.Time) ([]inventory.Movement, error) {
	query := r.db.WithContext(ctx).Where("movement_date <= ?", until)
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if unitID != nil {
		query = query.Where("unit_quantity_id = ?", *unitID)
	}

	var movements []inventory.Movement
	if err := query.Order("movement_date ASC").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Save appends a movement to the history
func (r *GormMovementRepository) Save(ctx context.Context, movement *inventory.Movement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

var _ inventory.MovementRepository = (*GormMovementRepository)(nil)
