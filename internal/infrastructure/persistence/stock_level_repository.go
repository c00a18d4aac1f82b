package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockLevelRepository implements inventory.StockLevelRepository using
// GORM. The conditional update in Apply is the only place stock levels
// change, so the non-negativity invariant is enforced by the database row
// itself regardless of how many writers race.
type GormStockLevelRepository struct {
	db *gorm.DB
}

// NewGormStockLevelRepository creates a GormStockLevelRepository
func NewGormStockLevelRepository(db *gorm.DB) *GormStockLevelRepository {
	return &GormStockLevelRepository{db: db}
}

// Find returns the guard row for one (product, unit) pair
func (r *GormStockLevelRepository) Find(ctx context.Context, productID, unitID uuid.UUID) (*inventory.StockLevel, error) {
	var level inventory.StockLevel
	err := r.db.WithContext(ctx).
		First(&level, "product_id = ? AND unit_quantity_id = ?", productID, unitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &level, nil
}

// FindAll returns every guard row
func (r *GormStockLevelRepository) FindAll(ctx context.Context) ([]inventory.StockLevel, error) {
	var levels []inventory.StockLevel
	if err := r.db.WithContext(ctx).Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// Apply adjusts the guard row by delta. The WHERE clause rejects any update
// that would drive the level negative; zero affected rows means the guard
// fired or the row does not exist yet. A missing row is created for
// non-negative deltas with an insert that tolerates losing a first-movement
// race, after which the update is retried once against the winner's row.
func (r *GormStockLevelRepository) Apply(ctx context.Context, productID, unitID uuid.UUID, delta decimal.Decimal) error {
	applied, err := r.tryApply(ctx, productID, unitID, delta)
	if err != nil || applied {
		return err
	}
	// An outbound delta that touched no row is insufficient stock whether
	// the guard fired or the pair has never moved.
	if delta.IsNegative() {
		return shared.ErrInsufficientStock
	}

	insert := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&inventory.StockLevel{
			ProductID:      productID,
			UnitQuantityID: unitID,
			Quantity:       delta,
			UpdatedAt:      time.Now(),
		})
	if insert.Error != nil {
		return insert.Error
	}
	if insert.RowsAffected > 0 {
		return nil
	}

	// Lost the first-movement race: another writer created the row between
	// our update and insert. Their row is visible now, so apply on top of it.
	applied, err = r.tryApply(ctx, productID, unitID, delta)
	if err != nil {
		return err
	}
	if !applied {
		return shared.ErrInsufficientStock
	}
	return nil
}

func (r *GormStockLevelRepository) tryApply(ctx context.Context, productID, unitID uuid.UUID, delta decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		"UPDATE stock_levels SET quantity = quantity + ?, updated_at = ? "+
			"WHERE product_id = ? AND unit_quantity_id = ? AND quantity + ? >= 0",
		delta, time.Now(), productID, unitID, delta,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

var _ inventory.StockLevelRepository = (*GormStockLevelRepository)(nil)
