package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnitQuantityRepository implements catalog.UnitQuantityRepository using GORM
type GormUnitQuantityRepository struct {
	db *gorm.DB
}

// NewGormUnitQuantityRepository creates a GormUnitQuantityRepository
func NewGormUnitQuantityRepository(db *gorm.DB) *GormUnitQuantityRepository {
	return &GormUnitQuantityRepository{db: db}
}

// FindByID finds a unit by ID, including soft-deleted rows
func (r *GormUnitQuantityRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.UnitQuantity, error) {
	var unit catalog.UnitQuantity
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// FindByIDs finds live units by their IDs, keyed by ID
func (r *GormUnitQuantityRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.UnitQuantity, error) {
	result := make(map[uuid.UUID]*catalog.UnitQuantity, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var units []catalog.UnitQuantity
	if err := excludeDeleted(r.db.WithContext(ctx)).Find(&units, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	for i := range units {
		result[units[i].ID] = &units[i]
	}
	return result, nil
}

// FindAll lists live units matching the filter
func (r *GormUnitQuantityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.UnitQuantity, int64, error) {
	query := excludeDeleted(r.db.WithContext(ctx).Model(&catalog.UnitQuantity{}))
	query = applySearch(query, filter.Search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var units []catalog.UnitQuantity
	query = applyOrder(query, filter, masterDataSortColumns, "created_at DESC")
	if err := applyPagination(query, filter).Find(&units).Error; err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

// Save creates or updates a unit
func (r *GormUnitQuantityRepository) Save(ctx context.Context, unit *catalog.UnitQuantity) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

var _ catalog.UnitQuantityRepository = (*GormUnitQuantityRepository)(nil)
