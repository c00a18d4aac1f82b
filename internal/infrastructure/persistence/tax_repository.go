package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaxRepository implements catalog.TaxRepository using GORM
type GormTaxRepository struct {
	db *gorm.DB
}

// NewGormTaxRepository creates a GormTaxRepository
func NewGormTaxRepository(db *gorm.DB) *GormTaxRepository {
	return &GormTaxRepository{db: db}
}

// FindByID finds a tax by ID, including soft-deleted rows
func (r *GormTaxRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Tax, error) {
	var tax catalog.Tax
	if err := r.db.WithContext(ctx).First(&tax, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tax, nil
}

// FindByIDs finds live taxes by their IDs, keyed by ID
func (r *GormTaxRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Tax, error) {
	result := make(map[uuid.UUID]*catalog.Tax, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var taxes []catalog.Tax
	if err := excludeDeleted(r.db.WithContext(ctx)).Find(&taxes, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	for i := range taxes {
		result[taxes[i].ID] = &taxes[i]
	}
	return result, nil
}

// FindAll lists live taxes matching the filter
func (r *GormTaxRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Tax, int64, error) {
	query := excludeDeleted(r.db.WithContext(ctx).Model(&catalog.Tax{}))
	query = applySearch(query, filter.Search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var taxes []catalog.Tax
	query = applyOrder(query, filter, masterDataSortColumns, "created_at DESC")
	if err := applyPagination(query, filter).Find(&taxes).Error; err != nil {
		return nil, 0, err
	}
	return taxes, total, nil
}

// Save creates or updates a tax
func (r *GormTaxRepository) Save(ctx context.Context, tax *catalog.Tax) error {
	return r.db.WithContext(ctx).Save(tax).Error
}

var _ catalog.TaxRepository = (*GormTaxRepository)(nil)
