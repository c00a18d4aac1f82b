package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by ID, including soft-deleted rows
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByIDs finds live customers by their IDs, keyed by ID
func (r *GormCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*partner.Customer, error) {
	result := make(map[uuid.UUID]*partner.Customer, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var customers []partner.Customer
	if err := excludeDeleted(r.db.WithContext(ctx)).Find(&customers, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	for i := range customers {
		result[customers[i].ID] = &customers[i]
	}
	return result, nil
}

// FindAll lists live customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	query := excludeDeleted(r.db.WithContext(ctx).Model(&partner.Customer{}))
	query = applySearch(query, filter.Search)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []partner.Customer
	query = applyOrder(query, filter, masterDataSortColumns, "created_at DESC")
	if err := applyPagination(query, filter).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
