package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UnitQuantityService manages units of measure
type UnitQuantityService struct {
	unitRepo catalog.UnitQuantityRepository
}

// NewUnitQuantityService creates a UnitQuantityService
func NewUnitQuantityService(unitRepo catalog.UnitQuantityRepository) *UnitQuantityService {
	return &UnitQuantityService{unitRepo: unitRepo}
}

// CreateUnitQuantity adds a unit of measure
func (s *UnitQuantityService) CreateUnitQuantity(ctx context.Context, name, remark string) (*catalog.UnitQuantity, error) {
	unit, err := catalog.NewUnitQuantity(name, remark)
	if err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// UpdateUnitQuantity changes a unit of measure
func (s *UnitQuantityService) UpdateUnitQuantity(ctx context.Context, id uuid.UUID, name, remark string) (*catalog.UnitQuantity, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := unit.Update(name, remark); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// DeleteUnitQuantity soft-deletes a unit of measure
func (s *UnitQuantityService) DeleteUnitQuantity(ctx context.Context, id, deletedBy uuid.UUID) error {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	unit.MarkDeleted(deletedBy)
	return s.unitRepo.Save(ctx, unit)
}

// GetUnitQuantity loads one unit of measure
func (s *UnitQuantityService) GetUnitQuantity(ctx context.Context, id uuid.UUID) (*catalog.UnitQuantity, error) {
	return s.unitRepo.FindByID(ctx, id)
}

// ListUnitQuantities returns a page of units
func (s *UnitQuantityService) ListUnitQuantities(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.UnitQuantity], error) {
	units, total, err := s.unitRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shared.NewPaginated(units, total, filter.Page, filter.Limit), nil
}
