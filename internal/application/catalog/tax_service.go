package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxService manages the tax catalog. Rates on posted transactions are
// frozen, so edits and deletions here never rewrite history.
type TaxService struct {
	taxRepo catalog.TaxRepository
}

// NewTaxService creates a TaxService
func NewTaxService(taxRepo catalog.TaxRepository) *TaxService {
	return &TaxService{taxRepo: taxRepo}
}

// CreateTax adds a tax definition
func (s *TaxService) CreateTax(ctx context.Context, name string, percentage decimal.Decimal, remark string) (*catalog.Tax, error) {
	tax, err := catalog.NewTax(name, percentage, remark)
	if err != nil {
		return nil, err
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

// UpdateTax changes a tax definition
func (s *TaxService) UpdateTax(ctx context.Context, id uuid.UUID, name string, percentage decimal.Decimal, remark string) (*catalog.Tax, error) {
	tax, err := s.taxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tax.Update(name, percentage, remark); err != nil {
		return nil, err
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

// DeleteTax soft-deletes a tax definition
func (s *TaxService) DeleteTax(ctx context.Context, id, deletedBy uuid.UUID) error {
	tax, err := s.taxRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	tax.MarkDeleted(deletedBy)
	return s.taxRepo.Save(ctx, tax)
}

// GetTax loads one tax definition
func (s *TaxService) GetTax(ctx context.Context, id uuid.UUID) (*catalog.Tax, error) {
	return s.taxRepo.FindByID(ctx, id)
}

// ListTaxes returns a page of tax definitions
func (s *TaxService) ListTaxes(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Tax], error) {
	taxes, total, err := s.taxRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shared.NewPaginated(taxes, total, filter.Page, filter.Limit), nil
}
