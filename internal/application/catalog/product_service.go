package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService manages the product catalog
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct adds a catalog entry
func (s *ProductService) CreateProduct(ctx context.Context, name, remark string) (*catalog.Product, error) {
	product, err := catalog.NewProduct(name, remark)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct changes a catalog entry. Historical transaction lines keep
// the name they were posted with.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, name, remark string) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Update(name, remark); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a catalog entry
func (s *ProductService) DeleteProduct(ctx context.Context, id, deletedBy uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.MarkDeleted(deletedBy)
	return s.productRepo.Save(ctx, product)
}

// GetProduct loads one catalog entry
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ListProducts returns a page of catalog entries
func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	products, total, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shared.NewPaginated(products, total, filter.Page, filter.Limit), nil
}
