package partner

import (
	"context"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService manages trading counterparties
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomer adds a counterparty
func (s *CustomerService) CreateCustomer(ctx context.Context, name, phone, address, remark string) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(name, phone, address, remark)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer changes a counterparty. Posted transactions keep the name
// they were created with.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, name, phone, address, remark string) (*partner.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(name, phone, address, remark); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a counterparty
func (s *CustomerService) DeleteCustomer(ctx context.Context, id, deletedBy uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	customer.MarkDeleted(deletedBy)
	return s.customerRepo.Save(ctx, customer)
}

// GetCustomer loads one counterparty
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// ListCustomers returns a page of counterparties
func (s *CustomerService) ListCustomers(ctx context.Context, filter shared.Filter) (*shared.Paginated[partner.Customer], error) {
	customers, total, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shared.NewPaginated(customers, total, filter.Page, filter.Limit), nil
}
