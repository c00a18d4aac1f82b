package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/inventory"
	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemCommand is one requested transaction line
type ItemCommand struct {
	ProductID      uuid.UUID
	UnitQuantityID uuid.UUID
	Quantity       decimal.Decimal
	PricePerUnit   valueobject.Money
	DiscountType   *string
	DiscountValue  decimal.Decimal
	Remark         string
}

// DiscountCommand is a requested transaction-scoped discount
type DiscountCommand struct {
	Type       string
	Percentage decimal.Decimal
	Amount     valueobject.Money
	Remark     string
}

// CreateTransactionCommand carries everything needed to post a transaction
type CreateTransactionCommand struct {
	Type            string
	CustomerID      *uuid.UUID
	TransactionDate time.Time
	Remark          string
	Items           []ItemCommand
	Discounts       []DiscountCommand
	TaxIDs          []uuid.UUID
	FileID          *uuid.UUID
	CreatedBy       uuid.UUID
}

// TransactionService posts and reads ledger transactions. Posting resolves
// master data, prices the document, and writes the transaction together with
// its inventory movements in one database transaction.
type TransactionService struct {
	customerRepo    partner.CustomerRepository
	productRepo     catalog.ProductRepository
	unitRepo        catalog.UnitQuantityRepository
	taxRepo         catalog.TaxRepository
	transactionRepo ledger.TransactionRepository
	scope           TransactionScope
}

// NewTransactionService creates a TransactionService
func NewTransactionService(
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	unitRepo catalog.UnitQuantityRepository,
	taxRepo catalog.TaxRepository,
	transactionRepo ledger.TransactionRepository,
	scope TransactionScope,
) *TransactionService {
	return &TransactionService{
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		unitRepo:        unitRepo,
		taxRepo:         taxRepo,
		transactionRepo: transactionRepo,
		scope:           scope,
	}
}

// CreateTransaction validates, prices and posts a transaction. All validation
// happens before the database transaction opens; once writes start, the only
// remaining failure is the stock guard, which rolls everything back.
func (s *TransactionService) CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (*ledger.Transaction, error) {
	typ, err := ledger.ParseTransactionType(cmd.Type)
	if err != nil {
		return nil, err
	}
	if len(cmd.Items) == 0 {
		return nil, shared.NewValidationError("transaction requires at least one item")
	}
	if cmd.TransactionDate.IsZero() {
		return nil, shared.NewValidationError("transaction date is required")
	}

	// Counterparty is optional: walk-in sales and sundry purchases post
	// without one. When present, the name is frozen onto the document.
	var customerName string
	if cmd.CustomerID != nil {
		customer, err := s.customerRepo.FindByID(ctx, *cmd.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer.IsDeleted() {
			return nil, shared.NewValidationError("customer has been deleted")
		}
		customerName = customer.Name
	}

	itemSpecs, err := s.resolveItems(ctx, cmd.Items)
	if err != nil {
		return nil, err
	}
	taxSpecs, err := s.resolveTaxes(ctx, cmd.TaxIDs)
	if err != nil {
		return nil, err
	}

	discountSpecs := make([]ledger.DiscountSpec, 0, len(cmd.Discounts))
	for _, d := range cmd.Discounts {
		dtyp, err := ledger.ParseDiscountType(d.Type)
		if err != nil {
			return nil, err
		}
		discountSpecs = append(discountSpecs, ledger.DiscountSpec{
			Type:       dtyp,
			Percentage: d.Percentage,
			Amount:     d.Amount,
			Remark:     d.Remark,
		})
	}

	priced, err := ledger.Price(itemSpecs, discountSpecs, taxSpecs)
	if err != nil {
		return nil, err
	}

	tx := &ledger.Transaction{
		Entity:          shared.NewEntity(),
		Type:            typ,
		Status:          ledger.StatusUnpaid,
		CustomerID:      cmd.CustomerID,
		CustomerName:    customerName,
		TransactionDate: cmd.TransactionDate,
		Subtotal:        priced.Subtotal,
		TotalTax:        priced.TotalTax,
		GrandTotal:      priced.GrandTotal,
		Remark:          cmd.Remark,
		FileID:          cmd.FileID,
		CreatedBy:       cmd.CreatedBy,
		Items:           priced.Items,
		Discounts:       priced.Discounts,
		Taxes:           priced.Taxes,
	}
	for i := range tx.Items {
		tx.Items[i].TransactionID = tx.ID
	}
	for i := range tx.Discounts {
		tx.Discounts[i].TransactionID = tx.ID
	}
	for i := range tx.Taxes {
		tx.Taxes[i].TransactionID = tx.ID
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Transactions().Save(ctx, tx); err != nil {
			return err
		}
		return s.postMovements(ctx, repos, tx, cmd.CreatedBy)
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// postMovements appends one inventory movement per item and adjusts the stock
// guard rows. SELL moves stock out, BUY moves it in.
func (s *TransactionService) postMovements(ctx context.Context, repos TransactionalRepositories, tx *ledger.Transaction, createdBy uuid.UUID) error {
	movementType := inventory.MovementIn
	if tx.Type == ledger.TransactionSell {
		movementType = inventory.MovementOut
	}

	for _, item := range tx.Items {
		movement, err := inventory.NewMovement(
			item.ProductID, item.ProductName,
			item.UnitQuantityID, item.UnitName,
			movementType, item.Quantity, tx.TransactionDate,
			fmt.Sprintf("%s %s", tx.Type, tx.ID), createdBy,
		)
		if err != nil {
			return err
		}
		movement.TransactionID = &tx.ID

		if err := repos.StockLevels().Apply(ctx, item.ProductID, item.UnitQuantityID, movement.SignedQuantity()); err != nil {
			return err
		}
		if err := repos.Movements().Save(ctx, movement); err != nil {
			return err
		}
	}
	return nil
}

func (s *TransactionService) resolveItems(ctx context.Context, items []ItemCommand) ([]ledger.ItemSpec, error) {
	productIDs := make([]uuid.UUID, 0, len(items))
	unitIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
		unitIDs = append(unitIDs, item.UnitQuantityID)
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	units, err := s.unitRepo.FindByIDs(ctx, unitIDs)
	if err != nil {
		return nil, err
	}

	specs := make([]ledger.ItemSpec, 0, len(items))
	for i, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, shared.NewNotFoundError(fmt.Sprintf("item %d: product not found", i+1))
		}
		if product.IsDeleted() {
			return nil, shared.NewValidationError(fmt.Sprintf("item %d: product has been deleted", i+1))
		}
		unit, ok := units[item.UnitQuantityID]
		if !ok {
			return nil, shared.NewNotFoundError(fmt.Sprintf("item %d: unit not found", i+1))
		}
		if unit.IsDeleted() {
			return nil, shared.NewValidationError(fmt.Sprintf("item %d: unit has been deleted", i+1))
		}

		spec := ledger.ItemSpec{
			ProductID:      product.ID,
			ProductName:    product.Name,
			UnitQuantityID: unit.ID,
			UnitName:       unit.Name,
			Quantity:       item.Quantity,
			PricePerUnit:   item.PricePerUnit,
			DiscountValue:  item.DiscountValue,
			Remark:         item.Remark,
		}
		if item.DiscountType != nil {
			dtyp, err := ledger.ParseDiscountType(*item.DiscountType)
			if err != nil {
				return nil, err
			}
			spec.DiscountType = &dtyp
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (s *TransactionService) resolveTaxes(ctx context.Context, taxIDs []uuid.UUID) ([]ledger.TaxSpec, error) {
	if len(taxIDs) == 0 {
		return nil, nil
	}
	taxes, err := s.taxRepo.FindByIDs(ctx, taxIDs)
	if err != nil {
		return nil, err
	}
	specs := make([]ledger.TaxSpec, 0, len(taxIDs))
	for i, id := range taxIDs {
		tax, ok := taxes[id]
		if !ok {
			return nil, shared.NewNotFoundError(fmt.Sprintf("tax %d: not found", i+1))
		}
		if tax.IsDeleted() {
			return nil, shared.NewValidationError(fmt.Sprintf("tax %d: has been deleted", i+1))
		}
		specs = append(specs, ledger.TaxSpec{TaxID: tax.ID, Name: tax.Name, Percentage: tax.Percentage})
	}
	return specs, nil
}

// GetTransaction loads a transaction with its lines and payments, deriving
// the settlement status from the loaded payments.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	tx, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx.RecalculateStatus()
	return tx, nil
}

// ListTransactions returns a page of transactions
func (s *TransactionService) ListTransactions(ctx context.Context, filter ledger.TransactionFilter) (*shared.Paginated[ledger.Transaction], error) {
	transactions, total, err := s.transactionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return shared.NewPaginated(transactions, total, filter.Page, filter.Limit), nil
}
