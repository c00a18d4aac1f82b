package ledger

import (
	"fmt"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemSpec is one priced line as requested by the caller, with master data
// names already resolved.
type ItemSpec struct {
	ProductID      uuid.UUID
	ProductName    string
	UnitQuantityID uuid.UUID
	UnitName       string
	Quantity       decimal.Decimal
	PricePerUnit   valueobject.Money
	DiscountType   *DiscountType
	DiscountValue  decimal.Decimal
	Remark         string
}

// DiscountSpec is a transaction-scoped discount request
type DiscountSpec struct {
	Type       DiscountType
	Percentage decimal.Decimal
	Amount     valueobject.Money
	Remark     string
}

// TaxSpec is a tax application request with the catalog rate resolved
type TaxSpec struct {
	TaxID      uuid.UUID
	Name       string
	Percentage decimal.Decimal
}

// PricingResult carries everything needed to persist a priced transaction
type PricingResult struct {
	Items      []TransactionItem
	Discounts  []Discount
	Taxes      []TransactionTax
	Subtotal   valueobject.Money
	TotalTax   valueobject.Money
	GrandTotal valueobject.Money
}

var hundred = decimal.NewFromInt(100)

// Price computes all monetary figures for a transaction. Item totals are kept
// exact; discount and tax amounts are frozen at display precision. Percentage
// discounts at transaction scope are each computed against the same base, the
// sum of item totals net of per-item discounts, so their order is irrelevant.
// Nothing is written here; all validation happens before persistence.
func Price(items []ItemSpec, discounts []DiscountSpec, taxes []TaxSpec) (*PricingResult, error) {
	if len(items) == 0 {
		return nil, shared.NewValidationError("transaction requires at least one item")
	}

	result := &PricingResult{
		Items:     make([]TransactionItem, 0, len(items)),
		Discounts: make([]Discount, 0, len(discounts)),
		Taxes:     make([]TransactionTax, 0, len(taxes)),
	}

	base := valueobject.Zero()
	for i, spec := range items {
		item, err := priceItem(i, spec)
		if err != nil {
			return nil, err
		}
		base = base.Add(item.Total)
		result.Items = append(result.Items, *item)
	}

	totalDiscount := valueobject.Zero()
	for i, spec := range discounts {
		d, err := priceDiscount(i, spec, base)
		if err != nil {
			return nil, err
		}
		totalDiscount = totalDiscount.Add(d.Amount)
		result.Discounts = append(result.Discounts, *d)
	}
	if totalDiscount.GreaterThan(base) {
		return nil, shared.NewValidationError("transaction discounts exceed the item subtotal")
	}

	result.Subtotal = base.Subtract(totalDiscount).Round()

	result.TotalTax = valueobject.Zero()
	for i, spec := range taxes {
		if spec.Percentage.IsNegative() || spec.Percentage.GreaterThan(hundred) {
			return nil, shared.NewValidationError(fmt.Sprintf("tax %d: percentage must be between 0 and 100", i+1))
		}
		amount := result.Subtotal.CalculatePercentage(spec.Percentage).Round()
		result.TotalTax = result.TotalTax.Add(amount)
		result.Taxes = append(result.Taxes, TransactionTax{
			Entity:     shared.NewEntity(),
			TaxID:      spec.TaxID,
			Name:       spec.Name,
			Percentage: spec.Percentage,
			Amount:     amount,
		})
	}

	result.GrandTotal = result.Subtotal.Add(result.TotalTax)
	return result, nil
}

func priceItem(index int, spec ItemSpec) (*TransactionItem, error) {
	if !spec.Quantity.IsPositive() {
		return nil, shared.NewValidationError(fmt.Sprintf("item %d: quantity must be positive", index+1))
	}
	if spec.PricePerUnit.IsNegative() {
		return nil, shared.NewValidationError(fmt.Sprintf("item %d: price per unit must not be negative", index+1))
	}

	gross := spec.PricePerUnit.Multiply(spec.Quantity)
	total := gross

	var discountValue decimal.NullDecimal
	if spec.DiscountType != nil {
		discountValue = decimal.NewNullDecimal(spec.DiscountValue)
		switch *spec.DiscountType {
		case DiscountPercentage:
			if spec.DiscountValue.IsNegative() || spec.DiscountValue.GreaterThan(hundred) {
				return nil, shared.NewValidationError(fmt.Sprintf("item %d: discount percentage must be between 0 and 100", index+1))
			}
			total = gross.Subtract(gross.CalculatePercentage(spec.DiscountValue))
		case DiscountFixed:
			fixed := valueobject.NewMoney(spec.DiscountValue)
			if fixed.IsNegative() {
				return nil, shared.NewValidationError(fmt.Sprintf("item %d: discount amount must not be negative", index+1))
			}
			if fixed.GreaterThan(gross) {
				return nil, shared.NewValidationError(fmt.Sprintf("item %d: discount exceeds the item total", index+1))
			}
			total = gross.Subtract(fixed)
		default:
			return nil, shared.NewValidationError(fmt.Sprintf("item %d: discount type must be PERCENTAGE or FIXED", index+1))
		}
	}

	return &TransactionItem{
		Entity:         shared.NewEntity(),
		ProductID:      spec.ProductID,
		ProductName:    spec.ProductName,
		UnitQuantityID: spec.UnitQuantityID,
		UnitName:       spec.UnitName,
		Quantity:       spec.Quantity,
		PricePerUnit:   spec.PricePerUnit,
		DiscountType:   spec.DiscountType,
		DiscountValue:  discountValue,
		Total:          total,
		Remark:         spec.Remark,
	}, nil
}

func priceDiscount(index int, spec DiscountSpec, base valueobject.Money) (*Discount, error) {
	d := &Discount{
		Entity: shared.NewEntity(),
		Type:   spec.Type,
		Remark: spec.Remark,
	}
	switch spec.Type {
	case DiscountPercentage:
		if spec.Percentage.IsNegative() || spec.Percentage.GreaterThan(hundred) {
			return nil, shared.NewValidationError(fmt.Sprintf("discount %d: percentage must be between 0 and 100", index+1))
		}
		d.Percentage = decimal.NewNullDecimal(spec.Percentage)
		d.Amount = base.CalculatePercentage(spec.Percentage).Round()
	case DiscountFixed:
		if spec.Amount.IsNegative() {
			return nil, shared.NewValidationError(fmt.Sprintf("discount %d: amount must not be negative", index+1))
		}
		d.Amount = spec.Amount.Round()
	default:
		return nil, shared.NewValidationError(fmt.Sprintf("discount %d: type must be PERCENTAGE or FIXED", index+1))
	}
	return d, nil
}
