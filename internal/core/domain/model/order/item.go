package order

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem")

// Item is a line of an order. It is a value object and never changes once built.
type Item struct { //nolint:recvcheck //using for validation
	quantity    int
	unitPrice   decimal.Decimal
	description string

	guard guard.ConstructorGuard
}

// NewItem validates a line item: quantity must be positive, the unit price
// non-negative and the description non-blank.
//
// Example:
//
//	pizza, err := order.NewItem(2, decimal.NewFromInt(10), "Pizza")
//	pizza.Subtotal() // 20
func NewItem(quantity int, unitPrice decimal.Decimal, description string) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setDescription(description),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Description() string {
	return i.description
}

// Subtotal is quantity * unit price.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// ComputeTotal sums the subtotals of items. An empty slice totals zero.
func ComputeTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}
