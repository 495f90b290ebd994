package product

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item available for purchase.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
	Weight   decimal.Decimal
	Taxable  bool
}

// New constructs a Product, rejecting negative prices and weights.
func New(id, name, category string, price, weight decimal.Decimal, taxable bool) (Product, error) {
	if price.IsNegative() {
		return Product{}, errors.Errorf("product %s: negative price %s", id, price)
	}
	if weight.IsNegative() {
		return Product{}, errors.Errorf("product %s: negative weight %s", id, weight)
	}
	return Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Weight:   weight,
		Taxable:  taxable,
	}, nil
}
