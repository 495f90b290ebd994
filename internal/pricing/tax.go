package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/order"
	"github.com/orderlab/pricing-report/internal/domain/product"
)

// TaxCalculator computes tax over a customer's order lines. Orders made up
// entirely of taxable products are taxed uniformly on the post-discount
// amount; a single non-taxable product switches the whole order to
// per-line taxation on pre-discount catalog prices. The two bases differ
// on purpose and must not be reconciled.
type TaxCalculator struct {
	cfg *Config
}

// NewTaxCalculator returns a TaxCalculator using the given tariff.
func NewTaxCalculator(cfg *Config) TaxCalculator {
	return TaxCalculator{cfg: cfg}
}

// Calculate returns the tax for the given lines, rounded to 2 decimal
// places. taxableAmount is the discounted subtotal and is only used on the
// uniform path.
func (c TaxCalculator) Calculate(lines []order.Line, products map[string]product.Product, taxableAmount decimal.Decimal) decimal.Decimal {
	if c.allTaxable(lines, products) {
		return taxableAmount.Mul(c.cfg.TaxRate).Round(2)
	}
	return c.perLine(lines, products)
}

// allTaxable reports whether every line's resolved product is taxable.
// Lines whose product is absent from the catalog count as taxable.
func (c TaxCalculator) allTaxable(lines []order.Line, products map[string]product.Product) bool {
	for _, l := range lines {
		if p, ok := products[l.ProductID]; ok && !p.Taxable {
			return false
		}
	}
	return true
}

// perLine sums qty * catalog price * rate over taxable lines only.
// Lines with no catalog product contribute nothing on this path.
func (c TaxCalculator) perLine(lines []order.Line, products map[string]product.Product) decimal.Decimal {
	tax := decimal.Zero
	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok || !p.Taxable {
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
		tax = tax.Add(lineTotal.Mul(c.cfg.TaxRate))
	}
	return tax.Round(2)
}
