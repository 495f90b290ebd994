package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/customer"
)

// Summary is the fully resolved monetary breakdown for one customer's
// order lines. Total is in the customer's currency; Tax is reported
// currency-converted as well, while the discount components stay nominal.
type Summary struct {
	Customer        customer.Customer
	Subtotal        decimal.Decimal
	VolumeDiscount  decimal.Decimal
	LoyaltyDiscount decimal.Decimal
	MorningBonus    decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Handling        decimal.Decimal
	Total           decimal.Decimal
	LoyaltyPoints   decimal.Decimal
	Weight          decimal.Decimal
	ItemCount       int
}

// TotalDiscount returns the combined volume and loyalty discount.
func (s Summary) TotalDiscount() decimal.Decimal {
	return s.VolumeDiscount.Add(s.LoyaltyDiscount)
}

// TaxableAmount returns the subtotal net of all discounts.
func (s Summary) TaxableAmount() decimal.Decimal {
	return s.Subtotal.Sub(s.TotalDiscount())
}
