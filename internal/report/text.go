package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/pricing"
)

// Totals returns the grand total and total tax collected over all
// summaries. Both are sums of already currency-converted figures and are
// reported nominally in EUR.
func Totals(summaries []pricing.Summary) (grandTotal, taxCollected decimal.Decimal) {
	grandTotal = decimal.Zero
	taxCollected = decimal.Zero
	for _, s := range summaries {
		grandTotal = grandTotal.Add(s.Total)
		taxCollected = taxCollected.Add(s.Tax)
	}
	return grandTotal, taxCollected
}

// Text renders the plain-text report: one block per customer separated by
// a blank line, followed by the grand total lines. Money is shown with 2
// decimals, weight with 1, loyalty points floored to an integer.
func Text(summaries []pricing.Summary) string {
	var b strings.Builder
	for _, s := range summaries {
		writeCustomerBlock(&b, s)
		b.WriteByte('\n')
	}

	grandTotal, taxCollected := Totals(summaries)
	fmt.Fprintf(&b, "Grand Total: %s EUR\n", grandTotal.StringFixed(2))
	fmt.Fprintf(&b, "Total Tax Collected: %s EUR\n", taxCollected.StringFixed(2))
	return b.String()
}

func writeCustomerBlock(b *strings.Builder, s pricing.Summary) {
	c := s.Customer
	fmt.Fprintf(b, "Customer: %s (%s)\n", c.Name, c.ID)
	fmt.Fprintf(b, "Level: %s | Zone: %s | Currency: %s\n", c.Level, c.ShippingZone, c.Currency)
	fmt.Fprintf(b, "Subtotal: %s\n", s.Subtotal.StringFixed(2))
	fmt.Fprintf(b, "Discount: %s\n", s.TotalDiscount().StringFixed(2))
	fmt.Fprintf(b, "  - Volume discount: %s\n", s.VolumeDiscount.StringFixed(2))
	fmt.Fprintf(b, "  - Loyalty discount: %s\n", s.LoyaltyDiscount.StringFixed(2))
	if s.MorningBonus.IsPositive() {
		fmt.Fprintf(b, "  - Morning bonus: %s\n", s.MorningBonus.StringFixed(2))
	}
	fmt.Fprintf(b, "Tax: %s\n", s.Tax.StringFixed(2))
	fmt.Fprintf(b, "Shipping (%s, %skg): %s\n", c.ShippingZone, s.Weight.StringFixed(1), s.Shipping.StringFixed(2))
	if s.Handling.IsPositive() {
		fmt.Fprintf(b, "Handling (%d items): %s\n", s.ItemCount, s.Handling.StringFixed(2))
	}
	fmt.Fprintf(b, "Total: %s %s\n", s.Total.StringFixed(2), c.Currency)
	fmt.Fprintf(b, "Loyalty Points: %d\n", s.LoyaltyPoints.Floor().IntPart())
}
