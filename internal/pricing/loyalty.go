package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/order"
)

// LoyaltyCalculator converts order value into loyalty points.
type LoyaltyCalculator struct {
	cfg *Config
}

// NewLoyaltyCalculator returns a LoyaltyCalculator using the given tariff.
func NewLoyaltyCalculator(cfg *Config) LoyaltyCalculator {
	return LoyaltyCalculator{cfg: cfg}
}

// Points returns the loyalty points earned across the given lines:
// the raw pre-discount order value times the points rate.
func (c LoyaltyCalculator) Points(lines []order.Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total.Mul(c.cfg.LoyaltyPointsRate)
}
