package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/customer"
)

// DiscountCalculator computes volume and loyalty discounts, the weekend
// bonus, and the global discount cap.
type DiscountCalculator struct {
	cfg *Config
}

// NewDiscountCalculator returns a DiscountCalculator using the given tariff.
func NewDiscountCalculator(cfg *Config) DiscountCalculator {
	return DiscountCalculator{cfg: cfg}
}

// VolumeDiscount returns the volume discount for the given subtotal.
// Tiers overwrite: the last satisfied threshold wins, it is never a sum
// of brackets. The top tier applies only to PREMIUM customers.
func (c DiscountCalculator) VolumeDiscount(subtotal decimal.Decimal, level customer.Level) decimal.Decimal {
	discount := decimal.Zero
	for _, tier := range c.cfg.VolumeTiers {
		if !subtotal.GreaterThan(tier.Threshold) {
			continue
		}
		if tier.PremiumOnly && level != customer.LevelPremium {
			continue
		}
		discount = subtotal.Mul(tier.Rate)
	}
	return discount
}

// ApplyWeekendBonus multiplies the discount by the weekend multiplier when
// orderDate falls on a Saturday or Sunday. Empty or unparsable dates leave
// the discount unchanged.
func (c DiscountCalculator) ApplyWeekendBonus(discount decimal.Decimal, orderDate string) decimal.Decimal {
	if orderDate == "" {
		return discount
	}
	t, err := time.Parse("2006-01-02", orderDate)
	if err != nil {
		return discount
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return discount.Mul(c.cfg.WeekendBonusMultiplier)
	}
	return discount
}

// LoyaltyDiscount returns the loyalty discount for the given points
// balance. Same overwrite semantics as VolumeDiscount; each tier's value
// is capped at the tier's ceiling.
func (c DiscountCalculator) LoyaltyDiscount(points decimal.Decimal) decimal.Decimal {
	discount := decimal.Zero
	for _, tier := range c.cfg.LoyaltyTiers {
		if !points.GreaterThan(tier.Threshold) {
			continue
		}
		discount = decimal.Min(points.Mul(tier.Rate), tier.Cap)
	}
	return discount
}

// ApplyMaxDiscountCap rescales both discounts proportionally when their sum
// exceeds the global cap, preserving their ratio. Below the cap both pass
// through unchanged.
func (c DiscountCalculator) ApplyMaxDiscountCap(volume, loyalty decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	total := volume.Add(loyalty)
	if !total.GreaterThan(c.cfg.MaxDiscount) {
		return volume, loyalty
	}
	ratio := c.cfg.MaxDiscount.Div(total)
	return volume.Mul(ratio), loyalty.Mul(ratio)
}
