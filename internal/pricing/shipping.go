package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/shipping"
)

// ShippingCalculator computes shipping and handling fees.
type ShippingCalculator struct {
	cfg *Config
}

// NewShippingCalculator returns a ShippingCalculator using the given tariff.
func NewShippingCalculator(cfg *Config) ShippingCalculator {
	return ShippingCalculator{cfg: cfg}
}

// Calculate returns the shipping fee for one customer's order. Orders at or
// above the free-shipping threshold ship free, aside from a heavy-parcel
// surcharge. zone may be nil for unknown zones; zoneCode is still consulted
// for the remote-zone markup.
func (c ShippingCalculator) Calculate(subtotal, weight decimal.Decimal, zone *shipping.Zone, zoneCode string) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(c.cfg.FreeShippingThreshold) {
		return c.heavyParcelSurcharge(weight)
	}
	return c.standard(weight, zone, zoneCode)
}

// heavyParcelSurcharge charges per kg above the very-heavy threshold on
// otherwise free shipments.
func (c ShippingCalculator) heavyParcelSurcharge(weight decimal.Decimal) decimal.Decimal {
	if weight.GreaterThan(c.cfg.VeryHeavyWeightKg) {
		return weight.Sub(c.cfg.VeryHeavyWeightKg).Mul(c.cfg.HeavyParcelPerKg)
	}
	return decimal.Zero
}

func (c ShippingCalculator) standard(weight decimal.Decimal, zone *shipping.Zone, zoneCode string) decimal.Decimal {
	if zone == nil {
		fallback := c.cfg.FallbackZone
		zone = &fallback
	}

	var fee decimal.Decimal
	switch {
	case weight.GreaterThan(c.cfg.HeavyWeightKg):
		fee = zone.Base.Add(weight.Sub(c.cfg.HeavyWeightKg).Mul(zone.PerKg))
	case weight.GreaterThan(c.cfg.MediumWeightKg):
		// Fixed intermediate rate, independent of the zone's per-kg fee.
		fee = zone.Base.Add(weight.Sub(c.cfg.MediumWeightKg).Mul(c.cfg.MediumTierPerKg))
	default:
		fee = zone.Base
	}

	if _, remote := c.cfg.RemoteZones[zoneCode]; remote {
		fee = fee.Mul(c.cfg.RemoteZoneMarkup)
	}
	return fee
}

// HandlingFee returns the item-count handling fee. Count tiers overwrite,
// consistent with the discount ladders.
func (c ShippingCalculator) HandlingFee(itemCount int) decimal.Decimal {
	switch {
	case itemCount > c.cfg.HandlingTier2Items:
		return c.cfg.HandlingFee.Mul(decimal.NewFromInt(2))
	case itemCount > c.cfg.HandlingTier1Items:
		return c.cfg.HandlingFee
	default:
		return decimal.Zero
	}
}
