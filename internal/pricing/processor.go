package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/customer"
	"github.com/orderlab/pricing-report/internal/domain/order"
	"github.com/orderlab/pricing-report/internal/domain/product"
	"github.com/orderlab/pricing-report/internal/domain/promo"
	"github.com/orderlab/pricing-report/internal/domain/shipping"
)

var one = decimal.NewFromInt(1)

// Processor orchestrates the calculators into one pricing pass per
// customer. It holds no mutable state; a single Processor may be shared
// across goroutines as long as the lookup maps are not mutated.
type Processor struct {
	cfg       *Config
	loyalty   LoyaltyCalculator
	discounts DiscountCalculator
	taxes     TaxCalculator
	shipping  ShippingCalculator
}

// NewProcessor creates a Processor over the given pricing configuration.
func NewProcessor(cfg *Config) *Processor {
	return &Processor{
		cfg:       cfg,
		loyalty:   NewLoyaltyCalculator(cfg),
		discounts: NewDiscountCalculator(cfg),
		taxes:     NewTaxCalculator(cfg),
		shipping:  NewShippingCalculator(cfg),
	}
}

// Process prices all order lines of one customer and assembles the
// Summary. lines must already be filtered to the customer and is processed
// in the given order; callers skip customers with no lines. The lookup
// maps are read-only for the duration of the call.
func (p *Processor) Process(
	cust customer.Customer,
	lines []order.Line,
	products map[string]product.Product,
	promos map[string]promo.Promotion,
	zones map[string]shipping.Zone,
) Summary {
	subtotal, weight, morningBonus := p.aggregateLines(lines, products, promos)

	points := p.loyalty.Points(lines)

	volumeDiscount := p.discounts.VolumeDiscount(subtotal, cust.Level)

	// The weekend bonus keys on the first line's date as received, not on
	// the chronological minimum.
	firstDate := ""
	if len(lines) > 0 {
		firstDate = lines[0].Date
	}
	volumeDiscount = p.discounts.ApplyWeekendBonus(volumeDiscount, firstDate)

	loyaltyDiscount := p.discounts.LoyaltyDiscount(points)

	volumeDiscount, loyaltyDiscount = p.discounts.ApplyMaxDiscountCap(volumeDiscount, loyaltyDiscount)

	taxableAmount := subtotal.Sub(volumeDiscount.Add(loyaltyDiscount))
	tax := p.taxes.Calculate(lines, products, taxableAmount)

	var zone *shipping.Zone
	if z, ok := zones[cust.ShippingZone]; ok {
		zone = &z
	}
	shippingFee := p.shipping.Calculate(subtotal, weight, zone, cust.ShippingZone)
	handling := p.shipping.HandlingFee(len(lines))

	rate := p.cfg.CurrencyRate(cust.Currency)

	// Total converts the whole amount at once; the reported tax is
	// converted separately at assembly. The discount components are never
	// converted. Inherited behaviour, kept for output compatibility.
	total := taxableAmount.Add(tax).Add(shippingFee).Add(handling).Mul(rate).Round(2)

	return Summary{
		Customer:        cust,
		Subtotal:        subtotal,
		VolumeDiscount:  volumeDiscount,
		LoyaltyDiscount: loyaltyDiscount,
		MorningBonus:    morningBonus,
		Tax:             tax.Mul(rate),
		Shipping:        shippingFee,
		Handling:        handling,
		Total:           total,
		LoyaltyPoints:   points,
		Weight:          weight,
		ItemCount:       len(lines),
	}
}

// aggregateLines walks the lines in input order, applying promotions and
// the morning bonus, and returns the accumulated subtotal, total weight,
// and morning bonus total.
func (p *Processor) aggregateLines(
	lines []order.Line,
	products map[string]product.Product,
	promos map[string]promo.Promotion,
) (subtotal, weight, morningBonus decimal.Decimal) {
	subtotal = decimal.Zero
	weight = decimal.Zero
	morningBonus = decimal.Zero

	for _, l := range lines {
		// Lines referencing unknown products fall back to the line's own
		// unit price and a 1kg default weight.
		basePrice := l.UnitPrice
		unitWeight := one
		if prod, ok := products[l.ProductID]; ok {
			basePrice = prod.Price
			unitWeight = prod.Weight
		}

		rate := decimal.Zero
		fixed := decimal.Zero
		if l.PromoCode != "" {
			if pr, ok := promos[l.PromoCode]; ok && pr.Active {
				rate = pr.DiscountRate()
				fixed = pr.FixedAmount()
			}
		}

		qty := decimal.NewFromInt(int64(l.Qty))
		// Fixed promotions subtract per unit on the line, not once per
		// order. Legacy behaviour, kept for output compatibility.
		lineTotal := qty.Mul(basePrice).Mul(one.Sub(rate)).Sub(fixed.Mul(qty))

		if l.Hour() < p.cfg.MorningCutoffHour {
			bonus := lineTotal.Mul(p.cfg.MorningBonusRate)
			lineTotal = lineTotal.Sub(bonus)
			morningBonus = morningBonus.Add(bonus)
		}

		subtotal = subtotal.Add(lineTotal)
		weight = weight.Add(unitWeight.Mul(qty))
	}
	return subtotal, weight, morningBonus
}
