package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/customer"
	"github.com/orderlab/pricing-report/internal/domain/shipping"
)

// VolumeTier is one step of the volume discount ladder. Tiers are evaluated
// in ascending threshold order and each satisfied tier replaces the result
// of the previous one; they never accumulate.
type VolumeTier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
	// PremiumOnly restricts the tier to customers at exactly the PREMIUM
	// level. VIP does not qualify.
	PremiumOnly bool
}

// LoyaltyTier is one step of the loyalty discount ladder, with the same
// replace-not-accumulate evaluation as VolumeTier.
type LoyaltyTier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
	Cap       decimal.Decimal
}

// Config carries every pricing constant used by the calculators. It is
// built once per run and passed read-only into each calculator; nothing
// mutates it afterwards.
type Config struct {
	TaxRate decimal.Decimal

	FreeShippingThreshold decimal.Decimal
	MediumWeightKg        decimal.Decimal
	HeavyWeightKg         decimal.Decimal
	VeryHeavyWeightKg     decimal.Decimal
	// MediumTierPerKg is the fixed per-kg rate for the 5-10kg bracket,
	// independent of the zone's own per-kg fee.
	MediumTierPerKg  decimal.Decimal
	HeavyParcelPerKg decimal.Decimal
	RemoteZones      map[string]struct{}
	RemoteZoneMarkup decimal.Decimal
	FallbackZone     shipping.Zone

	HandlingFee        decimal.Decimal
	HandlingTier1Items int
	HandlingTier2Items int

	VolumeTiers            []VolumeTier
	LoyaltyTiers           []LoyaltyTier
	MaxDiscount            decimal.Decimal
	WeekendBonusMultiplier decimal.Decimal

	LoyaltyPointsRate decimal.Decimal
	MorningBonusRate  decimal.Decimal
	MorningCutoffHour int

	CurrencyRates map[customer.Currency]decimal.Decimal
}

// DefaultConfig returns the production tariff tables.
func DefaultConfig() *Config {
	return &Config{
		TaxRate: decimal.NewFromFloat(0.2),

		FreeShippingThreshold: decimal.NewFromInt(50),
		MediumWeightKg:        decimal.NewFromInt(5),
		HeavyWeightKg:         decimal.NewFromInt(10),
		VeryHeavyWeightKg:     decimal.NewFromInt(20),
		MediumTierPerKg:       decimal.NewFromFloat(0.3),
		HeavyParcelPerKg:      decimal.NewFromFloat(0.25),
		RemoteZones: map[string]struct{}{
			"ZONE3": {},
			"ZONE4": {},
		},
		RemoteZoneMarkup: decimal.NewFromFloat(1.2),
		FallbackZone: shipping.Zone{
			Code:  "DEFAULT",
			Base:  decimal.NewFromInt(5),
			PerKg: decimal.NewFromFloat(0.5),
		},

		HandlingFee:        decimal.NewFromFloat(2.5),
		HandlingTier1Items: 10,
		HandlingTier2Items: 20,

		VolumeTiers: []VolumeTier{
			{Threshold: decimal.NewFromInt(50), Rate: decimal.NewFromFloat(0.05)},
			{Threshold: decimal.NewFromInt(100), Rate: decimal.NewFromFloat(0.10)},
			{Threshold: decimal.NewFromInt(500), Rate: decimal.NewFromFloat(0.15)},
			{Threshold: decimal.NewFromInt(1000), Rate: decimal.NewFromFloat(0.20), PremiumOnly: true},
		},
		LoyaltyTiers: []LoyaltyTier{
			{Threshold: decimal.NewFromInt(100), Rate: decimal.NewFromFloat(0.10), Cap: decimal.NewFromInt(50)},
			{Threshold: decimal.NewFromInt(500), Rate: decimal.NewFromFloat(0.15), Cap: decimal.NewFromInt(100)},
		},
		MaxDiscount:            decimal.NewFromInt(200),
		WeekendBonusMultiplier: decimal.NewFromFloat(1.05),

		LoyaltyPointsRate: decimal.NewFromFloat(0.01),
		MorningBonusRate:  decimal.NewFromFloat(0.03),
		MorningCutoffHour: 10,

		CurrencyRates: map[customer.Currency]decimal.Decimal{
			customer.CurrencyEUR: decimal.NewFromInt(1),
			customer.CurrencyUSD: decimal.NewFromFloat(1.1),
			customer.CurrencyGBP: decimal.NewFromFloat(0.85),
		},
	}
}

// CurrencyRate returns the conversion rate for the given currency,
// defaulting to 1.0 for unknown currencies.
func (c *Config) CurrencyRate(cur customer.Currency) decimal.Decimal {
	if rate, ok := c.CurrencyRates[cur]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}
