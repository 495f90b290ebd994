package promo

import "github.com/shopspring/decimal"

// Type enumerates the supported promotion strategies.
type Type string

const (
	// TypePercentage reduces a line's unit price by Value percent.
	TypePercentage Type = "PERCENTAGE"
	// TypeFixed subtracts Value once per unit quantity on the line.
	// This per-unit application is long-standing billing behaviour and
	// must not be reinterpreted as a one-time deduction.
	TypeFixed Type = "FIXED"
)

var hundred = decimal.NewFromInt(100)

// Promotion represents a promotion code with its discount rule.
type Promotion struct {
	Code   string
	Type   Type
	Value  decimal.Decimal
	Active bool
}

// DiscountRate returns Value/100 for percentage promotions, zero otherwise.
func (p Promotion) DiscountRate() decimal.Decimal {
	if p.Type == TypePercentage {
		return p.Value.Div(hundred)
	}
	return decimal.Zero
}

// FixedAmount returns Value for fixed promotions, zero otherwise.
func (p Promotion) FixedAmount() decimal.Decimal {
	if p.Type == TypeFixed {
		return p.Value
	}
	return decimal.Zero
}
