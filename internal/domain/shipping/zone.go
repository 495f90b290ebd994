package shipping

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Zone represents a shipping zone with its base and per-kilogram fees.
type Zone struct {
	Code  string
	Base  decimal.Decimal
	PerKg decimal.Decimal
}

// NewZone constructs a Zone, rejecting negative fees.
func NewZone(code string, base, perKg decimal.Decimal) (Zone, error) {
	if base.IsNegative() {
		return Zone{}, errors.Errorf("zone %s: negative base fee %s", code, base)
	}
	if perKg.IsNegative() {
		return Zone{}, errors.Errorf("zone %s: negative per-kg fee %s", code, perKg)
	}
	return Zone{Code: code, Base: base, PerKg: perKg}, nil
}
