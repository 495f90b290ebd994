package repository

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/shipping"
)

// Zones loads the shipping zone file into a map keyed by zone code.
// The per-kg fee defaults to 0.5 when the column is absent.
func Zones(ctx context.Context, path string) (map[string]shipping.Zone, error) {
	out := make(map[string]shipping.Zone)
	err := forEachRow(ctx, path, func(r row) error {
		base, err := decimal.NewFromString(r.get("base"))
		if err != nil {
			return errors.Wrap(err, "base")
		}
		perKg, err := decimal.NewFromString(r.getDefault("per_kg", "0.5"))
		if err != nil {
			return errors.Wrap(err, "per_kg")
		}
		z, err := shipping.NewZone(r.get("zone"), base, perKg)
		if err != nil {
			return err
		}
		out[z.Code] = z
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
