package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/orderlab/pricing-report/internal/domain/customer"
)

// Customers loads the customer file into a map keyed by customer ID.
// Unknown levels and currencies are defaulted to BASIC and EUR; a missing
// shipping zone column defaults to ZONE1.
func Customers(ctx context.Context, path string) (map[string]customer.Customer, error) {
	out := make(map[string]customer.Customer)
	err := forEachRow(ctx, path, func(r row) error {
		id := r.get("id")
		if id == "" {
			return errors.New("missing id")
		}
		out[id] = customer.Customer{
			ID:           id,
			Name:         r.get("name"),
			Level:        customer.ParseLevel(r.getDefault("level", "BASIC")),
			ShippingZone: r.getDefault("shipping_zone", "ZONE1"),
			Currency:     customer.ParseCurrency(r.getDefault("currency", "EUR")),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
