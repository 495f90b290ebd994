package repository

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/product"
)

// Products loads the product catalog into a map keyed by product ID.
// Weight defaults to 1.0 and taxable to true when the columns are absent.
// Rows failing coercion or validation are skipped with a warning.
func Products(ctx context.Context, path string) (map[string]product.Product, error) {
	out := make(map[string]product.Product)
	err := forEachRow(ctx, path, func(r row) error {
		price, err := decimal.NewFromString(r.get("price"))
		if err != nil {
			return errors.Wrap(err, "price")
		}
		weight, err := decimal.NewFromString(r.getDefault("weight", "1.0"))
		if err != nil {
			return errors.Wrap(err, "weight")
		}
		taxable := !strings.EqualFold(r.getDefault("taxable", "true"), "false")

		p, err := product.New(r.get("id"), r.get("name"), r.get("category"), price, weight, taxable)
		if err != nil {
			return err
		}
		out[p.ID] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
