package repository

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/order"
)

// Orders loads the order file, preserving file order. Lines with a
// non-positive quantity, a negative price, or unparsable numbers never
// reach the pricing core: they are skipped here with a warning.
func Orders(ctx context.Context, path string) ([]order.Line, error) {
	var out []order.Line
	err := forEachRow(ctx, path, func(r row) error {
		qty, err := strconv.Atoi(r.get("qty"))
		if err != nil {
			return errors.Wrap(err, "qty")
		}
		unitPrice, err := decimal.NewFromString(r.get("unit_price"))
		if err != nil {
			return errors.Wrap(err, "unit_price")
		}

		l, err := order.New(
			r.get("id"),
			r.get("customer_id"),
			r.get("product_id"),
			qty,
			unitPrice,
			r.getDefault("date", ""),
			r.getDefault("promo_code", ""),
			r.getDefault("time", "12:00"),
		)
		if err != nil {
			return err
		}
		out = append(out, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
