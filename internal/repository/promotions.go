package repository

import (
	"context"
	"io/fs"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/domain/promo"
)

// Promotions loads the promotion file into a map keyed by promo code.
// A missing file is not an error: it yields an empty map and pricing runs
// without promotions.
func Promotions(ctx context.Context, path string) (map[string]promo.Promotion, error) {
	out := make(map[string]promo.Promotion)
	err := forEachRow(ctx, path, func(r row) error {
		value, err := decimal.NewFromString(r.get("value"))
		if err != nil {
			return errors.Wrap(err, "value")
		}
		code := r.get("code")
		if code == "" {
			return errors.New("missing code")
		}
		out[code] = promo.Promotion{
			Code:   code,
			Type:   promo.Type(r.get("type")),
			Value:  value,
			Active: !strings.EqualFold(r.getDefault("active", "true"), "false"),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]promo.Promotion{}, nil
		}
		return nil, err
	}
	return out, nil
}
