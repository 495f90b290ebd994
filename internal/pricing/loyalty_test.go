package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/orderlab/pricing-report/internal/domain/order"
)

func TestLoyaltyCalculator_Points(t *testing.T) {
	calc := NewLoyaltyCalculator(DefaultConfig())

	t.Run("empty orders earn nothing", func(t *testing.T) {
		assert.True(t, calc.Points(nil).IsZero())
	})

	t.Run("points are one percent of raw order value", func(t *testing.T) {
		lines := []order.Line{
			{ID: "o1", Qty: 3, UnitPrice: decimal.NewFromInt(10)},
			{ID: "o2", Qty: 2, UnitPrice: decimal.RequireFromString("25.50")},
		}
		// (30 + 51) * 0.01
		assert.Equal(t, "0.81", calc.Points(lines).StringFixed(2))
	})
}
