package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderlab/pricing-report/internal/domain/customer"
)

func TestVolumeDiscount_TierOverwrite(t *testing.T) {
	calc := NewDiscountCalculator(DefaultConfig())

	tests := []struct {
		name     string
		subtotal string
		level    customer.Level
		want     string
	}{
		{name: "below first tier", subtotal: "30", level: customer.LevelBasic, want: "0.00"},
		{name: "exactly at first tier is excluded", subtotal: "50", level: customer.LevelBasic, want: "0.00"},
		{name: "first tier", subtotal: "60", level: customer.LevelBasic, want: "3.00"},
		{name: "boundary keeps previous tier", subtotal: "100", level: customer.LevelBasic, want: "5.00"},
		{name: "second tier overwrites first", subtotal: "150", level: customer.LevelBasic, want: "15.00"},
		{name: "third tier overwrites second", subtotal: "600", level: customer.LevelBasic, want: "90.00"},
		{name: "top tier needs premium", subtotal: "1200", level: customer.LevelBasic, want: "180.00"},
		{name: "top tier for premium", subtotal: "1200", level: customer.LevelPremium, want: "240.00"},
		{name: "vip does not qualify for top tier", subtotal: "1200", level: customer.LevelVIP, want: "180.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.VolumeDiscount(decimal.RequireFromString(tt.subtotal), tt.level)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

// The result is always a single tier's rate applied to the subtotal,
// never a sum of brackets.
func TestVolumeDiscount_SingleTierProperty(t *testing.T) {
	calc := NewDiscountCalculator(DefaultConfig())

	rates := []string{"0", "0.05", "0.10", "0.15", "0.20"}
	for _, subtotal := range []string{"10", "51", "99", "101", "499", "501", "999", "1001", "5000"} {
		s := decimal.RequireFromString(subtotal)
		got := calc.VolumeDiscount(s, customer.LevelPremium)

		matched := false
		for _, r := range rates {
			if got.Equal(s.Mul(decimal.RequireFromString(r))) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "subtotal %s produced non-tier discount %s", subtotal, got)
	}
}

func TestApplyWeekendBonus(t *testing.T) {
	calc := NewDiscountCalculator(DefaultConfig())
	hundred := decimal.NewFromInt(100)

	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "saturday", date: "2024-01-13", want: "105.00"},
		{name: "sunday", date: "2024-01-14", want: "105.00"},
		{name: "monday", date: "2024-01-15", want: "100.00"},
		{name: "empty date", date: "", want: "100.00"},
		{name: "unparsable date", date: "13/01/2024", want: "100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ApplyWeekendBonus(hundred, tt.date)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestLoyaltyDiscount(t *testing.T) {
	calc := NewDiscountCalculator(DefaultConfig())

	tests := []struct {
		name   string
		points string
		want   string
	}{
		{name: "below first tier", points: "50", want: "0.00"},
		{name: "exactly at first tier is excluded", points: "100", want: "0.00"},
		{name: "first tier", points: "150", want: "15.00"},
		{name: "first tier capped", points: "499", want: "49.90"},
		{name: "second tier overwrites first", points: "600", want: "90.00"},
		{name: "second tier capped", points: "5000", want: "100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.LoyaltyDiscount(decimal.RequireFromString(tt.points))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestApplyMaxDiscountCap(t *testing.T) {
	calc := NewDiscountCalculator(DefaultConfig())

	t.Run("below cap passes through", func(t *testing.T) {
		v, l := calc.ApplyMaxDiscountCap(decimal.NewFromInt(120), decimal.NewFromInt(80))
		assert.Equal(t, "120.00", v.StringFixed(2))
		assert.Equal(t, "80.00", l.StringFixed(2))
	})

	t.Run("above cap rescales proportionally", func(t *testing.T) {
		v, l := calc.ApplyMaxDiscountCap(decimal.NewFromInt(150), decimal.NewFromInt(100))
		assert.Equal(t, "120.00", v.StringFixed(2))
		assert.Equal(t, "80.00", l.StringFixed(2))
		assert.Equal(t, "200.00", v.Add(l).StringFixed(2))
	})

	t.Run("sum equals cap within tolerance and ratio is preserved", func(t *testing.T) {
		volume := decimal.RequireFromString("233.33")
		loyalty := decimal.RequireFromString("99.99")
		v, l := calc.ApplyMaxDiscountCap(volume, loyalty)

		sum := v.Add(l)
		require.True(t, sum.Sub(decimal.NewFromInt(200)).Abs().LessThan(decimal.RequireFromString("0.0001")),
			"capped sum %s should be 200", sum)

		wantRatio := volume.Div(loyalty)
		gotRatio := v.Div(l)
		assert.True(t, gotRatio.Sub(wantRatio).Abs().LessThan(decimal.RequireFromString("0.0001")),
			"ratio changed: want %s got %s", wantRatio, gotRatio)
	})

	t.Run("zero discounts stay zero", func(t *testing.T) {
		v, l := calc.ApplyMaxDiscountCap(decimal.Zero, decimal.Zero)
		assert.True(t, v.IsZero())
		assert.True(t, l.IsZero())
	})
}
