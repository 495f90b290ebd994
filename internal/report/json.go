package report

import (
	"io"
	"time"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/orderlab/pricing-report/internal/pricing"
)

// JSON renders the machine-readable report: run metadata, one object per
// customer summary, and the same grand totals as the text report.
func JSON(w io.Writer, runID string, generatedAt time.Time, summaries []pricing.Summary) error {
	var e jx.Encoder
	e.SetIdent(2)

	e.Obj(func(e *jx.Encoder) {
		e.Field("run_id", func(e *jx.Encoder) { e.Str(runID) })
		e.Field("generated_at", func(e *jx.Encoder) { e.Str(generatedAt.UTC().Format(time.RFC3339)) })

		e.Field("customers", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, s := range summaries {
					encodeSummary(e, s)
				}
			})
		})

		grandTotal, taxCollected := Totals(summaries)
		e.Field("grand_total", func(e *jx.Encoder) { money(e, grandTotal) })
		e.Field("total_tax_collected", func(e *jx.Encoder) { money(e, taxCollected) })
		e.Field("totals_currency", func(e *jx.Encoder) { e.Str("EUR") })
	})

	_, err := w.Write(e.Bytes())
	return err
}

func encodeSummary(e *jx.Encoder, s pricing.Summary) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("customer_id", func(e *jx.Encoder) { e.Str(s.Customer.ID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(s.Customer.Name) })
		e.Field("level", func(e *jx.Encoder) { e.Str(string(s.Customer.Level)) })
		e.Field("zone", func(e *jx.Encoder) { e.Str(s.Customer.ShippingZone) })
		e.Field("currency", func(e *jx.Encoder) { e.Str(string(s.Customer.Currency)) })
		e.Field("subtotal", func(e *jx.Encoder) { money(e, s.Subtotal) })
		e.Field("volume_discount", func(e *jx.Encoder) { money(e, s.VolumeDiscount) })
		e.Field("loyalty_discount", func(e *jx.Encoder) { money(e, s.LoyaltyDiscount) })
		e.Field("morning_bonus", func(e *jx.Encoder) { money(e, s.MorningBonus) })
		e.Field("tax", func(e *jx.Encoder) { money(e, s.Tax) })
		e.Field("shipping", func(e *jx.Encoder) { money(e, s.Shipping) })
		e.Field("handling", func(e *jx.Encoder) { money(e, s.Handling) })
		e.Field("total", func(e *jx.Encoder) { money(e, s.Total) })
		e.Field("loyalty_points", func(e *jx.Encoder) { e.Int64(s.LoyaltyPoints.Floor().IntPart()) })
		e.Field("weight_kg", func(e *jx.Encoder) { e.Num(jx.Num(s.Weight.StringFixed(1))) })
		e.Field("item_count", func(e *jx.Encoder) { e.Int(s.ItemCount) })
	})
}

// money writes a decimal as a raw JSON number with 2 decimal places.
func money(e *jx.Encoder, d decimal.Decimal) {
	e.Num(jx.Num(d.StringFixed(2)))
}
