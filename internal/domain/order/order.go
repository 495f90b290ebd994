package order

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DefaultHour is the hour assumed when a line carries no parsable time.
const DefaultHour = 12

// Line represents a single order line as recorded in the order file.
// Date, PromoCode and Time are optional; Date uses "YYYY-MM-DD" and Time
// uses "HH:MM".
type Line struct {
	ID         string
	CustomerID string
	ProductID  string
	Qty        int
	UnitPrice  decimal.Decimal
	Date       string
	PromoCode  string
	Time       string
}

// New constructs a Line, rejecting non-positive quantities and negative
// unit prices. An empty time defaults to "12:00".
func New(id, customerID, productID string, qty int, unitPrice decimal.Decimal, date, promoCode, tm string) (Line, error) {
	if qty <= 0 {
		return Line{}, errors.Errorf("order %s: quantity must be positive, got %d", id, qty)
	}
	if unitPrice.IsNegative() {
		return Line{}, errors.Errorf("order %s: negative unit price %s", id, unitPrice)
	}
	if tm == "" {
		tm = "12:00"
	}
	return Line{
		ID:         id,
		CustomerID: customerID,
		ProductID:  productID,
		Qty:        qty,
		UnitPrice:  unitPrice,
		Date:       date,
		PromoCode:  promoCode,
		Time:       tm,
	}, nil
}

// Hour extracts the hour from the line's time field, falling back to
// DefaultHour when the field is missing or unparsable.
func (l Line) Hour() int {
	h, _, _ := strings.Cut(l.Time, ":")
	hour, err := strconv.Atoi(h)
	if err != nil {
		return DefaultHour
	}
	return hour
}

// LineTotal returns quantity times unit price, before any promotion.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}
