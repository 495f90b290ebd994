package customer

// Level is a customer's loyalty tier.
type Level string

const (
	LevelBasic   Level = "BASIC"
	LevelPremium Level = "PREMIUM"
	LevelVIP     Level = "VIP"
)

// Currency is a customer's billing currency.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// ParseLevel maps a raw level string to a Level, defaulting unknown or
// empty values to BASIC.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelBasic, LevelPremium, LevelVIP:
		return Level(s)
	default:
		return LevelBasic
	}
}

// ParseCurrency maps a raw currency string to a Currency, defaulting
// unknown or empty values to EUR.
func ParseCurrency(s string) Currency {
	switch Currency(s) {
	case CurrencyEUR, CurrencyUSD, CurrencyGBP:
		return Currency(s)
	default:
		return CurrencyEUR
	}
}

// Customer represents a customer account with its shipping and billing
// preferences. Values are immutable after construction.
type Customer struct {
	ID           string
	Name         string
	Level        Level
	ShippingZone string
	Currency     Currency
}

// IsPremium reports whether the customer is PREMIUM or above.
func (c Customer) IsPremium() bool {
	return c.Level == LevelPremium || c.Level == LevelVIP
}

// IsVIP reports whether the customer is VIP.
func (c Customer) IsVIP() bool {
	return c.Level == LevelVIP
}
