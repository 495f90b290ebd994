package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelPremium, ParseLevel("PREMIUM"))
	assert.Equal(t, LevelVIP, ParseLevel("VIP"))
	assert.Equal(t, LevelBasic, ParseLevel("BASIC"))
	assert.Equal(t, LevelBasic, ParseLevel("GOLD"))
	assert.Equal(t, LevelBasic, ParseLevel(""))
}

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, CurrencyUSD, ParseCurrency("USD"))
	assert.Equal(t, CurrencyGBP, ParseCurrency("GBP"))
	assert.Equal(t, CurrencyEUR, ParseCurrency("JPY"))
	assert.Equal(t, CurrencyEUR, ParseCurrency(""))
}

func TestCustomer_Levels(t *testing.T) {
	assert.False(t, Customer{Level: LevelBasic}.IsPremium())
	assert.True(t, Customer{Level: LevelPremium}.IsPremium())
	assert.True(t, Customer{Level: LevelVIP}.IsPremium())
	assert.True(t, Customer{Level: LevelVIP}.IsVIP())
	assert.False(t, Customer{Level: LevelPremium}.IsVIP())
}
