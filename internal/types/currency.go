// Package types contains special types used across the backend.
package types

// Currency is the code of the currency a value is denominated in.
//
// The codes UAH, USD, EUR and BTC have a known conversion rule to the
// base currency (UAH). Every other code is treated as opaque and
// already base-denominated.
type Currency string

const (
	CurrencyUAH Currency = "UAH"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyBTC Currency = "BTC"
)

// KnownCurrencies returns the currencies with a dedicated conversion rule.
func KnownCurrencies() []Currency {
	return []Currency{CurrencyUAH, CurrencyUSD, CurrencyEUR, CurrencyBTC}
}

func (c Currency) String() string {
	return string(c)
}

// Known returns true when the currency has a dedicated conversion rule
// to the base currency.
func (c Currency) Known() bool {
	switch c {
	case CurrencyUAH, CurrencyUSD, CurrencyEUR, CurrencyBTC:
		return true
	}

	return false
}
