// Package rates provides currency quote providers for the ledger
// engine.
package rates

import (
	"context"

	"github.com/shopspring/decimal"
)

// Numeric ISO 4217 currency codes used in quote pairs.
const (
	CodeUSD = 840
	CodeEUR = 978
	CodeUAH = 980
)

// Quote is one currency pair quote as returned by a provider. The buy,
// sell and cross prices are optional; consumers pick the first one
// present.
type Quote struct {
	CurrencyCodeA int              `json:"currencyCodeA"`
	CurrencyCodeB int              `json:"currencyCodeB"`
	Date          int64            `json:"date"`
	RateBuy       *decimal.Decimal `json:"rateBuy,omitempty"`
	RateSell      *decimal.Decimal `json:"rateSell,omitempty"`
	RateCross     *decimal.Decimal `json:"rateCross,omitempty"`
}

// Provider supplies current currency quotes. FetchRates may fail; the
// engine treats failures as "keep the last known good rates".
type Provider interface {
	FetchRates(ctx context.Context) ([]Quote, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) ([]Quote, error)

func (f ProviderFunc) FetchRates(ctx context.Context) ([]Quote, error) {
	return f(ctx)
}
