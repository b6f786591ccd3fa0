package ledger

import (
	"context"

	"github.com/riven-app/backend/internal/rates"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RefreshRates pulls current quotes from the provider and stores the
// USD and EUR rates.
//
// Provider failures and missing quotes do not return an error: the
// previously stored rates (or the defaults) stay authoritative until
// a complete response arrives. Store failures do propagate.
func (e *Engine) RefreshRates(ctx context.Context, provider rates.Provider) error {
	quotes, err := provider.FetchRates(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("rate refresh failed, keeping stored rates")
		return nil
	}

	usd, usdFound := findQuote(quotes, rates.CodeUSD, rates.CodeUAH)
	eur, eurFound := findQuote(quotes, rates.CodeEUR, rates.CodeUAH)

	// Only a response carrying both pairs updates the stored rates.
	if !usdFound || !eurFound {
		log.Warn().
			Bool("usd", usdFound).
			Bool("eur", eurFound).
			Msg("rate refresh response is missing quotes, keeping stored rates")
		return nil
	}

	return e.UpdateRates(ctx,
		quotePrice(usd, DefaultUSDRate),
		quotePrice(eur, DefaultEURRate),
	)
}

func findQuote(quotes []rates.Quote, codeA, codeB int) (rates.Quote, bool) {
	for _, quote := range quotes {
		if quote.CurrencyCodeA == codeA && quote.CurrencyCodeB == codeB {
			return quote, true
		}
	}

	return rates.Quote{}, false
}

// quotePrice picks the effective price of a quote: the sell price if
// present, else the cross price, else the fallback.
func quotePrice(quote rates.Quote, fallback decimal.Decimal) decimal.Decimal {
	if quote.RateSell != nil {
		return *quote.RateSell
	}

	if quote.RateCross != nil {
		return *quote.RateCross
	}

	return fallback
}
