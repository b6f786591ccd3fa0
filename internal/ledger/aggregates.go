package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/riven-app/backend/internal/models"
	"github.com/riven-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Summary is one consistent snapshot of all derived aggregates.
type Summary struct {
	NetWorthUAH          decimal.Decimal
	MonthlyBurnRate      decimal.Decimal
	RunwayMonths         decimal.Decimal
	EffectiveUSDRate     decimal.Decimal
	EffectiveEURRate     decimal.Decimal
	SimulationMultiplier decimal.Decimal
	RatesUpdatedAt       *time.Time
}

// rateTable is the set of inputs a net worth computation depends on,
// read once so that all wallets are valued against the same snapshot.
type rateTable struct {
	usd        decimal.Decimal
	eur        decimal.Decimal
	multiplier decimal.Decimal
}

// effectiveRate converts one unit of the currency into base units.
//
// Only USD and EUR are scaled by the simulation multiplier. The base
// currency is always 1, BTC uses a fixed quote, and unknown codes
// count as already base-denominated; none of those are scaled.
func (r rateTable) effectiveRate(currency types.Currency) decimal.Decimal {
	switch currency {
	case types.CurrencyUAH:
		return decimal.NewFromInt(1)
	case types.CurrencyUSD:
		return r.usd.Mul(r.multiplier)
	case types.CurrencyEUR:
		return r.eur.Mul(r.multiplier)
	case types.CurrencyBTC:
		return BTCRateUAH
	default:
		return decimal.NewFromInt(1)
	}
}

// StoredRate returns the persisted quote for the currency, falling
// back to the documented default when no row is stored.
func (e *Engine) StoredRate(ctx context.Context, currency types.Currency) (decimal.Decimal, error) {
	var rate models.Rate

	err := e.db.WithContext(ctx).First(&rate, "currency = ?", currency).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		switch currency {
		case types.CurrencyUSD:
			return DefaultUSDRate, nil
		case types.CurrencyEUR:
			return DefaultEURRate, nil
		case types.CurrencyBTC:
			return BTCRateUAH, nil
		default:
			return decimal.NewFromInt(1), nil
		}
	}
	if err != nil {
		return decimal.Zero, err
	}

	return rate.RateToUAH, nil
}

// EffectiveRate returns the stored rate for the currency scaled by the
// simulation multiplier, following the scaling rules described on
// rateTable.effectiveRate.
func (e *Engine) EffectiveRate(ctx context.Context, currency types.Currency) (decimal.Decimal, error) {
	rates, err := e.loadRateTable(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return rates.effectiveRate(currency), nil
}

// NetWorthUAH values every wallet balance in base units and sums them.
func (e *Engine) NetWorthUAH(ctx context.Context) (decimal.Decimal, error) {
	rates, err := e.loadRateTable(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	var wallets []models.Wallet
	err = e.db.WithContext(ctx).Find(&wallets).Error
	if err != nil {
		return decimal.Zero, err
	}

	netWorth := decimal.Zero
	for _, wallet := range wallets {
		netWorth = netWorth.Add(wallet.Balance.Mul(rates.effectiveRate(wallet.Currency)))
	}

	return netWorth, nil
}

// MonthlyBurnRate returns the configured burn rate, or the default
// when the setting is absent.
func (e *Engine) MonthlyBurnRate(ctx context.Context) (decimal.Decimal, error) {
	var setting models.Setting

	err := e.db.WithContext(ctx).First(&setting, "key = ?", models.SettingMonthlyBurnRate).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return DefaultMonthlyBurnRate, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	return setting.Value, nil
}

// RunwayMonths returns how many months of spending the current net
// worth sustains at the configured burn rate. A burn rate of zero or
// less yields zero, not an error.
func (e *Engine) RunwayMonths(ctx context.Context) (decimal.Decimal, error) {
	netWorth, err := e.NetWorthUAH(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	burnRate, err := e.MonthlyBurnRate(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if !burnRate.IsPositive() {
		return decimal.Zero, nil
	}

	return netWorth.Div(burnRate), nil
}

// Summarize computes one consistent snapshot of all aggregates.
func (e *Engine) Summarize(ctx context.Context) (Summary, error) {
	rates, err := e.loadRateTable(ctx)
	if err != nil {
		return Summary{}, err
	}

	var wallets []models.Wallet
	err = e.db.WithContext(ctx).Find(&wallets).Error
	if err != nil {
		return Summary{}, err
	}

	netWorth := decimal.Zero
	for _, wallet := range wallets {
		netWorth = netWorth.Add(wallet.Balance.Mul(rates.effectiveRate(wallet.Currency)))
	}

	burnRate, err := e.MonthlyBurnRate(ctx)
	if err != nil {
		return Summary{}, err
	}

	runway := decimal.Zero
	if burnRate.IsPositive() {
		runway = netWorth.Div(burnRate)
	}

	return Summary{
		NetWorthUAH:          netWorth,
		MonthlyBurnRate:      burnRate,
		RunwayMonths:         runway,
		EffectiveUSDRate:     rates.effectiveRate(types.CurrencyUSD),
		EffectiveEURRate:     rates.effectiveRate(types.CurrencyEUR),
		SimulationMultiplier: rates.multiplier,
		RatesUpdatedAt:       e.RatesUpdatedAt(),
	}, nil
}

func (e *Engine) loadRateTable(ctx context.Context) (rateTable, error) {
	usd, err := e.StoredRate(ctx, types.CurrencyUSD)
	if err != nil {
		return rateTable{}, err
	}

	eur, err := e.StoredRate(ctx, types.CurrencyEUR)
	if err != nil {
		return rateTable{}, err
	}

	return rateTable{
		usd:        usd,
		eur:        eur,
		multiplier: e.Multiplier(),
	}, nil
}
