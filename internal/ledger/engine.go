// Package ledger implements the engine that keeps wallet balances,
// envelope spend totals and the transaction ledger mutually consistent,
// and derives the multi-currency aggregates (net worth, burn rate,
// financial runway) from live store state.
//
// Every mutating operation runs as a single database transaction:
// either every constituent write lands, or none do. The derived
// aggregates are recomputed from the store on demand; a summary
// snapshot is republished to subscribers after every successful
// mutation.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Default and fixed conversion values. Tests pin these figures, do not
// change them without changing the tests.
var (
	// DefaultUSDRate is used when no rate row is stored for USD.
	DefaultUSDRate = decimal.NewFromFloat(42.0)

	// DefaultEURRate is used when no rate row is stored for EUR.
	DefaultEURRate = decimal.NewFromFloat(45.0)

	// BTCRateUAH is the fixed BTC quote in base units. It is not
	// live-fetched and not affected by the simulation multiplier.
	BTCRateUAH = decimal.NewFromInt(3804200)

	// DefaultMonthlyBurnRate is used when the setting is absent.
	DefaultMonthlyBurnRate = decimal.NewFromInt(30000)

	// ReferenceUSDRate is the "normal" USD quote that a crisis
	// simulation target is divided by to obtain the multiplier.
	ReferenceUSDRate = decimal.NewFromFloat(42.0)
)

// Engine is the single ledger engine instance of a running process.
//
// The simulation multiplier is owned by the engine and scoped to the
// process lifetime: it starts at 1.0 and is never persisted.
// Concurrent writers race last-write-wins.
type Engine struct {
	db *gorm.DB

	mu          sync.RWMutex
	multiplier  decimal.Decimal
	lastUpdated *time.Time

	subMu       sync.Mutex
	subscribers map[uint64]chan Summary
	nextSubID   uint64
}

// New returns an engine operating on the given database.
func New(db *gorm.DB) *Engine {
	return &Engine{
		db:          db,
		multiplier:  decimal.NewFromInt(1),
		subscribers: make(map[uint64]chan Summary),
	}
}

// Multiplier returns the current simulation multiplier.
func (e *Engine) Multiplier() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.multiplier
}

// RatesUpdatedAt returns the time of the last rate update, or nil if
// rates have not been updated since process start.
func (e *Engine) RatesUpdatedAt() *time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.lastUpdated
}

// SimulateCrisis sets the simulation multiplier so that the effective
// USD rate equals the target rate. The multiplier takes effect on the
// next aggregate computation and is never persisted.
func (e *Engine) SimulateCrisis(targetUSDRate decimal.Decimal) {
	e.mu.Lock()
	e.multiplier = targetUSDRate.Div(ReferenceUSDRate)
	e.mu.Unlock()

	e.publish()
}

// ResetSimulation returns the engine to real mode.
func (e *Engine) ResetSimulation() {
	e.mu.Lock()
	e.multiplier = decimal.NewFromInt(1)
	e.mu.Unlock()

	e.publish()
}
