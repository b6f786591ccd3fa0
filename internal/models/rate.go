package models

import (
	"github.com/riven-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Rate is a stored exchange quote to the base currency, keyed by
// currency code.
type Rate struct {
	DefaultModel
	Currency  types.Currency  `gorm:"uniqueIndex:rate_currency"`
	RateToUAH decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}
