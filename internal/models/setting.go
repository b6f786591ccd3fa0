package models

import (
	"github.com/shopspring/decimal"
)

// SettingMonthlyBurnRate is the key of the monthly burn rate setting.
const SettingMonthlyBurnRate = "monthlyBurnRate"

// Setting is a single scalar configuration value keyed by name.
type Setting struct {
	DefaultModel
	Key   string          `gorm:"uniqueIndex:setting_key"`
	Value decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}
