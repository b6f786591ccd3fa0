package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope represents a named spending budget for one category.
//
// CurrentSpent is the running total of the magnitudes of all expense
// transactions linked to the envelope. It starts at zero and only ever
// increases; editing the limit does not touch it.
type Envelope struct {
	DefaultModel
	Name         string
	MonthlyLimit decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentSpent decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Icon         string
	ColorHex     string
}

// BeforeSave trims whitespace from all strings.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Icon = strings.TrimSpace(e.Icon)
	e.ColorHex = strings.TrimSpace(e.ColorHex)

	return nil
}

// Transactions returns all transactions linked to this envelope, newest first.
func (e Envelope) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where("envelope_id = ?", e.ID).Order("date desc").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
