package models

import (
	"strings"

	"github.com/riven-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet represents an account holding a balance in one currency.
//
// The balance is maintained incrementally: every ledger operation that
// writes a transaction also adjusts the balance of the affected wallet
// by the same signed amount, inside the same database transaction. It
// is never recomputed from the ledger.
type Wallet struct {
	DefaultModel
	Name     string
	Currency types.Currency
	Balance  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type     string // Free-form tag, e.g. "Debit", "Cash", "Wallet"
	ColorHex string
}

// BeforeSave trims whitespace from all strings.
func (w *Wallet) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Type = strings.TrimSpace(w.Type)
	w.ColorHex = strings.TrimSpace(w.ColorHex)
	w.Currency = types.Currency(strings.TrimSpace(string(w.Currency)))

	return nil
}

// Transactions returns all transactions for this wallet, newest first.
func (w Wallet) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where(&Transaction{WalletID: w.ID}).Order("date desc").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
