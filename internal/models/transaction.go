package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents one entry of the append-only ledger.
//
// The amount is signed: positive amounts credit the wallet, negative
// amounts debit it. Once written, a transaction is never updated or
// deleted on its own; it only disappears together with its wallet.
type Transaction struct {
	DefaultModel
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category   string
	WalletID   uuid.UUID `gorm:"index"`
	Wallet     Wallet
	EnvelopeID *uuid.UUID `gorm:"index"` // Optional link of an expense to an envelope
	Envelope   *Envelope
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the date to the current time if unset and
// normalizes it to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}
