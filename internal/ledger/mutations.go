package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/riven-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTransferOut and friends are the categories the engine assigns
// to the ledger entries it writes for transfers and exchanges.
const (
	CategoryTransferOut = "Transfer Out"
	CategoryTransferIn  = "Transfer In"
	CategoryExchangeOut = "Exchange Out"
	CategoryExchangeIn  = "Exchange In"
)

// RecordTransaction writes one ledger entry and adjusts the affected
// wallet balance by the same signed amount. If the amount is negative
// and an envelope is linked, the envelope spent total increases by the
// magnitude of the amount. All writes happen in one database
// transaction.
//
// A zero amount is permitted and has no visible effect on balances.
func (e *Engine) RecordTransaction(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, category string, envelopeID *uuid.UUID) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := walletExists(tx, walletID); err != nil {
			return err
		}
		if envelopeID != nil {
			if err := envelopeExists(tx, *envelopeID); err != nil {
				return err
			}
		}

		transaction := models.Transaction{
			WalletID:   walletID,
			Amount:     amount,
			Category:   category,
			EnvelopeID: envelopeID,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		if err := addToBalance(tx, walletID, amount); err != nil {
			return err
		}

		if amount.IsNegative() && envelopeID != nil {
			if err := addToSpent(tx, *envelopeID, amount.Neg()); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.publish()
	return nil
}

// Transfer moves an amount between two wallets. It writes a debit and
// a credit ledger entry and adjusts both balances in one database
// transaction. The source wallet may go negative, there is no
// overdraft check.
func (e *Engine) Transfer(ctx context.Context, fromWalletID, toWalletID uuid.UUID, amount decimal.Decimal) error {
	if fromWalletID == toWalletID {
		return ErrSameWallet
	}
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	err := e.moveBetweenWallets(ctx, fromWalletID, toWalletID, amount, amount, CategoryTransferOut, CategoryTransferIn)
	if err != nil {
		return err
	}

	e.publish()
	return nil
}

// Exchange converts between two wallets with independently specified
// leg magnitudes: the source is debited by fromAmount and the
// destination credited by toAmount. The conversion rate is computed by
// the caller, the engine only persists the two legs atomically.
func (e *Engine) Exchange(ctx context.Context, fromWalletID, toWalletID uuid.UUID, fromAmount, toAmount decimal.Decimal) error {
	if fromWalletID == toWalletID {
		return ErrSameWallet
	}
	if !fromAmount.IsPositive() || !toAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	err := e.moveBetweenWallets(ctx, fromWalletID, toWalletID, fromAmount, toAmount, CategoryExchangeOut, CategoryExchangeIn)
	if err != nil {
		return err
	}

	e.publish()
	return nil
}

func (e *Engine) moveBetweenWallets(ctx context.Context, fromWalletID, toWalletID uuid.UUID, fromAmount, toAmount decimal.Decimal, categoryOut, categoryIn string) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := walletExists(tx, fromWalletID); err != nil {
			return err
		}
		if err := walletExists(tx, toWalletID); err != nil {
			return err
		}

		debit := models.Transaction{
			WalletID: fromWalletID,
			Amount:   fromAmount.Neg(),
			Category: categoryOut,
		}
		if err := tx.Create(&debit).Error; err != nil {
			return err
		}
		if err := addToBalance(tx, fromWalletID, fromAmount.Neg()); err != nil {
			return err
		}

		credit := models.Transaction{
			WalletID: toWalletID,
			Amount:   toAmount,
			Category: categoryIn,
		}
		if err := tx.Create(&credit).Error; err != nil {
			return err
		}

		return addToBalance(tx, toWalletID, toAmount)
	})
}

// CreateWallet inserts a new wallet with its initial balance.
func (e *Engine) CreateWallet(ctx context.Context, wallet models.Wallet) (models.Wallet, error) {
	err := e.db.WithContext(ctx).Create(&wallet).Error
	if err != nil {
		return models.Wallet{}, err
	}

	e.publish()
	return wallet, nil
}

// CreateEnvelope inserts a new envelope. The spent total always starts
// at zero.
func (e *Engine) CreateEnvelope(ctx context.Context, envelope models.Envelope) (models.Envelope, error) {
	envelope.CurrentSpent = decimal.Zero

	err := e.db.WithContext(ctx).Create(&envelope).Error
	if err != nil {
		return models.Envelope{}, err
	}

	e.publish()
	return envelope, nil
}

// UpdateEnvelopeLimit overwrites the monthly limit of an envelope. The
// spent total is not touched.
func (e *Engine) UpdateEnvelopeLimit(ctx context.Context, id uuid.UUID, newLimit decimal.Decimal) (models.Envelope, error) {
	var envelope models.Envelope

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&envelope, "id = ?", id).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			return ErrEnvelopeNotFound
		}
		if err != nil {
			return err
		}

		return tx.Model(&envelope).Update("monthly_limit", newLimit).Error
	})
	if err != nil {
		return models.Envelope{}, err
	}

	e.publish()
	return envelope, nil
}

// DeleteWallet removes a wallet and all ledger entries that reference
// it in one database transaction. A wallet's share of the ledger has
// no meaning without the wallet, so the entries go with it.
func (e *Engine) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := walletExists(tx, id); err != nil {
			return err
		}

		err := tx.Where("wallet_id = ?", id).Delete(&models.Transaction{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&models.Wallet{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	e.publish()
	return nil
}

// DeleteEnvelope removes an envelope. Ledger entries that reference it
// lose their envelope link but stay in the ledger: the budget
// assignment dies with the envelope, the ledger does not.
func (e *Engine) DeleteEnvelope(ctx context.Context, id uuid.UUID) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := envelopeExists(tx, id); err != nil {
			return err
		}

		err := tx.Model(&models.Transaction{}).Where("envelope_id = ?", id).Update("envelope_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&models.Envelope{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	e.publish()
	return nil
}

// UpdateRates overwrites the stored USD and EUR rates atomically and
// stamps the last-updated time observable by subscribers.
func (e *Engine) UpdateRates(ctx context.Context, usdToUAH, eurToUAH decimal.Decimal) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertRate(tx, models.Rate{Currency: "USD", RateToUAH: usdToUAH}); err != nil {
			return err
		}

		return upsertRate(tx, models.Rate{Currency: "EUR", RateToUAH: eurToUAH})
	})
	if err != nil {
		return err
	}

	now := e.db.NowFunc()
	e.mu.Lock()
	e.lastUpdated = &now
	e.mu.Unlock()

	e.publish()
	return nil
}

// UpdateMonthlyBurnRate overwrites the monthly burn rate setting.
func (e *Engine) UpdateMonthlyBurnRate(ctx context.Context, amount decimal.Decimal) error {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertSetting(tx, models.Setting{Key: models.SettingMonthlyBurnRate, Value: amount})
	})
	if err != nil {
		return err
	}

	e.publish()
	return nil
}

// walletExists verifies that a wallet exists in the scope of tx.
func walletExists(tx *gorm.DB, id uuid.UUID) error {
	err := tx.First(&models.Wallet{}, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return ErrWalletNotFound
	}

	return err
}

// envelopeExists verifies that an envelope exists in the scope of tx.
func envelopeExists(tx *gorm.DB, id uuid.UUID) error {
	err := tx.First(&models.Envelope{}, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return ErrEnvelopeNotFound
	}

	return err
}

// addToBalance adjusts a wallet balance relative to its stored value.
// The update must affect exactly one row, otherwise the enclosing
// transaction is aborted.
func addToBalance(tx *gorm.DB, walletID uuid.UUID, delta decimal.Decimal) error {
	res := tx.Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrWalletNotFound
	}

	return nil
}

// addToSpent adjusts an envelope spent total relative to its stored
// value.
func addToSpent(tx *gorm.DB, envelopeID uuid.UUID, delta decimal.Decimal) error {
	res := tx.Model(&models.Envelope{}).
		Where("id = ?", envelopeID).
		Update("current_spent", gorm.Expr("current_spent + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrEnvelopeNotFound
	}

	return nil
}

func upsertRate(tx *gorm.DB, rate models.Rate) error {
	var existing models.Rate

	err := tx.First(&existing, "currency = ?", rate.Currency).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return tx.Create(&rate).Error
	}
	if err != nil {
		return err
	}

	return tx.Model(&existing).Update("rate_to_uah", rate.RateToUAH).Error
}

func upsertSetting(tx *gorm.DB, setting models.Setting) error {
	var existing models.Setting

	err := tx.First(&existing, "key = ?", setting.Key).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return tx.Create(&setting).Error
	}
	if err != nil {
		return err
	}

	return tx.Model(&existing).Update("value", setting.Value).Error
}
