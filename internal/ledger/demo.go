package ledger

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/riven-app/backend/internal/models"
	"github.com/riven-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// InjectDemoData seeds the ledger with a set of demo wallets and
// envelopes plus a week of randomized transactions. The transactions
// are written through the regular atomic paths so that balances and
// envelope spend totals stay consistent with the ledger.
func (e *Engine) InjectDemoData(ctx context.Context) error {
	random := rand.New(rand.NewSource(time.Now().UnixMilli()))

	wallets := []models.Wallet{
		{Name: "Monobank White", Currency: types.CurrencyUAH, Balance: decimal.NewFromFloat(12500), Type: "Debit", ColorHex: "#2196F3"},
		{Name: "Cash Stash", Currency: types.CurrencyUSD, Balance: decimal.NewFromFloat(450), Type: "Cash", ColorHex: "#4CAF50"},
		{Name: "Crypto", Currency: types.CurrencyBTC, Balance: decimal.NewFromFloat(0.05), Type: "Wallet", ColorHex: "#FF9800"},
	}

	envelopes := []models.Envelope{
		{Name: "Groceries", MonthlyLimit: decimal.NewFromInt(8000), Icon: "ShoppingBasket", ColorHex: "#4CAF50"},
		{Name: "Fuel", MonthlyLimit: decimal.NewFromInt(3000), Icon: "LocalGasStation", ColorHex: "#FF9800"},
		{Name: "Fun", MonthlyLimit: decimal.NewFromInt(2000), Icon: "Celebration", ColorHex: "#E91E63"},
		{Name: "Donations", MonthlyLimit: decimal.NewFromInt(5000), Icon: "VolunteerActivism", ColorHex: "#2196F3"},
	}

	for i, wallet := range wallets {
		created, err := e.CreateWallet(ctx, wallet)
		if err != nil {
			return err
		}
		wallets[i] = created
	}

	for i, envelope := range envelopes {
		created, err := e.CreateEnvelope(ctx, envelope)
		if err != nil {
			return err
		}
		envelopes[i] = created
	}

	for i := 0; i < 15; i++ {
		wallet := wallets[random.Intn(len(wallets))]
		isExpense := random.Intn(2) == 0

		var amount decimal.Decimal
		if isExpense {
			amount = decimal.NewFromInt(int64(50 + random.Intn(1000))).Neg()
		} else {
			amount = decimal.NewFromInt(int64(1000 + random.Intn(5000)))
		}

		category := "Salary"
		var envelopeID *uuid.UUID
		if isExpense {
			envelope := envelopes[random.Intn(len(envelopes))]
			category = envelope.Name
			envelopeID = &envelope.ID
		}

		err := e.RecordTransaction(ctx, wallet.ID, amount, category, envelopeID)
		if err != nil {
			return err
		}
	}

	return nil
}
