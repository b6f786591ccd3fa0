package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/riven-app/backend/internal/models"
	riven_uuid "github.com/riven-app/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable are the fields consumers set when recording a
// ledger entry. The date is stamped by the engine.
type TransactionEditable struct {
	WalletID   uuid.UUID       `json:"walletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`              // ID of the wallet the entry belongs to
	Amount     decimal.Decimal `json:"amount" example:"-120.50" multipleOf:"0.00000001"`                     // Signed amount, negative for expenses
	Category   string          `json:"category" example:"Groceries" default:""`                              // Free-form category
	EnvelopeID *uuid.UUID      `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`            // Optional envelope to count the expense against
}

type TransferRequest struct {
	FromWalletID uuid.UUID       `json:"fromWalletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // Wallet to debit
	ToWalletID   uuid.UUID       `json:"toWalletId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`   // Wallet to credit
	Amount       decimal.Decimal `json:"amount" example:"200" multipleOf:"0.00000001"`                // Amount, must be positive
}

type ExchangeRequest struct {
	FromWalletID uuid.UUID       `json:"fromWalletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // Wallet to debit
	ToWalletID   uuid.UUID       `json:"toWalletId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`   // Wallet to credit
	FromAmount   decimal.Decimal `json:"fromAmount" example:"100" multipleOf:"0.00000001"`            // Amount debited, must be positive
	ToAmount     decimal.Decimal `json:"toAmount" example:"4200" multipleOf:"0.00000001"`             // Amount credited, must be positive
}

type TransactionLinks struct {
	Wallet   string  `json:"wallet" example:"https://example.com/v1/wallets/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`    // The wallet of this entry
	Envelope *string `json:"envelope" example:"https://example.com/v1/envelopes/2649c965-7999-4873-ae16-89d5d5fa972e"` // The envelope, if one is linked
}

// Transaction is the representation of a ledger entry in API v1.
type Transaction struct {
	models.DefaultModel
	Date       time.Time        `json:"date" example:"2024-03-08T18:43:00.271152Z"`
	Amount     decimal.Decimal  `json:"amount" example:"-120.50"`
	Category   string           `json:"category" example:"Groceries"`
	WalletID   uuid.UUID        `json:"walletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	EnvelopeID *uuid.UUID       `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	Links      TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	host := httputil.RequestHost(c)

	var envelopeLink *string
	if model.EnvelopeID != nil {
		link := fmt.Sprintf("%s/v1/envelopes/%s", host, model.EnvelopeID)
		envelopeLink = &link
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		Date:         model.Date,
		Amount:       model.Amount,
		Category:     model.Category,
		WalletID:     model.WalletID,
		EnvelopeID:   model.EnvelopeID,
		Links: TransactionLinks{
			Wallet:   fmt.Sprintf("%s/v1/wallets/%s", host, model.WalletID),
			Envelope: envelopeLink,
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of ledger entries
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Category  string          `form:"category" filterField:"false"`  // By category, glob patterns are supported
	Direction string          `form:"direction" filterField:"false"` // "income" or "expense"
	Wallet    riven_uuid.UUID `form:"wallet" filterField:"false"`    // By wallet ID
	Envelope  riven_uuid.UUID `form:"envelope" filterField:"false"`  // By envelope ID
	Limit     int             `form:"limit" filterField:"false"`     // Maximum number of entries, newest first. Defaults to all
}
