package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/riven-app/backend/internal/models"
	"github.com/riven-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

type WalletEditable struct {
	Name     string          `json:"name" example:"Monobank White"`                          // Name of the wallet
	Currency types.Currency  `json:"currency" example:"UAH"`                                 // Currency the balance is denominated in
	Balance  decimal.Decimal `json:"balance" example:"12500" multipleOf:"0.00000001"`        // Initial balance
	Type     string          `json:"type" example:"Debit" default:""`                        // Free-form type tag
	ColorHex string          `json:"colorHex" example:"#2196F3" default:""`                  // Display color
}

func (editable WalletEditable) model() models.Wallet {
	return models.Wallet{
		Name:     editable.Name,
		Currency: editable.Currency,
		Balance:  editable.Balance,
		Type:     editable.Type,
		ColorHex: editable.ColorHex,
	}
}

type WalletLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/wallets/d430d7c3-d14c-4712-9336-ee56965a6673"`              // The wallet itself
	Transactions string `json:"transactions" example:"https://example.com/v1/wallets/d430d7c3-d14c-4712-9336-ee56965a6673/transactions"` // Transactions of this wallet
}

// Wallet is the representation of a wallet in API v1.
type Wallet struct {
	models.DefaultModel
	WalletEditable
	Links WalletLinks `json:"links"`
}

func newWallet(c *gin.Context, model models.Wallet) Wallet {
	self := fmt.Sprintf("%s/v1/wallets/%s", httputil.RequestHost(c), model.ID)

	return Wallet{
		DefaultModel: model.DefaultModel,
		WalletEditable: WalletEditable{
			Name:     model.Name,
			Currency: model.Currency,
			Balance:  model.Balance,
			Type:     model.Type,
			ColorHex: model.ColorHex,
		},
		Links: WalletLinks{
			Self:         self,
			Transactions: self + "/transactions",
		},
	}
}

type WalletListResponse struct {
	Data  []Wallet `json:"data"`                                                          // List of wallets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type WalletResponse struct {
	Data  *Wallet `json:"data"`                                                          // The wallet data, if the request was successful
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type WalletQueryFilter struct {
	Name     string `form:"name" filterField:"false"` // By name
	Currency string `form:"currency"`                 // By currency
	Type     string `form:"type"`                     // By type tag
}
