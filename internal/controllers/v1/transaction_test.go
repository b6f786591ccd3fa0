package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/riven-app/backend/internal/controllers/v1"
	"github.com/riven-app/backend/internal/types"
	"github.com/riven-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsTransaction() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsTransfer() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/transactions/transfer", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(1000)})

	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromFloat(-120.50), Category: "Groceries"})

	// The wallet balance moves with the ledger entry
	r := test.Request(suite.controller, suite.T(), http.MethodGet, wallet.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(879.50)), response.Data.Balance)
}

func (suite *TestSuiteStandard) TestCreateTransactionWalletNotFound() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/transactions", v1.TransactionEditable{
		WalletID: uuid.New(),
		Amount:   decimal.NewFromInt(-10),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateTransactionEnvelopeNotFound() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH})
	missing := uuid.New()

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/transactions", v1.TransactionEditable{
		WalletID:   wallet.Data.ID,
		Amount:     decimal.NewFromInt(-10),
		EnvelopeID: &missing,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalidBody() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/transactions", `{ invalid json`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateTransfer() {
	from := suite.createTestWallet(v1.WalletEditable{Name: "Source", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(500)})
	to := suite.createTestWallet(v1.WalletEditable{Name: "Destination", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(100)})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/transactions/transfer", v1.TransferRequest{
		FromWalletID: from.Data.ID,
		ToWalletID:   to.Data.ID,
		Amount:       decimal.NewFromInt(150),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var fromResponse, toResponse v1.WalletResponse

	r = test.Request(suite.controller, suite.T(), http.MethodGet, from.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &fromResponse)
	assert.True(suite.T(), fromResponse.Data.Balance.Equal(decimal.NewFromInt(350)), fromResponse.Data.Balance)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, to.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &toResponse)
	assert.True(suite.T(), toResponse.Data.Balance.Equal(decimal.NewFromInt(250)), toResponse.Data.Balance)
}

func (suite *TestSuiteStandard) TestCreateTransferValidation() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Only", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(500)})
	other := suite.createTestWallet(v1.WalletEditable{Name: "Other", Currency: types.CurrencyUAH})

	tests := []struct {
		name    string
		request v1.TransferRequest
		status  int
	}{
		{"Same wallet", v1.TransferRequest{FromWalletID: wallet.Data.ID, ToWalletID: wallet.Data.ID, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
		{"Negative amount", v1.TransferRequest{FromWalletID: wallet.Data.ID, ToWalletID: other.Data.ID, Amount: decimal.NewFromInt(-10)}, http.StatusBadRequest},
		{"Zero amount", v1.TransferRequest{FromWalletID: wallet.Data.ID, ToWalletID: other.Data.ID}, http.StatusBadRequest},
		{"Missing destination", v1.TransferRequest{FromWalletID: wallet.Data.ID, ToWalletID: uuid.New(), Amount: decimal.NewFromInt(10)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/transactions/transfer", tt.request)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExchange() {
	from := suite.createTestWallet(v1.WalletEditable{Name: "Dollars", Currency: types.CurrencyUSD, Balance: decimal.NewFromInt(200)})
	to := suite.createTestWallet(v1.WalletEditable{Name: "Hryvnia", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(0)})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/transactions/exchange", v1.ExchangeRequest{
		FromWalletID: from.Data.ID,
		ToWalletID:   to.Data.ID,
		FromAmount:   decimal.NewFromInt(100),
		ToAmount:     decimal.NewFromInt(4200),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var fromResponse, toResponse v1.WalletResponse

	r = test.Request(suite.controller, suite.T(), http.MethodGet, from.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &fromResponse)
	assert.True(suite.T(), fromResponse.Data.Balance.Equal(decimal.NewFromInt(100)), fromResponse.Data.Balance)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, to.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &toResponse)
	assert.True(suite.T(), toResponse.Data.Balance.Equal(decimal.NewFromInt(4200)), toResponse.Data.Balance)
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(1000)})

	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(-100), Category: "Groceries"})
	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(250), Category: "Salary"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilter() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(1000)})
	other := suite.createTestWallet(v1.WalletEditable{Name: "Cash", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(200)})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Groceries", MonthlyLimit: decimal.NewFromInt(8000)})

	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(-100), Category: "Groceries: Supermarket", EnvelopeID: &envelope.Data.ID})
	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(-50), Category: "Groceries: Market", EnvelopeID: &envelope.Data.ID})
	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(250), Category: "Salary"})
	suite.createTestTransaction(v1.TransactionEditable{WalletID: other.Data.ID, Amount: decimal.NewFromInt(-5), Category: "Coffee"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category glob", "category=Groceries*", 2},
		{"Category exact", "category=Salary", 1},
		{"Direction income", "direction=income", 1},
		{"Direction expense", "direction=expense", 3},
		{"Wallet", fmt.Sprintf("wallet=%s", wallet.Data.ID), 3},
		{"Envelope", fmt.Sprintf("envelope=%s", envelope.Data.ID), 2},
		{"Limit", "limit=2", 2},
		{"Combined", fmt.Sprintf("direction=expense&wallet=%s", wallet.Data.ID), 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidDirection() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/transactions?direction=sideways", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the direction parameter must be income or expense", *response.Error)
}

func (suite *TestSuiteStandard) TestTransactionsImmutable() {
	// The ledger is append-only: there are no update or delete routes
	// for single entries.
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(100)})
	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(-10)})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	url := fmt.Sprintf("http://example.com/v1/transactions/%s", response.Data[0].ID)

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound, http.StatusMethodNotAllowed)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound, http.StatusMethodNotAllowed)
}
