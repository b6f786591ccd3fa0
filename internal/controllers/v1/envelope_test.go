package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/riven-app/backend/internal/controllers/v1"
	"github.com/riven-app/backend/internal/types"
	"github.com/riven-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsEnvelope() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/envelopes", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsEnvelopeDetail() {
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Options test"})

	r := test.Request(suite.controller, suite.T(), http.MethodOptions, envelope.Data.Links.Self, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateEnvelope() {
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{
		Name:         "Groceries",
		MonthlyLimit: decimal.NewFromInt(8000),
		Icon:         "cart",
		ColorHex:     "#4CAF50",
	})

	assert.Equal(suite.T(), "Groceries", envelope.Data.Name)
	assert.True(suite.T(), envelope.Data.MonthlyLimit.Equal(decimal.NewFromInt(8000)), envelope.Data.MonthlyLimit)

	// The spent total is engine-owned and always starts at zero
	assert.True(suite.T(), envelope.Data.CurrentSpent.IsZero(), envelope.Data.CurrentSpent)
}

func (suite *TestSuiteStandard) TestCreateEnvelopeInvalidBody() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/envelopes", `{ invalid json`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetEnvelopes() {
	_ = suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Fuel"})
	_ = suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Fun"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetEnvelope() {
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Donations", MonthlyLimit: decimal.NewFromInt(5000)})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), envelope.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetEnvelopeInvalidID() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/envelopes/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the specified resource ID is not a valid UUID", *response.Error)
}

func (suite *TestSuiteStandard) TestGetEnvelopeNotFound() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/envelopes/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateEnvelope() {
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Groceries", MonthlyLimit: decimal.NewFromInt(8000)})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, envelope.Data.Links.Self, v1.EnvelopeUpdateable{
		MonthlyLimit: decimal.NewFromInt(8500),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.MonthlyLimit.Equal(decimal.NewFromInt(8500)), response.Data.MonthlyLimit)
	assert.Equal(suite.T(), "Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeNotFound() {
	r := test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/envelopes/%s", uuid.New()), v1.EnvelopeUpdateable{
		MonthlyLimit: decimal.NewFromInt(100),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEnvelopeTracksSpending() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(1000)})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Groceries", MonthlyLimit: decimal.NewFromInt(8000)})

	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromFloat(-120.50), Category: "Groceries", EnvelopeID: &envelope.Data.ID})

	// Income never counts against the envelope
	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(500), Category: "Salary", EnvelopeID: &envelope.Data.ID})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.CurrentSpent.Equal(decimal.NewFromFloat(120.50)), response.Data.CurrentSpent)
}

func (suite *TestSuiteStandard) TestGetEnvelopeTransactions() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(1000)})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Fuel", MonthlyLimit: decimal.NewFromInt(3000)})

	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(-900), Category: "Fuel", EnvelopeID: &envelope.Data.ID})
	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(-50), Category: "Coffee"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, envelope.Data.Links.Transactions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(-900)), response.Data[0].Amount)
	}
}

func (suite *TestSuiteStandard) TestDeleteEnvelope() {
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Doomed"})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteEnvelopeKeepsTransactions() {
	wallet := suite.createTestWallet(v1.WalletEditable{Name: "Card", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(500)})
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Fun"})

	suite.createTestTransaction(v1.TransactionEditable{WalletID: wallet.Data.ID, Amount: decimal.NewFromInt(-75), Category: "Cinema", EnvelopeID: &envelope.Data.ID})

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The ledger entry survives, it just loses its envelope link
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assert.Nil(suite.T(), response.Data[0].EnvelopeID)
		assert.Nil(suite.T(), response.Data[0].Links.Envelope)
	}
}

func (suite *TestSuiteStandard) TestDeleteEnvelopeNotFound() {
	r := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/envelopes/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
