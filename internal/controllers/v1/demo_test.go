package v1_test

import (
	"net/http"

	v1 "github.com/riven-app/backend/internal/controllers/v1"
	"github.com/riven-app/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsDemo() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/demo", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateDemoData() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/demo", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/wallets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var wallets v1.WalletListResponse
	test.DecodeResponse(suite.T(), &r, &wallets)
	assert.Len(suite.T(), wallets.Data, 3)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var envelopes v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &r, &envelopes)
	assert.Len(suite.T(), envelopes.Data, 4)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.NotEmpty(suite.T(), transactions.Data)
}

func (suite *TestSuiteStandard) TestCreateDemoDataDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/demo", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
