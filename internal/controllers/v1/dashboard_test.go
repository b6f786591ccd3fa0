package v1_test

import (
	"net/http"

	v1 "github.com/riven-app/backend/internal/controllers/v1"
	"github.com/riven-app/backend/internal/types"
	"github.com/riven-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsDashboard() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/dashboard", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetDashboardEmpty() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.NetWorthUAH.IsZero(), response.Data.NetWorthUAH)
	assert.True(suite.T(), response.Data.MonthlyBurnRate.Equal(decimal.NewFromInt(30000)), response.Data.MonthlyBurnRate)
	assert.True(suite.T(), response.Data.RunwayMonths.IsZero(), response.Data.RunwayMonths)
	assert.True(suite.T(), response.Data.EffectiveUSDRate.Equal(decimal.NewFromInt(42)), response.Data.EffectiveUSDRate)
	assert.True(suite.T(), response.Data.EffectiveEURRate.Equal(decimal.NewFromInt(45)), response.Data.EffectiveEURRate)
	assert.True(suite.T(), response.Data.SimulationMultiplier.Equal(decimal.NewFromInt(1)), response.Data.SimulationMultiplier)
	assert.Nil(suite.T(), response.Data.RatesUpdatedAt)
}

func (suite *TestSuiteStandard) TestGetDashboard() {
	_ = suite.createTestWallet(v1.WalletEditable{Name: "Hryvnia", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(1000)})
	_ = suite.createTestWallet(v1.WalletEditable{Name: "Dollars", Currency: types.CurrencyUSD, Balance: decimal.NewFromInt(10)})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, "http://example.com/v1/settings/burn-rate", v1.BurnRateEditable{
		MonthlyBurnRate: decimal.NewFromInt(710),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// 1000 UAH + 10 USD at the default rate of 42
	assert.True(suite.T(), response.Data.NetWorthUAH.Equal(decimal.NewFromInt(1420)), response.Data.NetWorthUAH)
	assert.True(suite.T(), response.Data.RunwayMonths.Equal(decimal.NewFromInt(2)), response.Data.RunwayMonths)
}

func (suite *TestSuiteStandard) TestGetDashboardUnderSimulation() {
	_ = suite.createTestWallet(v1.WalletEditable{Name: "Hryvnia", Currency: types.CurrencyUAH, Balance: decimal.NewFromInt(1000)})
	_ = suite.createTestWallet(v1.WalletEditable{Name: "Dollars", Currency: types.CurrencyUSD, Balance: decimal.NewFromInt(10)})

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/simulation", v1.SimulationEditable{
		TargetUSDRate: decimal.NewFromInt(84),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.NetWorthUAH.Equal(decimal.NewFromInt(1840)), response.Data.NetWorthUAH)
	assert.True(suite.T(), response.Data.EffectiveUSDRate.Equal(decimal.NewFromInt(84)), response.Data.EffectiveUSDRate)
	assert.True(suite.T(), response.Data.EffectiveEURRate.Equal(decimal.NewFromInt(90)), response.Data.EffectiveEURRate)
	assert.True(suite.T(), response.Data.SimulationMultiplier.Equal(decimal.NewFromInt(2)), response.Data.SimulationMultiplier)
}

func (suite *TestSuiteStandard) TestGetDashboardDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
