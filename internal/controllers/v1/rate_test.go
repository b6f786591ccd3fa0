package v1_test

import (
	"context"
	"errors"
	"net/http"

	v1 "github.com/riven-app/backend/internal/controllers/v1"
	"github.com/riven-app/backend/internal/rates"
	"github.com/riven-app/backend/internal/types"
	"github.com/riven-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsRates() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/rates", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetRatesDefaults() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/rates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RateListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Nil(suite.T(), response.RatesUpdatedAt)

	expected := map[types.Currency]decimal.Decimal{
		types.CurrencyUAH: decimal.NewFromInt(1),
		types.CurrencyUSD: decimal.NewFromInt(42),
		types.CurrencyEUR: decimal.NewFromInt(45),
		types.CurrencyBTC: decimal.NewFromInt(3804200),
	}

	assert.Len(suite.T(), response.Data, len(expected))
	for _, rate := range response.Data {
		assert.True(suite.T(), rate.RateToUAH.Equal(expected[rate.Currency]), "%s: %s", rate.Currency, rate.RateToUAH)
		assert.True(suite.T(), rate.EffectiveRate.Equal(expected[rate.Currency]), "%s: %s", rate.Currency, rate.EffectiveRate)
	}
}

func (suite *TestSuiteStandard) TestRefreshRates() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/rates/refresh", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/rates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RateListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.NotNil(suite.T(), response.RatesUpdatedAt)

	for _, rate := range response.Data {
		switch rate.Currency {
		case types.CurrencyUSD:
			assert.True(suite.T(), rate.RateToUAH.Equal(decimal.NewFromFloat(41.7)), rate.RateToUAH)
		case types.CurrencyEUR:
			assert.True(suite.T(), rate.RateToUAH.Equal(decimal.NewFromFloat(45.2)), rate.RateToUAH)
		}
	}
}

func (suite *TestSuiteStandard) TestRefreshRatesProviderFailure() {
	suite.controller.Provider = rates.ProviderFunc(func(_ context.Context) ([]rates.Quote, error) {
		return nil, errors.New("connection reset by peer")
	})

	// Provider failures keep the previous rates and do not fail the request
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/rates/refresh", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/rates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RateListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.RatesUpdatedAt)
}

func (suite *TestSuiteStandard) TestGetRatesUnderSimulation() {
	r := test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/simulation", v1.SimulationEditable{
		TargetUSDRate: decimal.NewFromInt(84),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/rates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RateListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	for _, rate := range response.Data {
		switch rate.Currency {
		case types.CurrencyUSD:
			assert.True(suite.T(), rate.EffectiveRate.Equal(decimal.NewFromInt(84)), rate.EffectiveRate)
		case types.CurrencyEUR:
			assert.True(suite.T(), rate.EffectiveRate.Equal(decimal.NewFromInt(90)), rate.EffectiveRate)
		default:
			// UAH and BTC are never scaled
			assert.True(suite.T(), rate.EffectiveRate.Equal(rate.RateToUAH), "%s: %s", rate.Currency, rate.EffectiveRate)
		}
	}
}

func (suite *TestSuiteStandard) TestRatesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/rates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
