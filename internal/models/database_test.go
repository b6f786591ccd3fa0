package models_test

import (
	"github.com/riven-app/backend/internal/models"
	"github.com/riven-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/path/does/not/exist/database")
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestQueryErrorNotFound() {
	var wallet models.Wallet
	err := models.DB.First(&wallet, "id = ?", "b4b22dfc-bcd9-4aad-9b5c-6f1e2b1f3a5a").Error

	suite.Assert().NotNil(err)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRateCurrencyUnique() {
	_ = suite.createTestRate(models.Rate{
		Currency:  types.CurrencyUSD,
		RateToUAH: decimal.NewFromFloat(41.5),
	})

	err := models.DB.Create(&models.Rate{
		Currency:  types.CurrencyUSD,
		RateToUAH: decimal.NewFromFloat(43.1),
	}).Error

	suite.Assert().NotNil(err)
	suite.Assert().ErrorIs(err, models.ErrRateNotUnique)
}

func (suite *TestSuiteStandard) TestSettingKeyUnique() {
	err := models.DB.Create(&models.Setting{
		Key:   models.SettingMonthlyBurnRate,
		Value: decimal.NewFromInt(30000),
	}).Error
	suite.Assert().Nil(err)

	err = models.DB.Create(&models.Setting{
		Key:   models.SettingMonthlyBurnRate,
		Value: decimal.NewFromInt(25000),
	}).Error

	suite.Assert().NotNil(err)
	suite.Assert().ErrorIs(err, models.ErrSettingNotUnique)
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var wallets []models.Wallet
	err := models.DB.Find(&wallets).Error

	suite.Assert().NotNil(err)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
