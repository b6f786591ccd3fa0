package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/riven-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Rate is the representation of a currency rate in API v1.
type Rate struct {
	Currency      types.Currency  `json:"currency" example:"USD"`               // Currency code
	RateToUAH     decimal.Decimal `json:"rateToUah" example:"42"`               // Stored (or default) quote in UAH
	EffectiveRate decimal.Decimal `json:"effectiveRate" example:"84"`           // Quote after the simulation multiplier
}

type RateListResponse struct {
	Data           []Rate     `json:"data"`                                                   // Rates for all known currencies
	RatesUpdatedAt *time.Time `json:"ratesUpdatedAt" example:"2024-03-08T18:43:00.271152Z"`   // Last successful refresh, null before the first one
	Error          *string    `json:"error" example:"there is no rate matching your query"`   // The error, if any occurred
}

// RegisterRateRoutes registers the routes for rates with the
// RouterGroup that is passed.
func (co Controller) RegisterRateRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRateList)
		r.GET("", co.GetRates)
	}
	{
		r.OPTIONS("/refresh", OptionsRateRefresh)
		r.POST("/refresh", co.RefreshRates)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rates
// @Success		204
// @Router			/v1/rates [options]
func OptionsRateList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rates
// @Success		204
// @Router			/v1/rates/refresh [options]
func OptionsRateRefresh(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get rates
// @Description	Returns the stored and effective rates for all known currencies
// @Tags			Rates
// @Produce		json
// @Success		200	{object}	RateListResponse
// @Failure		500	{object}	RateListResponse
// @Router			/v1/rates [get]
func (co Controller) GetRates(c *gin.Context) {
	data := make([]Rate, 0, len(types.KnownCurrencies()))

	for _, currency := range types.KnownCurrencies() {
		stored, err := co.Engine.StoredRate(c.Request.Context(), currency)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), RateListResponse{Error: &e})
			return
		}

		effective, err := co.Engine.EffectiveRate(c.Request.Context(), currency)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), RateListResponse{Error: &e})
			return
		}

		data = append(data, Rate{
			Currency:      currency,
			RateToUAH:     stored,
			EffectiveRate: effective,
		})
	}

	c.JSON(http.StatusOK, RateListResponse{
		Data:           data,
		RatesUpdatedAt: co.Engine.RatesUpdatedAt(),
	})
}

// @Summary		Refresh rates
// @Description	Pulls current quotes from the rate provider. Provider failures keep the stored rates and still return 204
// @Tags			Rates
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/rates/refresh [post]
func (co Controller) RefreshRates(c *gin.Context) {
	err := co.Engine.RefreshRates(c.Request.Context(), co.Provider)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
