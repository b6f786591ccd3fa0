package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

type BurnRateEditable struct {
	MonthlyBurnRate decimal.Decimal `json:"monthlyBurnRate" example:"30000" multipleOf:"0.00000001"` // Planned monthly spending in UAH
}

type BurnRateResponse struct {
	Data  *BurnRateEditable `json:"data"`                                                  // The burn rate, if the request was successful
	Error *string           `json:"error" example:"there is no setting matching your query"` // The error, if any occurred
}

// RegisterSettingRoutes registers the routes for settings with the
// RouterGroup that is passed.
func (co Controller) RegisterSettingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/burn-rate", OptionsBurnRate)
	r.GET("/burn-rate", co.GetBurnRate)
	r.PATCH("/burn-rate", co.UpdateBurnRate)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/burn-rate [options]
func OptionsBurnRate(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get burn rate
// @Description	Returns the configured monthly burn rate, or the default when none is set
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	BurnRateResponse
// @Failure		500	{object}	BurnRateResponse
// @Router			/v1/settings/burn-rate [get]
func (co Controller) GetBurnRate(c *gin.Context) {
	burnRate, err := co.Engine.MonthlyBurnRate(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BurnRateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BurnRateResponse{Data: &BurnRateEditable{MonthlyBurnRate: burnRate}})
}

// @Summary		Update burn rate
// @Description	Overwrites the configured monthly burn rate
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	BurnRateResponse
// @Failure		400			{object}	BurnRateResponse
// @Failure		500			{object}	BurnRateResponse
// @Param			burnRate	body		BurnRateEditable	true	"Burn rate"
// @Router			/v1/settings/burn-rate [patch]
func (co Controller) UpdateBurnRate(c *gin.Context) {
	var editable BurnRateEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BurnRateResponse{Error: &e})
		return
	}

	err := co.Engine.UpdateMonthlyBurnRate(c.Request.Context(), editable.MonthlyBurnRate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BurnRateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BurnRateResponse{Data: &editable})
}
