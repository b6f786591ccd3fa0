package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

// Dashboard is the aggregate snapshot of API v1.
type Dashboard struct {
	NetWorthUAH          decimal.Decimal `json:"netWorthUah" example:"1420"`          // All wallet balances valued in UAH
	MonthlyBurnRate      decimal.Decimal `json:"monthlyBurnRate" example:"30000"`     // Configured monthly spending
	RunwayMonths         decimal.Decimal `json:"runwayMonths" example:"3"`            // Months the net worth sustains the burn rate
	EffectiveUSDRate     decimal.Decimal `json:"effectiveUsdRate" example:"42"`       // USD rate after the simulation multiplier
	EffectiveEURRate     decimal.Decimal `json:"effectiveEurRate" example:"45"`       // EUR rate after the simulation multiplier
	SimulationMultiplier decimal.Decimal `json:"simulationMultiplier" example:"1"`    // Current crisis simulation multiplier
	RatesUpdatedAt       *time.Time      `json:"ratesUpdatedAt" example:"2024-03-08T18:43:00.271152Z"` // Last successful rate refresh, null before the first one
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                // The dashboard data, if the request was successful
	Error *string    `json:"error" example:"there is no wallet matching your query"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns one consistent snapshot of all derived aggregates
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	summary, err := co.Engine.Summarize(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &Dashboard{
		NetWorthUAH:          summary.NetWorthUAH,
		MonthlyBurnRate:      summary.MonthlyBurnRate,
		RunwayMonths:         summary.RunwayMonths,
		EffectiveUSDRate:     summary.EffectiveUSDRate,
		EffectiveEURRate:     summary.EffectiveEURRate,
		SimulationMultiplier: summary.SimulationMultiplier,
		RatesUpdatedAt:       summary.RatesUpdatedAt,
	}})
}
