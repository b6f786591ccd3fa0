package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

type SimulationEditable struct {
	TargetUSDRate decimal.Decimal `json:"targetUsdRate" example:"84" multipleOf:"0.00000001"` // USD rate the simulation should produce
}

type Simulation struct {
	Multiplier decimal.Decimal `json:"multiplier" example:"2"` // Resulting simulation multiplier
}

type SimulationResponse struct {
	Data  *Simulation `json:"data"`                                                   // The simulation state, if the request was successful
	Error *string     `json:"error" example:"the target rate must be positive"`       // The error, if any occurred
}

var errTargetRateNotPositive = "the target USD rate must be positive"

// RegisterSimulationRoutes registers the routes for the crisis
// simulation with the RouterGroup that is passed.
func (co Controller) RegisterSimulationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSimulation)
	r.PUT("", co.PutSimulation)
	r.DELETE("", co.DeleteSimulation)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Simulation
// @Success		204
// @Router			/v1/simulation [options]
func OptionsSimulation(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// @Summary		Simulate crisis
// @Description	Sets the simulation multiplier so that the effective USD rate equals the target. Process-scoped, never persisted
// @Tags			Simulation
// @Accept			json
// @Produce		json
// @Success		200			{object}	SimulationResponse
// @Failure		400			{object}	SimulationResponse
// @Param			simulation	body		SimulationEditable	true	"Simulation"
// @Router			/v1/simulation [put]
func (co Controller) PutSimulation(c *gin.Context) {
	var editable SimulationEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SimulationResponse{Error: &e})
		return
	}

	if !editable.TargetUSDRate.IsPositive() {
		c.JSON(http.StatusBadRequest, SimulationResponse{Error: &errTargetRateNotPositive})
		return
	}

	co.Engine.SimulateCrisis(editable.TargetUSDRate)

	c.JSON(http.StatusOK, SimulationResponse{Data: &Simulation{Multiplier: co.Engine.Multiplier()}})
}

// @Summary		Reset simulation
// @Description	Returns the engine to real mode with a multiplier of 1
// @Tags			Simulation
// @Success		204
// @Router			/v1/simulation [delete]
func (co Controller) DeleteSimulation(c *gin.Context) {
	co.Engine.ResetSimulation()
	c.Status(http.StatusNoContent)
}
