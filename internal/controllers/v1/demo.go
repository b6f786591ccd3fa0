package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
)

// RegisterDemoRoutes registers the routes for demo data with the
// RouterGroup that is passed.
func (co Controller) RegisterDemoRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDemo)
	r.POST("", co.CreateDemoData)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Demo
// @Success		204
// @Router			/v1/demo [options]
func OptionsDemo(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Inject demo data
// @Description	Creates a set of demo wallets, envelopes and randomized transactions
// @Tags			Demo
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/demo [post]
func (co Controller) CreateDemoData(c *gin.Context) {
	err := co.Engine.InjectDemoData(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
