// Package v1 implements the v1 API.
//
// Handlers are thin presentation adapters: validation and response
// shaping happen here, all ledger semantics live in the engine.
package v1

import (
	"github.com/riven-app/backend/internal/ledger"
	"github.com/riven-app/backend/internal/rates"
)

// Controller carries the dependencies of the v1 API handlers.
type Controller struct {
	Engine   *ledger.Engine
	Provider rates.Provider
}

func NewController(engine *ledger.Engine, provider rates.Provider) Controller {
	return Controller{
		Engine:   engine,
		Provider: provider,
	}
}
