package v1

import (
	"errors"
	"net/http"

	"github.com/riven-app/backend/internal/ledger"
	"github.com/riven-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an engine or database
// error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) ||
		errors.Is(err, ledger.ErrWalletNotFound) ||
		errors.Is(err, ledger.ErrEnvelopeNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
