package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/riven-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

type EnvelopeEditable struct {
	Name         string          `json:"name" example:"Groceries"`                            // Name of the envelope
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" example:"8000" multipleOf:"0.00000001"` // Budget limit for one month
	Icon         string          `json:"icon" example:"cart" default:""`                      // Display icon
	ColorHex     string          `json:"colorHex" example:"#4CAF50" default:""`               // Display color
}

func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		Name:         editable.Name,
		MonthlyLimit: editable.MonthlyLimit,
		Icon:         editable.Icon,
		ColorHex:     editable.ColorHex,
	}
}

// EnvelopeUpdateable are the fields a PATCH may change. The spent
// total is engine-owned and deliberately absent.
type EnvelopeUpdateable struct {
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" example:"8500" multipleOf:"0.00000001"` // New budget limit
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/envelopes/2649c965-7999-4873-ae16-89d5d5fa972e"`              // The envelope itself
	Transactions string `json:"transactions" example:"https://example.com/v1/envelopes/2649c965-7999-4873-ae16-89d5d5fa972e/transactions"` // Transactions assigned to this envelope
}

// Envelope is the representation of an envelope in API v1.
type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	CurrentSpent decimal.Decimal `json:"currentSpent" example:"120.50"` // Spent so far against the limit
	Links        EnvelopeLinks   `json:"links"`
}

func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	self := fmt.Sprintf("%s/v1/envelopes/%s", httputil.RequestHost(c), model.ID)

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			Name:         model.Name,
			MonthlyLimit: model.MonthlyLimit,
			Icon:         model.Icon,
			ColorHex:     model.ColorHex,
		},
		CurrentSpent: model.CurrentSpent,
		Links: EnvelopeLinks{
			Self:         self,
			Transactions: self + "/transactions",
		},
	}
}

type EnvelopeListResponse struct {
	Data  []Envelope `json:"data"`                                                          // List of envelopes
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // The envelope data, if the request was successful
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
