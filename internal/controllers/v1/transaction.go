package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/riven-app/backend/internal/models"
	riven_uuid "github.com/riven-app/backend/internal/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

var transactionDirections = []string{"income", "expense"}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}
	{
		r.OPTIONS("/transfer", OptionsTransfer)
		r.POST("/transfer", co.CreateTransfer)
	}
	{
		r.OPTIONS("/exchange", OptionsExchange)
		r.POST("/exchange", co.CreateExchange)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/transfer [options]
func OptionsTransfer(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/exchange [options]
func OptionsExchange(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Record transaction
// @Description	Records a ledger entry and adjusts the wallet balance atomically
// @Tags			Transactions
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err := co.Engine.RecordTransaction(c.Request.Context(), editable.WalletID, editable.Amount, editable.Category, editable.EnvelopeID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Transfer between wallets
// @Description	Moves an amount between two wallets, writing a debit and a credit entry atomically
// @Tags			Transactions
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transfer	body		TransferRequest	true	"Transfer"
// @Router			/v1/transactions/transfer [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var request TransferRequest

	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err := co.Engine.Transfer(c.Request.Context(), request.FromWalletID, request.ToWalletID, request.Amount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Exchange between wallets
// @Description	Converts between two wallets with caller-specified debit and credit amounts
// @Tags			Transactions
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			exchange	body		ExchangeRequest	true	"Exchange"
// @Router			/v1/transactions/exchange [post]
func (co Controller) CreateExchange(c *gin.Context) {
	var request ExchangeRequest

	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err := co.Engine.Exchange(c.Request.Context(), request.FromWalletID, request.ToWalletID, request.FromAmount, request.ToAmount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get transactions
// @Description	Returns a list of ledger entries, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			category	query	string	false	"Filter by category, glob patterns are supported"
// @Param			direction	query	string	false	"Filter by direction, income or expense"
// @Param			wallet		query	string	false	"Filter by wallet ID"
// @Param			envelope	query	string	false	"Filter by envelope ID"
// @Param			limit		query	int		false	"Maximum number of entries returned, newest first. Defaults to all"
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	if filter.Direction != "" && !slices.Contains(transactionDirections, filter.Direction) {
		e := "the direction parameter must be income or expense"
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	q := models.DB.Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if filter.Wallet != riven_uuid.Nil {
		q = q.Where(&models.Transaction{WalletID: filter.Wallet.UUID})
	}

	if filter.Envelope != riven_uuid.Nil {
		q = q.Where("envelope_id = ?", filter.Envelope.UUID)
	}

	switch filter.Direction {
	case "income":
		q = q.Where("amount > 0")
	case "expense":
		q = q.Where("amount < 0")
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	// Category globbing cannot be pushed into SQL, filter here.
	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filter.Category != "" && !glob.Glob(filter.Category, transaction.Category) {
			continue
		}

		data = append(data, newTransaction(c, transaction))

		if filter.Limit > 0 && len(data) == filter.Limit {
			break
		}
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}
