package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riven-app/backend/internal/httputil"
	"github.com/riven-app/backend/internal/models"
	"github.com/riven-app/backend/internal/types"
)

// RegisterWalletRoutes registers the routes for wallets with the
// RouterGroup that is passed.
func (co Controller) RegisterWalletRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWalletList)
		r.GET("", co.GetWallets)
		r.POST("", co.CreateWallet)
	}
	{
		r.OPTIONS("/:id", co.OptionsWalletDetail)
		r.GET("/:id", co.GetWallet)
		r.DELETE("/:id", co.DeleteWallet)
		r.GET("/:id/transactions", co.GetWalletTransactions)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallets [options]
func OptionsWalletList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wallets/{id} [options]
func (co Controller) OptionsWalletDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err := models.DB.First(&models.Wallet{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create wallet
// @Description	Creates a new wallet with its initial balance
// @Tags			Wallets
// @Accept			json
// @Produce		json
// @Success		201		{object}	WalletResponse
// @Failure		400		{object}	WalletResponse
// @Failure		500		{object}	WalletResponse
// @Param			wallet	body		WalletEditable	true	"Wallet"
// @Router			/v1/wallets [post]
func (co Controller) CreateWallet(c *gin.Context) {
	var editable WalletEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, WalletResponse{Error: &e})
		return
	}

	wallet, err := co.Engine.CreateWallet(c.Request.Context(), editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	apiResource := newWallet(c, wallet)
	c.JSON(http.StatusCreated, WalletResponse{Data: &apiResource})
}

// @Summary		Get wallets
// @Description	Returns a list of wallets
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletListResponse
// @Failure		400	{object}	WalletListResponse
// @Failure		500	{object}	WalletListResponse
// @Router			/v1/wallets [get]
// @Param			name		query	string	false	"Search by name, fuzzy"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			type		query	string	false	"Filter by type tag"
func (co Controller) GetWallets(c *gin.Context) {
	var filter WalletQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, WalletListResponse{Error: &e})
		return
	}

	queryFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(&models.Wallet{
			Currency: types.Currency(filter.Currency),
			Type:     filter.Type,
		}, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var wallets []models.Wallet
	err := q.Find(&wallets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletListResponse{Error: &e})
		return
	}

	data := make([]Wallet, 0, len(wallets))
	for _, wallet := range wallets {
		data = append(data, newWallet(c, wallet))
	}

	c.JSON(http.StatusOK, WalletListResponse{Data: data})
}

// @Summary		Get wallet
// @Description	Returns a specific wallet
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		400	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Failure		500	{object}	WalletResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/wallets/{id} [get]
func (co Controller) GetWallet(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, WalletResponse{Error: &e})
		return
	}

	var wallet models.Wallet
	err := models.DB.First(&wallet, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	apiResource := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &apiResource})
}

// @Summary		Get wallet transactions
// @Description	Returns the transactions of a specific wallet, newest first
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		404	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/wallets/{id}/transactions [get]
func (co Controller) GetWalletTransactions(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	var wallet models.Wallet
	err := models.DB.First(&wallet, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	transactions, err := wallet.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Delete wallet
// @Description	Deletes a wallet and all transactions that reference it
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/wallets/{id} [delete]
func (co Controller) DeleteWallet(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err := co.Engine.DeleteWallet(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
