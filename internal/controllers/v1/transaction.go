package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/ledger"
	"github.com/pennywise-app/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// parsePage parses the page query parameter. Everything that does not
// parse to a positive number selects the first page.
func parsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// @Summary		Get transactions
// @Description	Returns one page of the transactions of the logged in user, most recent first. With startDate and endDate, only transactions within the range are considered.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			kind		query	string	true	"Transaction kind, 'expense' or 'income'"
// @Param			page		query	int		false	"The page to return, 1-based. Defaults to 1."
// @Param			startDate	query	string	false	"First day of the date range in YYYY-MM-DD format. Must be used together with endDate."
// @Param			endDate		query	string	false	"Last day of the date range in YYYY-MM-DD format, inclusive. Must be used together with startDate."
func GetTransactions(c *gin.Context) {
	service := ledger.NewService(models.DB)

	kind := models.TransactionKind(c.Query("kind"))
	page := parsePage(c.Query("page"))

	var result ledger.Page
	var err error

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			e := errDateRangeIncomplete.Error()
			c.JSON(status(errDateRangeIncomplete), TransactionListResponse{Error: &e})
			return
		}

		var start, end time.Time
		start, err = time.Parse("2006-01-02", startDate)
		if err == nil {
			end, err = time.Parse("2006-01-02", endDate)
		}
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionListResponse{Error: &e})
			return
		}

		result, err = service.ListByDateRange(currentUser(c), kind, start, end, page)
	} else {
		result, err = service.ListByPage(currentUser(c), kind, page)
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(result.Items))
	for _, transaction := range result.Items {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			TotalItems: result.TotalItems,
			TotalPages: result.TotalPages,
		},
	})
}

// @Summary		Create transaction
// @Description	Adds a transaction to the ledger of the logged in user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	service := ledger.NewService(models.DB)
	transaction, err := service.Add(currentUser(c), editable.Kind, editable.Date, editable.Amount, editable.Category, editable.Info)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Removes a transaction from the ledger of the logged in user
// @Tags			Transactions
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path	string	true	"ID of the transaction"
// @Param			kind	query	string	true	"Transaction kind, 'expense' or 'income'"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err == nil && id == uuid.Nil {
		err = httputil.ErrInvalidUUID
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	service := ledger.NewService(models.DB)
	err = service.Remove(currentUser(c), models.TransactionKind(c.Query("kind")), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
