package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/backend/internal/httputil"
	"github.com/pennywise-app/backend/internal/ledger"
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
)

// RegisterStatsRoutes registers the routes for statistics with the
// RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/yearly", httputil.OptionsGet)
	r.GET("/yearly", GetYearlyStats)

	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", GetCategoryStats)
}

// YearlyStats are the monthly totals of one calendar year.
type YearlyStats struct {
	Year   int                    `json:"year" example:"2024"` // The year the statistics are for
	Months []ledger.MonthlyBucket `json:"months"`              // Twelve buckets, one per calendar month
}

type YearlyStatsResponse struct {
	Data  *YearlyStats `json:"data"`                                                               // The statistics, if the request was successful
	Error *string      `json:"error" example:"the transaction kind must be 'expense' or 'income'"` // The error, if any occurred
}

// CategoryStats are the per-category totals of one month.
type CategoryStats struct {
	Month      types.Month                `json:"month" example:"2024-03" swaggertype:"primitive,string"` // The month the statistics are for
	Categories map[string]decimal.Decimal `json:"categories"`                                             // Total amount per category. Categories without transactions are omitted
}

type CategoryStatsResponse struct {
	Data  *CategoryStats `json:"data"`                                                               // The statistics, if the request was successful
	Error *string        `json:"error" example:"the transaction kind must be 'expense' or 'income'"` // The error, if any occurred
}

// parseYear parses the year query parameter. Everything that does not
// parse to a positive number selects the current year.
func parseYear(s string) int {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 {
		return time.Now().UTC().Year()
	}

	return year
}

// parseStatsMonth resolves the year and month query parameters to a
// Month, falling back to the current UTC year and month.
func parseStatsMonth(yearParam, monthParam string) types.Month {
	month, err := strconv.Atoi(monthParam)
	if err != nil || month < 1 || month > 12 {
		month = int(time.Now().UTC().Month())
	}

	return types.NewMonth(parseYear(yearParam), time.Month(month))
}

// @Summary		Get yearly statistics
// @Description	Returns the transaction count and total amount for each month of the year. Months without transactions are included with zero values.
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	YearlyStatsResponse
// @Failure		400	{object}	YearlyStatsResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	YearlyStatsResponse
// @Failure		500	{object}	YearlyStatsResponse
// @Router			/v1/stats/yearly [get]
// @Param			kind	query	string	true	"Transaction kind, 'expense' or 'income'"
// @Param			year	query	int		false	"The year to aggregate. Defaults to the current year."
func GetYearlyStats(c *gin.Context) {
	service := ledger.NewService(models.DB)

	kind := models.TransactionKind(c.Query("kind"))
	year := parseYear(c.Query("year"))

	buckets, err := service.YearlyStats(currentUser(c), kind, year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearlyStatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, YearlyStatsResponse{Data: &YearlyStats{
		Year:   year,
		Months: buckets,
	}})
}

// @Summary		Get category statistics
// @Description	Returns the total amount per category for one month. Categories without transactions in the month are omitted.
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	CategoryStatsResponse
// @Failure		400	{object}	CategoryStatsResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	CategoryStatsResponse
// @Failure		500	{object}	CategoryStatsResponse
// @Router			/v1/stats/categories [get]
// @Param			kind	query	string	true	"Transaction kind, 'expense' or 'income'"
// @Param			year	query	int		false	"The year of the month to aggregate. Defaults to the current year."
// @Param			month	query	int		false	"The month to aggregate, 1 to 12. Defaults to the current month."
func GetCategoryStats(c *gin.Context) {
	service := ledger.NewService(models.DB)

	kind := models.TransactionKind(c.Query("kind"))
	month := parseStatsMonth(c.Query("year"), c.Query("month"))

	totals, err := service.MonthlyCategoryStats(currentUser(c), kind, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryStatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryStatsResponse{Data: &CategoryStats{
		Month:      month,
		Categories: totals,
	}})
}
