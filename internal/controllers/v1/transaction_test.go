package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pennywise-app/backend/internal/controllers/v1"
	"github.com/pennywise-app/backend/test"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	_, session := suite.createTestUserSession("till@example.com")

	response := suite.createTestTransaction(session, v1.TransactionEditable{
		Kind:     "expense",
		Date:     date(2024, 3, 2),
		Amount:   decimal.NewFromFloat(14.03),
		Category: "Groceries",
		Info:     "Weekly shopping",
	})

	require.NotNil(suite.T(), response.Data)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data.ID)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.03)))
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
	assert.Equal(suite.T(), date(2024, 3, 2), response.Data.Date)
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaultsDate() {
	_, session := suite.createTestUserSession("till@example.com")

	response := suite.createTestTransaction(session, v1.TransactionEditable{
		Kind:     "income",
		Amount:   decimal.NewFromFloat(2500),
		Category: "Salary",
	})

	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.Date.IsZero(), "the date defaults to the current time")
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	_, session := suite.createTestUserSession("till@example.com")

	tests := []struct {
		name string
		body any
	}{
		{"invalid kind", v1.TransactionEditable{Kind: "stonks", Amount: decimal.NewFromFloat(1), Category: "Misc"}},
		{"no kind", v1.TransactionEditable{Amount: decimal.NewFromFloat(1), Category: "Misc"}},
		{"negative amount", v1.TransactionEditable{Kind: "expense", Amount: decimal.NewFromFloat(-1), Category: "Misc"}},
		{"no category", v1.TransactionEditable{Kind: "expense", Amount: decimal.NewFromFloat(1)}},
		{"blank category", v1.TransactionEditable{Kind: "expense", Amount: decimal.NewFromFloat(1), Category: "   "}},
		{"broken body", `{ "amount": `},
		{"empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body, session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestTransactionsGetPaginated verifies the fixed page size of 10, the
// date descending sort and the totals.
func (suite *TestSuiteStandard) TestTransactionsGetPaginated() {
	_, session := suite.createTestUserSession("till@example.com")

	// 27 transactions, one per day
	for i := 1; i <= 27; i++ {
		suite.createTestTransaction(session, v1.TransactionEditable{
			Kind:     "expense",
			Date:     date(2024, 1, i),
			Amount:   decimal.NewFromInt(int64(i)),
			Category: "Misc",
		})
	}

	tests := []struct {
		page      string
		count     int
		firstDate time.Time
	}{
		{"1", 10, date(2024, 1, 27)},
		{"2", 10, date(2024, 1, 17)},
		{"3", 7, date(2024, 1, 7)},
	}

	for _, tt := range tests {
		suite.T().Run("page "+tt.page, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?kind=expense&page="+tt.page, "", session)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.firstDate, response.Data[0].Date)

			require.NotNil(t, response.Pagination)
			assert.Equal(t, 10, response.Pagination.Limit)
			assert.Equal(t, 27, response.Pagination.TotalItems)
			assert.Equal(t, 3, response.Pagination.TotalPages)

			// Sorted by date descending within the page
			for i := 1; i < len(response.Data); i++ {
				assert.False(t, response.Data[i].Date.After(response.Data[i-1].Date))
			}
		})
	}
}

// TestTransactionsGetPageCoercion verifies that page values that do not
// parse to a positive number select the first page.
func (suite *TestSuiteStandard) TestTransactionsGetPageCoercion() {
	_, session := suite.createTestUserSession("till@example.com")

	suite.createTestTransaction(session, v1.TransactionEditable{
		Kind:     "expense",
		Date:     date(2024, 1, 1),
		Amount:   decimal.NewFromInt(1),
		Category: "Misc",
	})

	for _, page := range []string{"", "abc", "0", "-3", "1.5"} {
		suite.T().Run(fmt.Sprintf("page %q", page), func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?kind=expense&page="+page, "", session)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Pagination)
			assert.Equal(t, 1, response.Pagination.Page)
			assert.Len(t, response.Data, 1)
		})
	}
}

// TestTransactionsGetPageOutOfRange verifies that a page beyond the
// last one returns an empty list with unchanged totals.
func (suite *TestSuiteStandard) TestTransactionsGetPageOutOfRange() {
	_, session := suite.createTestUserSession("till@example.com")

	suite.createTestTransaction(session, v1.TransactionEditable{
		Kind:     "expense",
		Date:     date(2024, 1, 1),
		Amount:   decimal.NewFromInt(1),
		Category: "Misc",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=expense&page=7", "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data, 0)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 7, response.Pagination.Page)
	assert.Equal(suite.T(), 1, response.Pagination.TotalItems)
	assert.Equal(suite.T(), 1, response.Pagination.TotalPages)
}

func (suite *TestSuiteStandard) TestTransactionsGetEmpty() {
	_, session := suite.createTestUserSession("till@example.com")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=income", "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.NotNil(suite.T(), response.Data, "an empty ledger must yield an empty list, not null")
	assert.Len(suite.T(), response.Data, 0)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 0, response.Pagination.TotalItems)
	assert.Equal(suite.T(), 0, response.Pagination.TotalPages)
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidKind() {
	_, session := suite.createTestUserSession("till@example.com")

	for _, kind := range []string{"", "stonks", "Expense"} {
		suite.T().Run(fmt.Sprintf("kind %q", kind), func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?kind="+kind, "", session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestTransactionsGetKindsDisjoint verifies that expenses and incomes
// are separate collections.
func (suite *TestSuiteStandard) TestTransactionsGetKindsDisjoint() {
	_, session := suite.createTestUserSession("till@example.com")

	suite.createTestTransaction(session, v1.TransactionEditable{
		Kind: "expense", Date: date(2024, 1, 1), Amount: decimal.NewFromInt(10), Category: "Misc",
	})
	suite.createTestTransaction(session, v1.TransactionEditable{
		Kind: "income", Date: date(2024, 1, 2), Amount: decimal.NewFromInt(2500), Category: "Salary",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=expense", "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Misc", response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestTransactionsGetDateRange() {
	_, session := suite.createTestUserSession("till@example.com")

	for day := 1; day <= 20; day++ {
		suite.createTestTransaction(session, v1.TransactionEditable{
			Kind:     "expense",
			Date:     date(2024, 3, day),
			Amount:   decimal.NewFromInt(1),
			Category: "Misc",
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=expense&startDate=2024-03-05&endDate=2024-03-09", "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Both boundaries are inclusive
	require.Len(suite.T(), response.Data, 5)
	assert.Equal(suite.T(), date(2024, 3, 9), response.Data[0].Date)
	assert.Equal(suite.T(), date(2024, 3, 5), response.Data[4].Date)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 5, response.Pagination.TotalItems)
	assert.Equal(suite.T(), 1, response.Pagination.TotalPages)
}

func (suite *TestSuiteStandard) TestTransactionsGetDateRangeInvalid() {
	_, session := suite.createTestUserSession("till@example.com")

	tests := []string{
		"startDate=2024-03-05",                          // endDate missing
		"endDate=2024-03-09",                            // startDate missing
		"startDate=yesterday&endDate=2024-03-09",        // unparseable startDate
		"startDate=2024-03-05&endDate=not-a-date",       // unparseable endDate
		"startDate=05.03.2024&endDate=09.03.2024",       // wrong format
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?kind=expense&"+tt, "", session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	_, session := suite.createTestUserSession("till@example.com")

	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Kind: "expense", Date: date(2024, 1, 1), Amount: decimal.NewFromInt(10), Category: "Misc",
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s?kind=expense", transaction.Data.ID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The transaction is gone
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=expense", "", session)
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteNotFound() {
	_, session := suite.createTestUserSession("till@example.com")

	suite.createTestTransaction(session, v1.TransactionEditable{
		Kind: "expense", Date: date(2024, 1, 1), Amount: decimal.NewFromInt(10), Category: "Misc",
	})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown ID", uuid.New().String() + "?kind=expense", http.StatusNotFound},
		{"invalid UUID", "NotAUUID?kind=expense", http.StatusBadRequest},
		{"invalid kind", uuid.New().String() + "?kind=stonks", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, "http://example.com/v1/transactions/"+tt.path, "", session)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// The ledger is unchanged
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=expense", "", session)
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)
}

// TestTransactionsDeleteWrongKind verifies that a transaction cannot be
// deleted through the other collection.
func (suite *TestSuiteStandard) TestTransactionsDeleteWrongKind() {
	_, session := suite.createTestUserSession("till@example.com")

	transaction := suite.createTestTransaction(session, v1.TransactionEditable{
		Kind: "expense", Date: date(2024, 1, 1), Amount: decimal.NewFromInt(10), Category: "Misc",
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s?kind=income", transaction.Data.ID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsUserScoped verifies that users cannot see or delete
// each other's transactions.
func (suite *TestSuiteStandard) TestTransactionsUserScoped() {
	_, tillSession := suite.createTestUserSession("till@example.com")
	_, adaSession := suite.createTestUserSession("ada@example.com")

	transaction := suite.createTestTransaction(tillSession, v1.TransactionEditable{
		Kind: "expense", Date: date(2024, 1, 1), Amount: decimal.NewFromInt(10), Category: "Misc",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?kind=expense", "", adaSession)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s?kind=expense", transaction.Data.ID), "", adaSession)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions/"+uuid.New().String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, DELETE", r.Header().Get("allow"))
}
