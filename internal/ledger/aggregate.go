// Package ledger implements the read and write operations on a user's
// transaction ledger: paginated listings, date-range filtering and
// time-bucketed aggregation for statistics.
package ledger

import (
	"github.com/pennywise-app/backend/internal/models"
	"github.com/pennywise-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyBucket aggregates all transactions of one calendar month
// within one year.
type MonthlyBucket struct {
	Month       int             `json:"month" example:"3"`              // Calendar month, 1 to 12
	Count       int             `json:"count" example:"17"`             // Number of transactions in the month
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1337.42"` // Sum of the transaction amounts in the month
}

// YearlyMonthlyStats buckets the records into the twelve calendar months of
// the year. It always returns twelve buckets in month order, zero-filled for
// months without transactions. Records from other years are ignored.
//
// The bucketing uses the year and month of the date as stored, it is not
// timezone adjusted.
func YearlyMonthlyStats(records []models.Transaction, year int) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 12)
	for i := range buckets {
		buckets[i] = MonthlyBucket{
			Month:       i + 1,
			TotalAmount: decimal.Zero,
		}
	}

	for _, record := range records {
		if record.Date.Year() != year {
			continue
		}

		bucket := &buckets[int(record.Date.Month())-1]
		bucket.Count++
		bucket.TotalAmount = bucket.TotalAmount.Add(record.Amount)
	}

	return buckets
}

// MonthlyCategoryTotals sums the amounts per category for all records dated
// in the month. Categories without a matching record do not appear in the
// result, a month without any records yields an empty map.
func MonthlyCategoryTotals(records []models.Transaction, month types.Month) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)

	for _, record := range records {
		if !month.Contains(record.Date) {
			continue
		}

		totals[record.Category] = totals[record.Category].Add(record.Amount)
	}

	return totals
}
