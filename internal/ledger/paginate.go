package ledger

import (
	"time"

	"github.com/pennywise-app/backend/internal/models"
	"golang.org/x/exp/slices"
)

// PageSize is the fixed number of transactions per page.
const PageSize = 10

// Page is one page of a transaction listing.
type Page struct {
	Page       int                  `json:"page" example:"2"`        // The requested page, 1-based
	Limit      int                  `json:"limit" example:"10"`      // Number of items per page
	Items      []models.Transaction `json:"items"`                   // The transactions on this page
	TotalItems int                  `json:"totalItems" example:"27"` // Total number of matching transactions
	TotalPages int                  `json:"totalPages" example:"3"`  // Total number of pages
}

// sortedByDateDescending returns a copy of the records, most recent first.
// The sort is stable so that repeated queries return identical pages.
func sortedByDateDescending(records []models.Transaction) []models.Transaction {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return sorted
}

// paginate sorts the records by date descending and slices out the requested
// page. Pages are 1-based, values below 1 select the first page. A page
// beyond the last one yields an empty item list with unchanged totals.
func paginate(records []models.Transaction, page int) Page {
	if page < 1 {
		page = 1
	}

	sorted := sortedByDateDescending(records)

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	// When there are no items on the page, we want an empty list, not null
	items := make([]models.Transaction, 0, end-start)
	items = append(items, sorted[start:end]...)

	return Page{
		Page:       page,
		Limit:      PageSize,
		Items:      items,
		TotalItems: len(sorted),
		TotalPages: (len(sorted) + PageSize - 1) / PageSize,
	}
}

// day truncates a time to its calendar date.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// filterDateRange returns the records dated between start and end.
// Both boundaries are inclusive and compared by calendar day, the
// time of day is ignored.
func filterDateRange(records []models.Transaction, start, end time.Time) []models.Transaction {
	from, until := day(start), day(end)

	filtered := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		d := day(record.Date)
		if d.Before(from) || d.After(until) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}
