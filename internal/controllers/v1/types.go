package v1

// Pagination contains information about the pagination of a list.
type Pagination struct {
	Page       int `json:"page" example:"2"`        // The page that was returned, 1-based
	Limit      int `json:"limit" example:"10"`      // The maximum number of items per page
	TotalItems int `json:"totalItems" example:"27"` // The total number of items matching the query
	TotalPages int `json:"totalPages" example:"3"`  // The total number of pages
}
