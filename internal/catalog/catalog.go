// Package catalog holds types shared by the catalog subdomains: products,
// categories and payment methods.
package catalog

// ListFilters carries common listing parameters for catalog queries.
type ListFilters struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	Available *bool
	Featured  *bool
	SortBy    string
	SortDir   string
}

// Offset derives the query offset from page and limit.
func (f ListFilters) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// BulkError records a single failed unit within a bulk operation.
type BulkError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkResult aggregates the outcome of a bulk operation. Units are attempted
// independently; partial success is a normal outcome, not an error state.
type BulkResult struct {
	Requested int         `json:"requested"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Errors    []BulkError `json:"errors,omitempty"`
}
