package domain

import "fmt"

// Paging limits shared by every list endpoint.
const (
	DefaultLimit = 10
	MaxLimit     = 100

	// AutocompleteLimit caps the number of hotel name suggestions.
	AutocompleteLimit = 50
)

// Page selects a window of an ordered result set.
type Page struct {
	// Limit is the page size
	Limit int `json:"limit"`

	// Offset is the number of rows to skip
	Offset int `json:"offset"`
}

// DefaultPage returns the first page with the default size.
func DefaultPage() Page {
	return Page{Limit: DefaultLimit, Offset: 0}
}

// Validate checks the page bounds.
func (p Page) Validate() error {
	if p.Limit < 1 || p.Limit > MaxLimit {
		return NewValidationError("limit", fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
	}
	if p.Offset < 0 {
		return NewValidationError("offset", "offset must not be negative")
	}
	return nil
}

// ListFilter narrows a list query.
type ListFilter struct {
	// Country restricts results to an exact country name; empty means all
	Country string

	Page Page
}

// HotelFilter holds the optional criteria of a hotel search.
// Name, Title and Description are full-text matched; City, State and Country
// must match exactly.
type HotelFilter struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
}

// IsEmpty reports whether no criteria are set.
func (f HotelFilter) IsEmpty() bool {
	return len(f.Clauses()) == 0
}

// Clauses converts the filter into search clauses, skipping empty fields.
// Match clauses come first, in the order name, title, description.
func (f HotelFilter) Clauses() []SearchClause {
	candidates := []SearchClause{
		{Kind: Match, Field: "name", Value: f.Name},
		{Kind: Match, Field: "title", Value: f.Title},
		{Kind: Match, Field: "description", Value: f.Description},
		{Kind: Term, Field: "city", Value: f.City},
		{Kind: Term, Field: "state", Value: f.State},
		{Kind: Term, Field: "country", Value: f.Country},
	}

	clauses := make([]SearchClause, 0, len(candidates))
	for _, c := range candidates {
		if c.Value != "" {
			clauses = append(clauses, c)
		}
	}
	return clauses
}
