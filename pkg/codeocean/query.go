package codeocean

import (
	"net/url"
	"strconv"
)

// SearchParams expresses the query parameters of the data asset list
// endpoint. Zero values are omitted from the query string.
type SearchParams struct {
	// Start is the search-from index.
	Start int
	// Limit is the upper limit of returned results.
	Limit int
	// SortOrder determines the result sort order (asc or desc).
	SortOrder string
	// SortField determines the field to sort by.
	SortField string
	// Type filters by data asset type (dataset or result); both when empty.
	Type string
	// Ownership filters by ownership (owner or shared).
	Ownership string
	// Favorite restricts the search to favorite data assets.
	Favorite *bool
	// Archived restricts the search to archived data assets.
	Archived *bool
	// Query is the free-text search query.
	Query string
}

// NewSearchParams creates empty search params.
func NewSearchParams() *SearchParams {
	return &SearchParams{}
}

// WithQuery sets the search query.
func (p *SearchParams) WithQuery(query string) *SearchParams {
	p.Query = query

	return p
}

// WithLimit sets the result limit.
func (p *SearchParams) WithLimit(limit int) *SearchParams {
	p.Limit = limit

	return p
}

// ToValues converts the params to url.Values.
func (p *SearchParams) ToValues() url.Values {
	values := url.Values{}

	if p.Start > 0 {
		values.Set("start", strconv.Itoa(p.Start))
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.SortOrder != "" {
		values.Set("sort_order", p.SortOrder)
	}

	if p.SortField != "" {
		values.Set("sort_field", p.SortField)
	}

	if p.Type != "" {
		values.Set("type", p.Type)
	}

	if p.Ownership != "" {
		values.Set("ownership", p.Ownership)
	}

	if p.Favorite != nil {
		values.Set("favorite", strconv.FormatBool(*p.Favorite))
	}

	if p.Archived != nil {
		values.Set("archived", strconv.FormatBool(*p.Archived))
	}

	if p.Query != "" {
		values.Set("query", p.Query)
	}

	return values
}

// ListComputationsParams expresses the query parameters of the computations
// list endpoint. Zero values are omitted from the query string.
type ListComputationsParams struct {
	// Start is the list-from index.
	Start int
	// Limit is the upper limit of returned results.
	Limit int
	// CapsuleID restricts the list to runs of one capsule.
	CapsuleID string
	// State filters by computation state.
	State string
}

// ToValues converts the params to url.Values.
func (p *ListComputationsParams) ToValues() url.Values {
	values := url.Values{}

	if p.Start > 0 {
		values.Set("start", strconv.Itoa(p.Start))
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.CapsuleID != "" {
		values.Set("capsule_id", p.CapsuleID)
	}

	if p.State != "" {
		values.Set("state", p.State)
	}

	return values
}

// Bool returns a pointer to the given bool for use in optional fields.
func Bool(b bool) *bool {
	return &b
}
