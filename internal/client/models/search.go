package models

import "strings"

type SortField string

const (
	SortByFirstName   SortField = "firstName"
	SortByLastName    SortField = "lastName"
	SortByCreatedAt   SortField = "createdAt"
	SortByLastLoginAt SortField = "lastLoginAt"
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// Valid bounds for the age filters. Values outside the domain are dropped
// during normalization as if the filter was not set.
const (
	MinSearchAge = 13
	MaxSearchAge = 120
)

// SearchCriteria describes one directory query. The zero value of every
// filter field means "no filter"; Normalized distinguishes that from a filter
// with an empty value by pruning blanks before the criteria reach the wire.
type SearchCriteria struct {
	Search  string
	City    string
	Country string
	Gender  Gender
	MinAge  int
	MaxAge  int

	SortBy    SortField
	SortOrder SortOrder

	// Page is 1-based.
	Page  int
	Limit int
}

// DefaultCriteria returns the documented defaults: first page, ten results,
// newest members first, no filters.
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		Page:      1,
		Limit:     10,
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
	}
}

// Normalized returns a copy with free-text fields trimmed, blank and
// out-of-domain filters removed, and sort/pagination defaults applied.
func (c SearchCriteria) Normalized() SearchCriteria {
	n := c
	n.Search = strings.TrimSpace(c.Search)
	n.City = strings.TrimSpace(c.City)
	n.Country = strings.TrimSpace(c.Country)

	switch c.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		n.Gender = ""
	}

	if n.MinAge < MinSearchAge || n.MinAge > MaxSearchAge {
		n.MinAge = 0
	}
	if n.MaxAge < MinSearchAge || n.MaxAge > MaxSearchAge {
		n.MaxAge = 0
	}

	switch c.SortBy {
	case SortByFirstName, SortByLastName, SortByCreatedAt, SortByLastLoginAt:
	default:
		n.SortBy = SortByCreatedAt
	}
	if c.SortOrder != SortAsc && c.SortOrder != SortDesc {
		n.SortOrder = SortDesc
	}

	if n.Page < 1 {
		n.Page = 1
	}
	if n.Limit < 1 {
		n.Limit = 10
	}
	return n
}

// WithPage returns a copy of the criteria pointing at the given page.
func (c SearchCriteria) WithPage(page int) SearchCriteria {
	c.Page = page
	return c
}

// Pagination is the server-computed paging state. All five derived values are
// authoritative; the client never recomputes them.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// SearchResult is one page of directory results in server-determined order.
type SearchResult struct {
	Users      []UserProfile
	Pagination Pagination
}
