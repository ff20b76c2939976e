package notion

import (
	"net/url"
	"strconv"
)

// PagingCursor is the opaque token of the next page of a list response.
type PagingCursor string

// Paging selects one page of a list. Nil fields are left to the server.
type Paging struct {
	StartCursor *PagingCursor `json:"start_cursor,omitempty"`
	PageSize    *int          `json:"page_size,omitempty"`
}

// Next returns a Paging for the page after the one that returned nextCursor
// and hasMore, keeping the page size. It reports false on the last page.
func (p Paging) Next(nextCursor *PagingCursor, hasMore bool) (Paging, bool) {
	if !hasMore || nextCursor == nil {
		return Paging{}, false
	}

	cursor := *nextCursor

	return Paging{StartCursor: &cursor, PageSize: p.PageSize}, true
}

// Query renders the paging fields as GET query parameters.
func (p Paging) Query() url.Values {
	query := url.Values{}

	if p.StartCursor != nil {
		query.Set("start_cursor", string(*p.StartCursor))
	}

	if p.PageSize != nil {
		query.Set("page_size", strconv.Itoa(*p.PageSize))
	}

	return query
}
