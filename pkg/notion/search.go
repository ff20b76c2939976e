package notion

// SortDirection orders search and query results.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// SortTimestamp names a page timestamp used for sorting and filtering. Search
// only supports SortTimestampLastEditedTime.
type SortTimestamp string

const (
	SortTimestampCreatedTime    SortTimestamp = "created_time"
	SortTimestampLastEditedTime SortTimestamp = "last_edited_time"
)

// FilterValue is the object kind a search can be restricted to.
type FilterValue string

const (
	FilterValuePage     FilterValue = "page"
	FilterValueDatabase FilterValue = "database"
)

// FilterProperty is the field a search filter applies to.
type FilterProperty string

const (
	FilterPropertyObject FilterProperty = "object"
)

// Sort is the wire form of a search sort.
type Sort struct {
	Direction SortDirection `json:"direction"`
	Timestamp SortTimestamp `json:"timestamp"`
}

// ObjectFilter is the wire form of a search filter.
type ObjectFilter struct {
	Value    FilterValue    `json:"value"`
	Property FilterProperty `json:"property"`
}

// SearchRequest is the body of a search call. Unset fields are omitted.
type SearchRequest struct {
	Query  string        `json:"query,omitempty"`
	Sort   *Sort         `json:"sort,omitempty"`
	Filter *ObjectFilter `json:"filter,omitempty"`
	Paging
}

// SearchRequester is accepted by Client.Search. Both SearchRequest and the
// NotionSearch shorthands implement it.
type SearchRequester interface {
	SearchRequest() SearchRequest
}

// SearchRequest implements SearchRequester.
func (r SearchRequest) SearchRequest() SearchRequest { return r }

// WithPaging returns a copy of r selecting the given page.
func (r SearchRequest) WithPaging(paging Paging) SearchRequest {
	r.Paging = paging

	return r
}

// NotionSearch is a single criterion search: a text query, a sort or an
// object kind filter. The concrete type is SearchQuery, SearchSort or
// SearchFilter.
type NotionSearch interface {
	SearchRequester
	notionSearch()
}

// SearchQuery matches titles containing the text.
type SearchQuery string

// SearchSort orders every object the integration can see.
type SearchSort struct {
	Direction SortDirection
	Timestamp SortTimestamp
}

// SearchFilter restricts the results to one object kind.
type SearchFilter struct {
	Value    FilterValue
	Property FilterProperty
}

// SearchOnly is shorthand for a filter on the object property.
func SearchOnly(value FilterValue) SearchFilter {
	return SearchFilter{Value: value, Property: FilterPropertyObject}
}

func (SearchQuery) notionSearch()  {}
func (SearchSort) notionSearch()   {}
func (SearchFilter) notionSearch() {}

// SearchRequest implements SearchRequester.
func (q SearchQuery) SearchRequest() SearchRequest {
	return SearchRequest{Query: string(q)}
}

// SearchRequest implements SearchRequester.
func (s SearchSort) SearchRequest() SearchRequest {
	return SearchRequest{Sort: &Sort{Direction: s.Direction, Timestamp: s.Timestamp}}
}

// SearchRequest implements SearchRequester.
func (f SearchFilter) SearchRequest() SearchRequest {
	return SearchRequest{Filter: &ObjectFilter{Value: f.Value, Property: f.Property}}
}
