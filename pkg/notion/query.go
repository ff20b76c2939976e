package notion

import (
	"encoding/json"
)

// Ptr returns a pointer to v. It is handy for the optional operator fields
// of conditions.
func Ptr[T any](v T) *T {
	return &v
}

// TextCondition applies to title, rich_text, url, email and phone_number
// properties.
type TextCondition struct {
	Equals         *string `json:"equals,omitempty"`
	DoesNotEqual   *string `json:"does_not_equal,omitempty"`
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"does_not_contain,omitempty"`
	StartsWith     *string `json:"starts_with,omitempty"`
	EndsWith       *string `json:"ends_with,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// NumberCondition represents a comparison on a number property.
type NumberCondition struct {
	Equals               *float64 `json:"equals,omitempty"`
	DoesNotEqual         *float64 `json:"does_not_equal,omitempty"`
	GreaterThan          *float64 `json:"greater_than,omitempty"`
	LessThan             *float64 `json:"less_than,omitempty"`
	GreaterThanOrEqualTo *float64 `json:"greater_than_or_equal_to,omitempty"`
	LessThanOrEqualTo    *float64 `json:"less_than_or_equal_to,omitempty"`
	IsEmpty              bool     `json:"is_empty,omitempty"`
	IsNotEmpty           bool     `json:"is_not_empty,omitempty"`
}

// CheckboxCondition represents a comparison on a checkbox property.
type CheckboxCondition struct {
	Equals       *bool `json:"equals,omitempty"`
	DoesNotEqual *bool `json:"does_not_equal,omitempty"`
}

// SelectCondition matches option names.
type SelectCondition struct {
	Equals       *string `json:"equals,omitempty"`
	DoesNotEqual *string `json:"does_not_equal,omitempty"`
	IsEmpty      bool    `json:"is_empty,omitempty"`
	IsNotEmpty   bool    `json:"is_not_empty,omitempty"`
}

// StatusCondition matches status option names.
type StatusCondition SelectCondition

// MultiSelectCondition represents a match on multi-select option names.
type MultiSelectCondition struct {
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"does_not_contain,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// DateCondition compares dates. The relative operators such as PastWeek take
// no operand and are sent as empty objects.
type DateCondition struct {
	Equals     *DateOrDateTime `json:"equals,omitempty"`
	Before     *DateOrDateTime `json:"before,omitempty"`
	After      *DateOrDateTime `json:"after,omitempty"`
	OnOrBefore *DateOrDateTime `json:"on_or_before,omitempty"`
	OnOrAfter  *DateOrDateTime `json:"on_or_after,omitempty"`
	IsEmpty    bool            `json:"is_empty,omitempty"`
	IsNotEmpty bool            `json:"is_not_empty,omitempty"`
	PastWeek   bool            `json:"-"`
	PastMonth  bool            `json:"-"`
	PastYear   bool            `json:"-"`
	ThisWeek   bool            `json:"-"`
	NextWeek   bool            `json:"-"`
	NextMonth  bool            `json:"-"`
	NextYear   bool            `json:"-"`
}

func (c DateCondition) MarshalJSON() ([]byte, error) {
	type plain DateCondition

	relative := func(set bool) *struct{} {
		if set {
			return &struct{}{}
		}

		return nil
	}

	return json.Marshal(struct {
		plain
		PastWeek  *struct{} `json:"past_week,omitempty"`
		PastMonth *struct{} `json:"past_month,omitempty"`
		PastYear  *struct{} `json:"past_year,omitempty"`
		ThisWeek  *struct{} `json:"this_week,omitempty"`
		NextWeek  *struct{} `json:"next_week,omitempty"`
		NextMonth *struct{} `json:"next_month,omitempty"`
		NextYear  *struct{} `json:"next_year,omitempty"`
	}{
		plain:     plain(c),
		PastWeek:  relative(c.PastWeek),
		PastMonth: relative(c.PastMonth),
		PastYear:  relative(c.PastYear),
		ThisWeek:  relative(c.ThisWeek),
		NextWeek:  relative(c.NextWeek),
		NextMonth: relative(c.NextMonth),
		NextYear:  relative(c.NextYear),
	})
}

// PeopleCondition represents a match on the users of a people property.
type PeopleCondition struct {
	Contains       *UserID `json:"contains,omitempty"`
	DoesNotContain *UserID `json:"does_not_contain,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// FilesCondition represents an emptiness check on a files property.
type FilesCondition struct {
	IsEmpty    bool `json:"is_empty,omitempty"`
	IsNotEmpty bool `json:"is_not_empty,omitempty"`
}

// RelationCondition represents a match on the pages of a relation property.
type RelationCondition struct {
	Contains       *PageID `json:"contains,omitempty"`
	DoesNotContain *PageID `json:"does_not_contain,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// FormulaCondition filters on the result of a formula. Set the field that
// matches the formula result type.
type FormulaCondition struct {
	String   *TextCondition     `json:"string,omitempty"`
	Checkbox *CheckboxCondition `json:"checkbox,omitempty"`
	Number   *NumberCondition   `json:"number,omitempty"`
	Date     *DateCondition     `json:"date,omitempty"`
}

// UniqueIDCondition compares the number part of a unique ID.
type UniqueIDCondition struct {
	Equals               *int64 `json:"equals,omitempty"`
	DoesNotEqual         *int64 `json:"does_not_equal,omitempty"`
	GreaterThan          *int64 `json:"greater_than,omitempty"`
	LessThan             *int64 `json:"less_than,omitempty"`
	GreaterThanOrEqualTo *int64 `json:"greater_than_or_equal_to,omitempty"`
	LessThanOrEqualTo    *int64 `json:"less_than_or_equal_to,omitempty"`
}

// PropertyCondition is a condition bound to the property type it filters.
// Build one with the Condition* functions.
type PropertyCondition struct {
	key       string
	condition any
}

// Key returns the wire name of the property type, for example "rich_text".
func (c PropertyCondition) Key() string { return c.key }

// Condition returns the wrapped condition value.
func (c PropertyCondition) Condition() any { return c.condition }

// ConditionText filters a text property.
func ConditionText(c TextCondition) PropertyCondition {
	return PropertyCondition{key: "text", condition: c}
}

// ConditionRichText filters a rich text property.
func ConditionRichText(c TextCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeRichText), condition: c}
}

// ConditionTitle filters the title property.
func ConditionTitle(c TextCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeTitle), condition: c}
}

// ConditionURL filters a URL property.
func ConditionURL(c TextCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeURL), condition: c}
}

// ConditionEmail filters an email property.
func ConditionEmail(c TextCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeEmail), condition: c}
}

// ConditionPhoneNumber filters a phone number property.
func ConditionPhoneNumber(c TextCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypePhoneNumber), condition: c}
}

// ConditionNumber filters a number property.
func ConditionNumber(c NumberCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeNumber), condition: c}
}

// ConditionCheckbox filters a checkbox property.
func ConditionCheckbox(c CheckboxCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeCheckbox), condition: c}
}

// ConditionSelect filters a select property.
func ConditionSelect(c SelectCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeSelect), condition: c}
}

// ConditionStatus filters a status property.
func ConditionStatus(c StatusCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeStatus), condition: c}
}

// ConditionMultiSelect filters a multi-select property.
func ConditionMultiSelect(c MultiSelectCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeMultiSelect), condition: c}
}

// ConditionDate filters a date property.
func ConditionDate(c DateCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeDate), condition: c}
}

// ConditionPeople filters a people, created by or last edited by property.
func ConditionPeople(c PeopleCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypePeople), condition: c}
}

// ConditionFiles filters a files property.
func ConditionFiles(c FilesCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeFiles), condition: c}
}

// ConditionRelation filters a relation property.
func ConditionRelation(c RelationCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeRelation), condition: c}
}

// ConditionFormula filters on the result of a formula property.
func ConditionFormula(c FormulaCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeFormula), condition: c}
}

// ConditionUniqueID filters a unique ID property by its number.
func ConditionUniqueID(c UniqueIDCondition) PropertyCondition {
	return PropertyCondition{key: string(PropertyTypeUniqueID), condition: c}
}

// Filter is a node of a database query filter tree. The concrete type is
// FilterCondition, TimestampFilter, AndFilter or OrFilter.
type Filter interface {
	filter()
}

// FilterCondition applies a condition to one property.
type FilterCondition struct {
	Property  string
	Condition PropertyCondition
}

// TimestampFilter applies a date condition to the created or last edited time
// of the pages.
type TimestampFilter struct {
	Timestamp SortTimestamp
	Condition DateCondition
}

// AndFilter matches pages matching every filter.
type AndFilter struct {
	Filters []Filter
}

// OrFilter matches pages matching any filter.
type OrFilter struct {
	Filters []Filter
}

// And combines filters so that all of them must match.
func And(filters ...Filter) AndFilter { return AndFilter{Filters: filters} }

// Or combines filters so that one of them must match.
func Or(filters ...Filter) OrFilter { return OrFilter{Filters: filters} }

func (FilterCondition) filter() {}
func (TimestampFilter) filter() {}
func (AndFilter) filter()       {}
func (OrFilter) filter()        {}

func (f FilterCondition) MarshalJSON() ([]byte, error) {
	return marshalTagged("property", f.Property, map[string]any{f.Condition.key: f.Condition.condition})
}

func (f TimestampFilter) MarshalJSON() ([]byte, error) {
	return marshalTagged("timestamp", string(f.Timestamp), map[string]any{string(f.Timestamp): f.Condition})
}

func (f AndFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Filter{"and": nonNilFilters(f.Filters)})
}

func (f OrFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Filter{"or": nonNilFilters(f.Filters)})
}

func nonNilFilters(filters []Filter) []Filter {
	if filters == nil {
		return []Filter{}
	}

	return filters
}

// DatabaseSort orders query results by a property or by a timestamp. Set
// exactly one of Property and Timestamp.
type DatabaseSort struct {
	Property  string        `json:"property,omitempty"`
	Timestamp SortTimestamp `json:"timestamp,omitempty"`
	Direction SortDirection `json:"direction"`
}

// DatabaseQuery is the body of a database query call. Unset fields are omitted.
type DatabaseQuery struct {
	Filter Filter         `json:"filter,omitempty"`
	Sorts  []DatabaseSort `json:"sorts,omitempty"`
	Paging
}

// DatabaseQuerier is accepted by Client.QueryDatabase.
type DatabaseQuerier interface {
	DatabaseQuery() DatabaseQuery
}

// DatabaseQuery implements DatabaseQuerier.
func (q DatabaseQuery) DatabaseQuery() DatabaseQuery { return q }

// WithPaging returns a copy of q selecting the given page.
func (q DatabaseQuery) WithPaging(paging Paging) DatabaseQuery {
	q.Paging = paging

	return q
}
