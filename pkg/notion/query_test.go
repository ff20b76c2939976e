package notion_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

func marshal(t *testing.T, v interface{}) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}

func TestSearchRequest_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request notion.SearchRequester
		want    string
	}{
		{
			name:    "filter only",
			request: notion.SearchOnly(notion.FilterValueDatabase),
			want:    `{"filter": {"value": "database", "property": "object"}}`,
		},
		{
			name:    "query only",
			request: notion.SearchQuery("Roadmap"),
			want:    `{"query": "Roadmap"}`,
		},
		{
			name:    "sort only",
			request: notion.SearchSort{Direction: notion.SortDescending, Timestamp: notion.SortTimestampLastEditedTime},
			want:    `{"sort": {"direction": "descending", "timestamp": "last_edited_time"}}`,
		},
		{
			name:    "empty",
			request: notion.SearchRequest{},
			want:    `{}`,
		},
		{
			name: "combined with paging",
			request: notion.SearchRequest{Query: "Road"}.WithPaging(notion.Paging{
				StartCursor: notion.Ptr(notion.PagingCursor("next")),
				PageSize:    notion.Ptr(10),
			}),
			want: `{"query": "Road", "start_cursor": "next", "page_size": 10}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.JSONEq(t, tt.want, marshal(t, tt.request.SearchRequest()))
		})
	}
}

func TestNotionSearch_Variants(t *testing.T) {
	t.Parallel()

	searches := []notion.NotionSearch{
		notion.SearchQuery("x"),
		notion.SearchSort{Direction: notion.SortAscending, Timestamp: notion.SortTimestampLastEditedTime},
		notion.SearchOnly(notion.FilterValuePage),
	}

	assert.Equal(t, "x", searches[0].SearchRequest().Query)
	assert.Equal(t, notion.SortAscending, searches[1].SearchRequest().Sort.Direction)
	assert.Equal(t, notion.FilterValuePage, searches[2].SearchRequest().Filter.Value)
	assert.Nil(t, searches[2].SearchRequest().Sort)
}

func TestFilter_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter notion.Filter
		want   string
	}{
		{
			name: "text contains",
			filter: notion.FilterCondition{
				Property:  "Name",
				Condition: notion.ConditionText(notion.TextCondition{Contains: notion.Ptr("First")}),
			},
			want: `{"property": "Name", "text": {"contains": "First"}}`,
		},
		{
			name: "rich text empty",
			filter: notion.FilterCondition{
				Property:  "Notes",
				Condition: notion.ConditionRichText(notion.TextCondition{IsEmpty: true}),
			},
			want: `{"property": "Notes", "rich_text": {"is_empty": true}}`,
		},
		{
			name: "number",
			filter: notion.FilterCondition{
				Property:  "Points",
				Condition: notion.ConditionNumber(notion.NumberCondition{GreaterThan: notion.Ptr(3.5)}),
			},
			want: `{"property": "Points", "number": {"greater_than": 3.5}}`,
		},
		{
			name: "checkbox",
			filter: notion.FilterCondition{
				Property:  "Done",
				Condition: notion.ConditionCheckbox(notion.CheckboxCondition{Equals: notion.Ptr(false)}),
			},
			want: `{"property": "Done", "checkbox": {"equals": false}}`,
		},
		{
			name: "date on or after",
			filter: notion.FilterCondition{
				Property:  "Due",
				Condition: notion.ConditionDate(notion.DateCondition{OnOrAfter: notion.Ptr(notion.NewDate(2023, 5, 1))}),
			},
			want: `{"property": "Due", "date": {"on_or_after": "2023-05-01"}}`,
		},
		{
			name: "relative date",
			filter: notion.FilterCondition{
				Property:  "Due",
				Condition: notion.ConditionDate(notion.DateCondition{PastWeek: true}),
			},
			want: `{"property": "Due", "date": {"past_week": {}}}`,
		},
		{
			name: "timestamp",
			filter: notion.TimestampFilter{
				Timestamp: notion.SortTimestampLastEditedTime,
				Condition: notion.DateCondition{After: notion.Ptr(notion.NewDate(2024, 1, 2))},
			},
			want: `{"timestamp": "last_edited_time", "last_edited_time": {"after": "2024-01-02"}}`,
		},
		{
			name: "and or tree",
			filter: notion.And(
				notion.FilterCondition{
					Property:  "Status",
					Condition: notion.ConditionStatus(notion.StatusCondition{Equals: notion.Ptr("Done")}),
				},
				notion.Or(
					notion.FilterCondition{
						Property:  "Tags",
						Condition: notion.ConditionMultiSelect(notion.MultiSelectCondition{Contains: notion.Ptr("a")}),
					},
					notion.FilterCondition{
						Property:  "Owner",
						Condition: notion.ConditionPeople(notion.PeopleCondition{Contains: notion.Ptr(notion.NewUserID("u-1"))}),
					},
				),
			),
			want: `{"and": [
				{"property": "Status", "status": {"equals": "Done"}},
				{"or": [
					{"property": "Tags", "multi_select": {"contains": "a"}},
					{"property": "Owner", "people": {"contains": "u-1"}}
				]}
			]}`,
		},
		{
			name:   "empty and",
			filter: notion.And(),
			want:   `{"and": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.JSONEq(t, tt.want, marshal(t, tt.filter))
		})
	}
}

func TestPropertyCondition_Accessors(t *testing.T) {
	t.Parallel()

	condition := notion.ConditionTitle(notion.TextCondition{Equals: notion.Ptr("x")})
	assert.Equal(t, "title", condition.Key())
	assert.IsType(t, notion.TextCondition{}, condition.Condition())

	assert.Equal(t, "url", notion.ConditionURL(notion.TextCondition{}).Key())
	assert.Equal(t, "email", notion.ConditionEmail(notion.TextCondition{}).Key())
	assert.Equal(t, "phone_number", notion.ConditionPhoneNumber(notion.TextCondition{}).Key())
	assert.Equal(t, "select", notion.ConditionSelect(notion.SelectCondition{}).Key())
	assert.Equal(t, "files", notion.ConditionFiles(notion.FilesCondition{}).Key())
	assert.Equal(t, "relation", notion.ConditionRelation(notion.RelationCondition{}).Key())
	assert.Equal(t, "formula", notion.ConditionFormula(notion.FormulaCondition{}).Key())
	assert.Equal(t, "unique_id", notion.ConditionUniqueID(notion.UniqueIDCondition{}).Key())
}

func TestDatabaseQuery_Encode(t *testing.T) {
	t.Parallel()

	query := notion.DatabaseQuery{
		Filter: notion.FilterCondition{
			Property:  "Name",
			Condition: notion.ConditionTitle(notion.TextCondition{StartsWith: notion.Ptr("F")}),
		},
		Sorts: []notion.DatabaseSort{
			{Property: "Name", Direction: notion.SortAscending},
			{Timestamp: notion.SortTimestampCreatedTime, Direction: notion.SortDescending},
		},
	}.WithPaging(notion.Paging{PageSize: notion.Ptr(50)})

	assert.JSONEq(t, `{
		"filter": {"property": "Name", "title": {"starts_with": "F"}},
		"sorts": [
			{"property": "Name", "direction": "ascending"},
			{"timestamp": "created_time", "direction": "descending"}
		],
		"page_size": 50
	}`, marshal(t, query.DatabaseQuery()))

	assert.JSONEq(t, `{}`, marshal(t, notion.DatabaseQuery{}))
}
