package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

func TestDatabases_GetDatabase(t *testing.T) {
	t.Parallel()

	tests := []TestOperation{
		{
			Name:         "returns the database",
			ExpectedPath: "/databases/" + testDatabaseID,
			Method:       http.MethodGet,
			StatusCode:   http.StatusOK,
			Response:     databaseJSON,
		},
		{
			Name:         "not found",
			ExpectedPath: "/databases/" + testDatabaseID,
			Method:       http.MethodGet,
			StatusCode:   http.StatusNotFound,
			Response:     notFoundJSON,
			WantErr:      true,
			ErrMessage:   "getting database: object_not_found",
		},
		{
			Name:         "page instead of database",
			ExpectedPath: "/databases/" + testDatabaseID,
			Method:       http.MethodGet,
			StatusCode:   http.StatusOK,
			Response:     pageJSON,
			WantErr:      true,
			ErrMessage:   "unexpected response: page",
		},
	}

	RunOperationTests(t, tests, func(ctx context.Context, c *Client) (*notion.Database, error) {
		return c.GetDatabase(ctx, notion.NewDatabaseID(testDatabaseID))
	})
}

func TestDatabases_GetDatabase_Fields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, databaseJSON)
	}))
	defer server.Close()

	client := NewTestClient(t, server)

	database, err := client.GetDatabase(context.Background(), notion.NewDatabaseID(testDatabaseID))
	require.NoError(t, err)
	assert.Equal(t, testDatabaseID, database.ID.Value())
	assert.Equal(t, "Tasks", database.TitlePlainText())
	assert.Equal(t, notion.WorkspaceParent{}, database.Parent)
	assert.Equal(t, []string{"Name"}, database.Properties.Names())
}

func TestDatabases_QueryDatabase(t *testing.T) {
	t.Parallel()

	var body map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/"+testDatabaseID+"/query", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body = decodeBody(t, r)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, listJSON("cursor-2", pageJSON))
	}))
	defer server.Close()

	client := NewTestClient(t, server)

	query := notion.DatabaseQuery{
		Filter: notion.FilterCondition{
			Property:  "Name",
			Condition: notion.ConditionText(notion.TextCondition{Contains: notion.Ptr("First")}),
		},
		Sorts: []notion.DatabaseSort{
			{Timestamp: notion.SortTimestampLastEditedTime, Direction: notion.SortDescending},
		},
		Paging: notion.Paging{PageSize: notion.Ptr(10)},
	}

	pages, err := client.QueryDatabase(context.Background(), notion.NewDatabaseID(testDatabaseID), query)
	require.NoError(t, err)
	require.Len(t, pages.Results, 1)

	title, ok := pages.Results[0].Title()
	assert.True(t, ok)
	assert.Equal(t, "First", title)

	next, ok := pages.NextPage(query.Paging)
	require.True(t, ok)
	assert.Equal(t, notion.PagingCursor("cursor-2"), *next.StartCursor)
	assert.Equal(t, 10, *next.PageSize)

	assert.Equal(t, map[string]interface{}{
		"property": "Name",
		"text":     map[string]interface{}{"contains": "First"},
	}, body["filter"])
	assert.Equal(t, float64(10), body["page_size"])
	assert.NotContains(t, body, "start_cursor")
}

func TestDatabases_QueryDatabase_RejectsNonPages(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, listJSON("", pageJSON, databaseJSON))
	}))
	defer server.Close()

	client := NewTestClient(t, server)

	pages, err := client.QueryDatabase(context.Background(), notion.NewDatabaseID(testDatabaseID), notion.DatabaseQuery{})
	require.Error(t, err)
	assert.Nil(t, pages)
	assert.True(t, notion.IsUnexpectedResponse(err))
}

func TestDatabases_ListDatabases(t *testing.T) {
	t.Parallel()

	tests := []TestOperation{
		{
			Name:         "lists databases",
			ExpectedPath: "/databases",
			Method:       http.MethodGet,
			StatusCode:   http.StatusOK,
			Response:     listJSON("", databaseJSON),
		},
		{
			Name:         "single object instead of list",
			ExpectedPath: "/databases",
			Method:       http.MethodGet,
			StatusCode:   http.StatusOK,
			Response:     databaseJSON,
			WantErr:      true,
			ErrMessage:   "listing databases: unexpected response: database",
		},
	}

	RunOperationTests(t, tests, func(ctx context.Context, c *Client) (*notion.ListResponse[notion.Database], error) {
		return c.ListDatabases(ctx) //nolint:staticcheck // exercising the deprecated endpoint
	})
}
