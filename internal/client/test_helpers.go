package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

const testToken = "secret_test_token"

// Fixtures shared by the resource tests.
const (
	testDatabaseID = "8e2c2b76-9e1d-47d2-87b9-ed3035d607ae"
	testPageID     = "1ab6b241-2b1c-4e8f-bb4a-4f3b9f4f6a51"
	testBlockID    = "c02fc1d3-db8b-45c5-a222-27595b15aea7"
	testUserID     = "6794760a-1f15-45cd-9c65-0dfe42f5135a"

	databaseJSON = `{
		"object": "database",
		"id": "8e2c2b76-9e1d-47d2-87b9-ed3035d607ae",
		"created_time": "2021-07-08T23:50:00.000Z",
		"last_edited_time": "2021-07-08T23:50:00.000Z",
		"title": [{"type": "text", "text": {"content": "Tasks"}, "plain_text": "Tasks"}],
		"properties": {"Name": {"id": "title", "name": "Name", "type": "title", "title": {}}},
		"parent": {"type": "workspace", "workspace": true},
		"archived": false
	}`

	pageJSON = `{
		"object": "page",
		"id": "1ab6b241-2b1c-4e8f-bb4a-4f3b9f4f6a51",
		"created_time": "2021-07-08T23:50:00.000Z",
		"last_edited_time": "2021-07-08T23:50:00.000Z",
		"created_by": {"object": "user", "id": "6794760a-1f15-45cd-9c65-0dfe42f5135a"},
		"last_edited_by": {"object": "user", "id": "6794760a-1f15-45cd-9c65-0dfe42f5135a"},
		"parent": {"type": "database_id", "database_id": "8e2c2b76-9e1d-47d2-87b9-ed3035d607ae"},
		"properties": {
			"Name": {"id": "title", "type": "title", "title": [{"type": "text", "text": {"content": "First"}, "plain_text": "First"}]}
		},
		"url": "https://www.notion.so/First-1ab6b2412b1c4e8fbb4a4f3b9f4f6a51",
		"archived": false
	}`

	paragraphJSON = `{
		"object": "block",
		"id": "c02fc1d3-db8b-45c5-a222-27595b15aea7",
		"type": "paragraph",
		"created_time": "2021-07-08T23:50:00.000Z",
		"last_edited_time": "2021-07-08T23:50:00.000Z",
		"has_children": false,
		"archived": false,
		"paragraph": {"rich_text": [{"type": "text", "text": {"content": "Hello"}, "plain_text": "Hello"}]}
	}`

	personJSON = `{
		"object": "user",
		"id": "6794760a-1f15-45cd-9c65-0dfe42f5135a",
		"type": "person",
		"name": "Ada",
		"person": {"email": "ada@example.com"}
	}`

	notFoundJSON = `{
		"object": "error",
		"status": 404,
		"code": "object_not_found",
		"message": "Could not find page"
	}`
)

// listJSON wraps results in a list object.
func listJSON(nextCursor string, results ...string) string {
	cursor := "null"
	hasMore := "false"

	if nextCursor != "" {
		cursor = `"` + nextCursor + `"`
		hasMore = "true"
	}

	body := `{"object": "list", "results": [`
	for i, result := range results {
		if i > 0 {
			body += ","
		}

		body += result
	}

	return body + `], "next_cursor": ` + cursor + `, "has_more": ` + hasMore + `}`
}

// NewTestClient creates a client talking to server.
func NewTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := New(context.Background(), &notion.Config{
		Token:   testToken,
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	return client
}

// TestOperation represents a generic API operation test case.
type TestOperation struct {
	Name         string
	ExpectedPath string
	Method       string
	StatusCode   int
	Response     string
	WantErr      bool
	ErrMessage   string
}

// RunOperationTests serves each case from a test server and runs call
// against it. call returns the operation result.
func RunOperationTests[TResponse any](
	t *testing.T,
	tests []TestOperation,
	call func(context.Context, *Client) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, testCase.Method, request.Method)
				assert.Equal(t, "Bearer "+testToken, request.Header.Get("Authorization"))
				assert.Equal(t, notion.DefaultAPIVersion, request.Header.Get("Notion-Version"))

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)
				_, _ = io.WriteString(writer, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server)

			result, err := call(context.Background(), client)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// decodeBody decodes the JSON body of a request into a generic map.
func decodeBody(t *testing.T, request *http.Request) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	err := json.NewDecoder(request.Body).Decode(&body)
	require.NoError(t, err)

	return body
}
