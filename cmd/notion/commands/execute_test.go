//nolint:testpackage // Need access to internal helpers
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/internal/constants"
)

const (
	fixtureDatabaseID = "6f4c1f0e-8c4a-4b5e-9f5e-2c1a3b4d5e6f"
	fixturePageID     = "0b7d2c9e-1f3a-4c5d-8e6f-7a8b9c0d1e2f"

	databaseResponse = `{
		"object": "database",
		"id": "6f4c1f0e-8c4a-4b5e-9f5e-2c1a3b4d5e6f",
		"created_time": "2023-01-01T00:00:00.000Z",
		"last_edited_time": "2023-05-01T00:00:00.000Z",
		"title": [{"type": "text", "text": {"content": "Tasks"}, "plain_text": "Tasks"}],
		"properties": {
			"Task": {"id": "title", "name": "Task", "type": "title", "title": {}},
			"Notes": {"id": "n1", "name": "Notes", "type": "rich_text", "rich_text": {}}
		},
		"parent": {"type": "workspace", "workspace": true},
		"archived": false
	}`

	pageResponse = `{
		"object": "page",
		"id": "0b7d2c9e-1f3a-4c5d-8e6f-7a8b9c0d1e2f",
		"created_time": "2023-05-01T00:00:00.000Z",
		"last_edited_time": "2023-05-02T00:00:00.000Z",
		"created_by": {"object": "user", "id": "u1"},
		"last_edited_by": {"object": "user", "id": "u1"},
		"parent": {"type": "database_id", "database_id": "6f4c1f0e-8c4a-4b5e-9f5e-2c1a3b4d5e6f"},
		"properties": {
			"Task": {"id": "title", "type": "title", "title": [{"type": "text", "text": {"content": "Write docs"}, "plain_text": "Write docs"}]}
		},
		"url": "https://www.notion.so/Write-docs-0b7d2c9e1f3a4c5d8e6f7a8b9c0d1e2f",
		"archived": false
	}`

	usersResponse = `{
		"object": "list",
		"results": [
			{"object": "user", "id": "u1", "type": "person", "name": "Ada", "person": {"email": "ada@example.com"}},
			{"object": "user", "id": "u2", "type": "bot", "name": "Importer", "bot": {}}
		],
		"next_cursor": null,
		"has_more": false
	}`

	childrenResponse = `{
		"object": "list",
		"results": [
			{"object": "block", "id": "b1", "type": "paragraph", "has_children": false,
			 "paragraph": {"rich_text": [{"type": "text", "text": {"content": "Hello"}, "plain_text": "Hello"}]}}
		],
		"next_cursor": null,
		"has_more": false
	}`
)

// fakeNotion records the requests it receives.
type fakeNotion struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
}

func (f *fakeNotion) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	f.mu.Lock()
	f.requests = append(f.requests, request)
	f.bodies = append(f.bodies, string(body))
	f.mu.Unlock()

	writer.Header().Set("Content-Type", "application/json")

	switch {
	case request.Method == http.MethodGet && request.URL.Path == "/users":
		_, _ = io.WriteString(writer, usersResponse)
	case request.Method == http.MethodGet && request.URL.Path == "/databases/"+fixtureDatabaseID:
		_, _ = io.WriteString(writer, databaseResponse)
	case request.Method == http.MethodPost && request.URL.Path == "/databases/"+fixtureDatabaseID+"/query":
		_, _ = io.WriteString(writer, `{"object": "list", "results": [`+pageResponse+`], "next_cursor": null, "has_more": false}`)
	case request.Method == http.MethodPost && request.URL.Path == "/pages":
		_, _ = io.WriteString(writer, pageResponse)
	case request.Method == http.MethodGet && strings.HasPrefix(request.URL.Path, "/blocks/"):
		_, _ = io.WriteString(writer, childrenResponse)
	default:
		writer.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(writer, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find object."}`)
	}
}

func setupFakeNotion(t *testing.T, output string) *fakeNotion {
	t.Helper()

	fake := &fakeNotion{}
	server := httptest.NewServer(fake)

	viper.Reset()
	viper.Set("token", "secret_test")
	viper.Set("base_url", server.URL)
	viper.Set("output", output)
	viper.Set("retries", 0)
	viper.Set("log_level", "error")

	t.Cleanup(func() {
		server.Close()
		viper.Reset()
	})

	return fake
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestUsersList_JSON(t *testing.T) {
	fake := setupFakeNotion(t, constants.FormatJSON)

	out, err := execute(t, NewUsersCommand(), "list")
	require.NoError(t, err)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "person", users[0]["type"])
	assert.Equal(t, "bot", users[1]["type"])

	require.Len(t, fake.requests, 1)
	assert.Equal(t, "Bearer secret_test", fake.requests[0].Header.Get("Authorization"))
}

func TestUsersList_Table(t *testing.T) {
	setupFakeNotion(t, constants.FormatTable)

	out, err := execute(t, NewUsersCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Importer")
}

func TestDatabaseQuery_FiltersByTitle(t *testing.T) {
	fake := setupFakeNotion(t, constants.FormatYAML)

	out, err := execute(t, NewDatabaseCommand(), "query",
		"https://www.notion.so/acme/6f4c1f0e8c4a4b5e9f5e2c1a3b4d5e6f?v=1",
		"--property", "Task", "--contains", "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "Write docs")

	require.Len(t, fake.requests, 2)
	assert.Equal(t, http.MethodPost, fake.requests[1].Method)
	assert.JSONEq(t, `{"filter": {"property": "Task", "title": {"contains": "docs"}}}`, fake.bodies[1])
}

func TestPageCreate(t *testing.T) {
	fake := setupFakeNotion(t, constants.FormatTable)

	out, err := execute(t, NewPageCommand(), "create", "--database", fixtureDatabaseID, "--title", "Write docs")
	require.NoError(t, err)
	assert.Contains(t, out, fixturePageID)

	require.Len(t, fake.requests, 2)
	assert.Equal(t, "/pages", fake.requests[1].URL.Path)
	assert.JSONEq(t, `{
		"parent": {"type": "database_id", "database_id": "`+fixtureDatabaseID+`"},
		"properties": {"Task": {"type": "title", "title": [{"type": "text", "plain_text": "Write docs", "text": {"content": "Write docs"}}]}}
	}`, fake.bodies[1])
}

func TestPageCreate_RequiresFlags(t *testing.T) {
	setupFakeNotion(t, constants.FormatTable)

	_, err := execute(t, NewPageCommand(), "create", "--title", "x")
	require.ErrorIs(t, err, constants.ErrDatabaseRequired)

	_, err = execute(t, NewPageCommand(), "create", "--database", fixtureDatabaseID)
	require.ErrorIs(t, err, constants.ErrTitleRequired)
}

func TestBlocksChildren_FansOut(t *testing.T) {
	fake := setupFakeNotion(t, constants.FormatJSON)

	out, err := execute(t, NewBlocksCommand(), "children", fixturePageID, fixtureDatabaseID)
	require.NoError(t, err)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, fixturePageID, results[0]["parent"])
	assert.Equal(t, fixtureDatabaseID, results[1]["parent"])
	assert.Len(t, fake.requests, 2)
}

func TestCommand_NoToken(t *testing.T) {
	setupFakeNotion(t, constants.FormatTable)
	viper.Set("token", "")

	_, err := execute(t, NewUsersCommand(), "list")
	require.ErrorIs(t, err, constants.ErrNoTokenConfigured)
}

func TestCommand_InvalidOutput(t *testing.T) {
	setupFakeNotion(t, "xml")

	_, err := execute(t, NewVersionCommand("1.0.0", "abc", "today"))
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
}

func TestCommand_APIError(t *testing.T) {
	setupFakeNotion(t, constants.FormatTable)

	_, err := execute(t, NewPageCommand(), "get", "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get page")
}
