//nolint:testpackage // Need access to internal helpers
package commands

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/internal/constants"
	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short"))
	assert.Equal(t, "two lines", truncate("two\n  lines"))

	long := strings.Repeat("a", 80)
	truncated := truncate(long)
	assert.Len(t, truncated, constants.StringTruncationLength)
	assert.True(t, strings.HasSuffix(truncated, "..."))
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "secret_***", maskToken("secret_abcdefghijklmnop"))
	assert.Equal(t, "***", maskToken("ntn_1"))
	assert.Equal(t, None, maskToken(""))
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, None, formatTimestamp(time.Time{}))
	assert.Equal(t, "2023-05-01T10:00:00Z",
		formatTimestamp(time.Date(2023, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))))
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	token, err := validateToken("  secret_abc\n")
	require.NoError(t, err)
	assert.Equal(t, "secret_abc", token)

	_, err = validateToken("   ")
	require.ErrorIs(t, err, constants.ErrEmptyToken)

	_, err = validateToken("secret\x00abc")
	require.ErrorIs(t, err, notion.ErrInvalidCredential)
}

func TestBuildSearchRequest(t *testing.T) {
	t.Parallel()

	request, err := buildSearchRequest("roadmap", "")
	require.NoError(t, err)
	assert.Equal(t, "roadmap", request.Query)
	assert.Nil(t, request.Filter)

	request, err = buildSearchRequest("", "Database")
	require.NoError(t, err)
	require.NotNil(t, request.Filter)
	assert.Equal(t, notion.FilterValueDatabase, request.Filter.Value)
	assert.Equal(t, notion.FilterPropertyObject, request.Filter.Property)

	_, err = buildSearchRequest("", "block")
	require.ErrorIs(t, err, constants.ErrInvalidFilterValue)
}

func TestBuildDatabaseQuery(t *testing.T) {
	t.Parallel()

	schema := notion.PropertyConfigurations{
		"Name":  notion.TitlePropertyConfig{},
		"Notes": notion.RichTextPropertyConfig{},
		"Link":  notion.URLPropertyConfig{},
	}

	tests := []struct {
		name        string
		property    string
		contains    string
		editedAfter string
		want        string
	}{
		{
			name: "no filter",
			want: `{}`,
		},
		{
			name:     "title property",
			property: "Name",
			contains: "First",
			want:     `{"filter": {"property": "Name", "title": {"contains": "First"}}}`,
		},
		{
			name:     "url property",
			property: "Link",
			contains: "example.com",
			want:     `{"filter": {"property": "Link", "url": {"contains": "example.com"}}}`,
		},
		{
			name:     "unknown property falls back to rich text",
			property: "Missing",
			contains: "x",
			want:     `{"filter": {"property": "Missing", "rich_text": {"contains": "x"}}}`,
		},
		{
			name:        "edited after",
			editedAfter: "2023-05-01",
			want:        `{"filter": {"timestamp": "last_edited_time", "last_edited_time": {"after": "2023-05-01"}}}`,
		},
		{
			name:        "combined",
			property:    "Notes",
			contains:    "todo",
			editedAfter: "2023-05-01",
			want: `{"filter": {"and": [
				{"property": "Notes", "rich_text": {"contains": "todo"}},
				{"timestamp": "last_edited_time", "last_edited_time": {"after": "2023-05-01"}}
			]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, err := buildDatabaseQuery(schema, tt.property, tt.contains, tt.editedAfter)
			require.NoError(t, err)

			data, err := json.Marshal(query)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestBuildDatabaseQuery_Errors(t *testing.T) {
	t.Parallel()

	_, err := buildDatabaseQuery(nil, "", "text", "")
	require.ErrorIs(t, err, constants.ErrPropertyRequired)

	_, err = buildDatabaseQuery(nil, "", "", "not a date at all")
	require.Error(t, err)
}

func TestParseFlagDate(t *testing.T) {
	t.Parallel()

	date, err := parseFlagDate("2023-05-01")
	require.NoError(t, err)
	assert.True(t, date.IsDate())

	dateTime, err := parseFlagDate("2023-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.False(t, dateTime.IsDate())

	loose, err := parseFlagDate("May 1, 2023")
	require.NoError(t, err)
	assert.Equal(t, 2023, loose.Time().Year())
	assert.Equal(t, time.May, loose.Time().Month())
	assert.Equal(t, 1, loose.Time().Day())
}

func TestBuildPageCreateRequest(t *testing.T) {
	t.Parallel()

	database := &notion.Database{
		ID: notion.NewDatabaseID("db-1"),
		Properties: notion.PropertyConfigurations{
			"Task": notion.TitlePropertyConfig{},
			"Due":  notion.DatePropertyConfig{},
		},
	}

	request, err := buildPageCreateRequest(database, "Write docs")
	require.NoError(t, err)

	data, err := json.Marshal(request)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"parent": {"type": "database_id", "database_id": "db-1"},
		"properties": {
			"Task": {"type": "title", "title": [{"type": "text", "plain_text": "Write docs", "text": {"content": "Write docs"}}]}
		}
	}`, string(data))

	_, err = buildPageCreateRequest(&notion.Database{Properties: notion.PropertyConfigurations{}}, "x")
	require.ErrorIs(t, err, constants.ErrNoTitleProperty)
}

func TestParentName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "database db-1", parentName(notion.DatabaseParent{DatabaseID: notion.NewDatabaseID("db-1")}))
	assert.Equal(t, "workspace", parentName(notion.WorkspaceParent{}))
	assert.Equal(t, None, parentName(nil))
}
