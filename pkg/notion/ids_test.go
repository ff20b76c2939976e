package notion_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

const dashedID = "6f4c1f0e-8c4a-4b5e-9f5e-2c1a3b4d5e6f"

func TestID_Value(t *testing.T) {
	t.Parallel()

	pageID := notion.NewPageID("abc")
	assert.Equal(t, "abc", pageID.Value())
	assert.Equal(t, "abc", pageID.String())
	assert.Equal(t, pageID, pageID.AsID())
	assert.False(t, pageID.IsZero())
	assert.True(t, notion.PageID{}.IsZero())

	blockID := notion.BlockIDFromPage(pageID)
	assert.Equal(t, "abc", blockID.Value())
}

func TestID_AsIdentifier(t *testing.T) {
	t.Parallel()

	page := notion.Page{ID: notion.NewPageID("page-1")}

	ids := []notion.AsIdentifier[notion.PageID]{page, page.ID}
	for _, id := range ids {
		assert.Equal(t, "page-1", id.AsID().Value())
	}

	database := notion.Database{ID: notion.NewDatabaseID("db-1")}

	var asDatabase notion.AsIdentifier[notion.DatabaseID] = database
	assert.Equal(t, "db-1", asDatabase.AsID().Value())
	assert.Equal(t, "page-1", page.BlockID().Value())
}

func TestID_JSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Database notion.DatabaseID `json:"database_id"`
		User     *notion.UserID    `json:"user_id,omitempty"`
	}

	data, err := json.Marshal(payload{Database: notion.NewDatabaseID("db-1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"database_id":"db-1"}`, string(data))

	var decoded payload

	err = json.Unmarshal([]byte(`{"database_id":"db-2","user_id":"u-1"}`), &decoded)
	require.NoError(t, err)
	assert.Equal(t, "db-2", decoded.Database.Value())
	require.NotNil(t, decoded.User)
	assert.Equal(t, "u-1", decoded.User.Value())
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "dashed",
			input: dashedID,
			want:  dashedID,
		},
		{
			name:  "upper case with spaces",
			input: "  6F4C1F0E-8C4A-4B5E-9F5E-2C1A3B4D5E6F ",
			want:  dashedID,
		},
		{
			name:  "32 hex characters",
			input: "6f4c1f0e8c4a4b5e9f5e2c1a3b4d5e6f",
			want:  dashedID,
		},
		{
			name:  "page URL with slug",
			input: "https://www.notion.so/acme/Roadmap-6f4c1f0e8c4a4b5e9f5e2c1a3b4d5e6f",
			want:  dashedID,
		},
		{
			name:  "database URL with view query",
			input: "https://www.notion.so/6f4c1f0e8c4a4b5e9f5e2c1a3b4d5e6f?v=0123",
			want:  dashedID,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not an id",
			input:   "roadmap",
			wantErr: true,
		},
		{
			name:    "URL without id",
			input:   "https://www.notion.so/acme/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			databaseID, err := notion.ParseDatabaseID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, notion.ErrInvalidID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, databaseID.Value())

			pageID, err := notion.ParsePageID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pageID.Value())

			blockID, err := notion.ParseBlockID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, blockID.Value())

			userID, err := notion.ParseUserID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, userID.Value())
		})
	}
}
