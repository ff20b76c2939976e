package notion_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/notion-client/pkg/notion"
)

func TestParseDateOrDateTime(t *testing.T) {
	t.Parallel()

	date, err := notion.ParseDateOrDateTime("2023-05-01")
	require.NoError(t, err)
	assert.True(t, date.IsDate())
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), date.Time())
	assert.Equal(t, "2023-05-01", date.String())

	instant, err := notion.ParseDateOrDateTime("2023-05-01T12:30:00.000+02:00")
	require.NoError(t, err)
	assert.False(t, instant.IsDate())
	assert.Equal(t, time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC), instant.Time().UTC())

	_, err = notion.ParseDateOrDateTime("2023-13-01")
	require.ErrorIs(t, err, notion.ErrInvalidDate)

	_, err = notion.ParseDateOrDateTime("soon")
	require.ErrorIs(t, err, notion.ErrInvalidDate)
}

func TestDateOrDateTime_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(notion.NewDate(2024, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(data))

	at := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)

	data, err = json.Marshal(notion.NewDateTime(at))
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29T08:00:00Z"`, string(data))

	var decoded notion.DateOrDateTime

	err = json.Unmarshal([]byte(`42`), &decoded)
	require.ErrorIs(t, err, notion.ErrInvalidDate)

	assert.True(t, notion.DateOrDateTime{}.IsZero())
}

func TestDateValue_Decode(t *testing.T) {
	t.Parallel()

	var value notion.DateValue

	err := json.Unmarshal([]byte(`{"start": "2023-05-01", "end": "2023-05-03T09:00:00Z", "time_zone": "Europe/Paris"}`), &value)
	require.NoError(t, err)
	assert.True(t, value.Start.IsDate())
	require.NotNil(t, value.End)
	assert.False(t, value.End.IsDate())
	require.NotNil(t, value.TimeZone)
	assert.Equal(t, "Europe/Paris", *value.TimeZone)

	err = json.Unmarshal([]byte(`{"start": "2023-05-01", "end": "later"}`), &value)

	var decodeErr *notion.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "date.end", decodeErr.Field)

	err = json.Unmarshal([]byte(`{}`), &value)
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "date.start", decodeErr.Field)
}
