package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// DateOrDateTime is either a calendar date or an instant. It encodes back in
// the form it was decoded from.
type DateOrDateTime struct {
	t        time.Time
	dateOnly bool
}

// NewDate returns a calendar date without a time component.
func NewDate(year int, month time.Month, day int) DateOrDateTime {
	return DateOrDateTime{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), dateOnly: true}
}

// NewDateTime returns an instant.
func NewDateTime(t time.Time) DateOrDateTime {
	return DateOrDateTime{t: t}
}

// ParseDateOrDateTime accepts "2006-01-02" or an RFC 3339 timestamp.
func ParseDateOrDateTime(s string) (DateOrDateTime, error) {
	if len(s) == len(dateLayout) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return DateOrDateTime{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
		}

		return DateOrDateTime{t: t, dateOnly: true}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return DateOrDateTime{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
	}

	return DateOrDateTime{t: t}, nil
}

// Time returns the instant, midnight UTC for calendar dates.
func (d DateOrDateTime) Time() time.Time { return d.t }

// IsDate reports whether the value is a calendar date.
func (d DateOrDateTime) IsDate() bool { return d.dateOnly }

// IsZero reports whether the value is unset.
func (d DateOrDateTime) IsZero() bool { return d.t.IsZero() }

// String formats the value the way the API expects it.
func (d DateOrDateTime) String() string {
	if d.dateOnly {
		return d.t.Format(dateLayout)
	}

	return d.t.Format(time.RFC3339Nano)
}

func (d DateOrDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateOrDateTime) UnmarshalJSON(data []byte) error {
	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	parsed, err := ParseDateOrDateTime(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// DateValue is a date or date range.
type DateValue struct {
	Start    DateOrDateTime  `json:"start"`
	End      *DateOrDateTime `json:"end"`
	TimeZone *string         `json:"time_zone"`
}

func (d *DateValue) UnmarshalJSON(data []byte) error {
	type plain DateValue

	var aux struct {
		Start json.RawMessage `json:"start"`
		End   json.RawMessage `json:"end"`
		plain
	}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return &DecodeError{Field: "date", Err: err}
	}

	value := DateValue{TimeZone: aux.TimeZone}

	err = value.Start.UnmarshalJSON(aux.Start)
	if err != nil {
		return &DecodeError{Field: "date.start", Err: err}
	}

	if len(aux.End) > 0 && string(aux.End) != "null" {
		var end DateOrDateTime

		err = end.UnmarshalJSON(aux.End)
		if err != nil {
			return &DecodeError{Field: "date.end", Err: err}
		}

		value.End = &end
	}

	*d = value

	return nil
}
