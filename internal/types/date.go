package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	// WireFormat is the date layout the front end renders and expects back.
	WireFormat = "02-01-2006"
	isoFormat  = "2006-01-02"
)

// Date is a calendar date that can be unmarshaled from either an ISO date or
// a DD-MM-YYYY string, and always marshals as DD-MM-YYYY.
type Date struct {
	time.Time
}

// Today returns the current calendar date.
func Today() Date {
	return Date{time.Now().UTC().Truncate(24 * time.Hour)}
}

// NewDate builds a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(WireFormat) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}

// Value implements the driver.Valuer interface so the column is stored as a
// plain DATE.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements the sql.Scanner interface. Dialects disagree on whether a
// DATE column comes back as time.Time or text, so both are accepted.
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{v}
		return nil
	case string:
		t, err := parseDate(v)
		if err != nil {
			return err
		}
		*d = Date{t}
		return nil
	case []byte:
		t, err := parseDate(string(v))
		if err != nil {
			return err
		}
		*d = Date{t}
		return nil
	}
	return fmt.Errorf("Date: cannot scan %T", value)
}

// GormDataType reports the common data type used for migration.
func (Date) GormDataType() string {
	return "date"
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{
		isoFormat,
		WireFormat,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date: invalid date %q, expected YYYY-MM-DD or DD-MM-YYYY", s)
}
