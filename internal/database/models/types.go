package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date, stored as minutes since
// midnight. It maps to a Postgres "time" column. JSON output is always
// HH:mm:ss; input accepts HH:mm or HH:mm:ss.
type TimeOfDay int

// ParseTimeOfDay parses "HH:mm" or "HH:mm:ss". Seconds are discarded since
// tee times are minute-granular.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// Add returns the time of day advanced by the given number of minutes.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// String formats the time as HH:mm:ss.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60)
}

// Short formats the time as HH:mm.
func (t TimeOfDay) Short() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// MarshalJSON implements json.Marshaler.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDay(v.Hour()*60 + v.Minute())
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// GormDataType tells GORM which column type to use.
func (TimeOfDay) GormDataType() string {
	return "time"
}

// DateOnly is a calendar date without a time component, stored as a Postgres
// "date" column and exchanged as yyyy-MM-dd in JSON.
type DateOnly struct {
	time.Time
}

const dateOnlyLayout = "2006-01-02"

// ParseDateOnly parses a yyyy-MM-dd date string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOnly{Time: t}, nil
}

// String formats the date as yyyy-MM-dd.
func (d DateOnly) String() string {
	return d.Format(dateOnlyLayout)
}

// MarshalJSON implements json.Marshaler.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d DateOnly) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *DateOnly) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateOnly(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", src)
	}
}

// GormDataType tells GORM which column type to use.
func (DateOnly) GormDataType() string {
	return "date"
}
