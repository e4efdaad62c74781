// Package types implements special types for the finance tracker.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrMonthFormat is returned when a month token is not in YYYY-MM format.
var ErrMonthFormat = errors.New("the month must be in YYYY-MM format with a month between 01 and 12")

var monthToken = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

// Month is a month in a specific year. It is always anchored at
// 00:00 UTC on the first day of the month.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs, evaluated in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
//
// Only the literal four digit year, dash, two digit month shape is accepted.
func ParseMonth(s string) (Month, error) {
	if !monthToken.MatchString(s) {
		return Month{}, ErrMonthFormat
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %s", ErrMonthFormat, strings.TrimPrefix(err.Error(), "parsing time "))
	}

	return NewMonth(t.Year(), t.Month()), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Start returns the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End returns the first instant of the following month. It is
// exclusive, so [Start, End) covers exactly the days of the month.
func (m Month) End() time.Time {
	return time.Time(m.AddDate(0, 1))
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start()) && t.Before(m.End())
}
