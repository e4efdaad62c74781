package report

import (
	"time"

	"github.com/fintrack-api/backend/internal/types"
)

// Range is the half-open time range [Start, End) of a report.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// RangeOf returns the Range covering the month.
func RangeOf(m types.Month) Range {
	return Range{
		Start: m.Start(),
		End:   m.End(),
		Label: m.String(),
	}
}

// ParseRange returns the Range for a month token.
//
// A nil token selects the month that now falls in, evaluated in UTC.
// A token that is set, even to the empty string, must be a valid
// YYYY-MM month.
func ParseRange(token *string, now time.Time) (Range, error) {
	if token == nil {
		return RangeOf(types.MonthOf(now)), nil
	}

	m, err := types.ParseMonth(*token)
	if err != nil {
		return Range{}, ValidationError{Err: err}
	}

	return RangeOf(m), nil
}

// Contains reports whether t is in the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
