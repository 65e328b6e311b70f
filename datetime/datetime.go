// Package datetime provides day-granularity date normalization and
// calendar boundary helpers used by the heatmap builder.
package datetime

import (
	"fmt"
	"time"
)

// MillisPerDay is the length of one calendar day in milliseconds.
const MillisPerDay = 86_400_000

// DateLike is any value that Normalize can collapse to a calendar day:
// time.Time, *time.Time, an RFC3339 or YYYY-MM-DD string, or an
// integer/float epoch timestamp in milliseconds.
type DateLike = any

// Normalize collapses a date-like input to day granularity (00:00:00 local).
// It returns an error for nil, unparseable strings and unsupported types.
func Normalize(input DateLike) (time.Time, error) {
	switch v := input.(type) {
	case time.Time:
		return StartOfDay(v), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil date")
		}
		return StartOfDay(*v), nil
	case string:
		t, err := parseDateTime(v)
		if err != nil {
			return time.Time{}, err
		}
		return StartOfDay(t), nil
	case int:
		return StartOfDay(time.UnixMilli(int64(v))), nil
	case int64:
		return StartOfDay(time.UnixMilli(v)), nil
	case float64:
		return StartOfDay(time.UnixMilli(int64(v))), nil
	case nil:
		return time.Time{}, fmt.Errorf("nil date")
	default:
		return time.Time{}, fmt.Errorf("unsupported date value of type %T", input)
	}
}

// parseDateTime parses date string with flexible format support.
func parseDateTime(dateStr string) (time.Time, error) {
	// Try RFC3339 format first (with time)
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}

	// Try date-only format (YYYY-MM-DD)
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date %q", dateStr)
}

// StartOfDay zeroes the time component.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Sunday on or before t, at day granularity.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// WeekEnd returns the Saturday on or after t, at day granularity.
func WeekEnd(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 6-int(t.Weekday()))
}

// MonthStart returns the first day of the month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of the month containing t.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}
