// Package model provides value objects for API parameter validation.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/revers3ntropy/svelte-heatmap/heatmap"
)

// SeriesName represents a series name value object.
type SeriesName struct {
	value string
}

// NewSeriesName creates a new series name value object.
func NewSeriesName(name string) (*SeriesName, error) {
	if name == "" {
		return nil, fmt.Errorf("series name is required")
	}
	if strings.ContainsAny(name, " /") {
		return nil, fmt.Errorf("series name cannot contain spaces or slashes")
	}
	return &SeriesName{value: name}, nil
}

// String returns the series name string.
func (s *SeriesName) String() string {
	return s.value
}

// DateRange represents a date range value object.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange creates a new date range value object.
func NewDateRange(fromStr, toStr string) (*DateRange, error) {
	var fromTime, toTime time.Time
	var err error

	// Process from parameter
	if fromStr != "" {
		fromTime, err = parseDateTime(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		defaultFrom, _ := getDefaultDateRange()
		fromTime = defaultFrom
	}

	// Process to parameter
	if toStr != "" {
		toTime, err = parseDateTime(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter. Use ISO8601 format (YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ)")
		}
	} else {
		_, defaultTo := getDefaultDateRange()
		toTime = defaultTo
	}

	// Normalize from time to beginning of day (00:00:00)
	fromTime = normalizeToBeginOfDay(fromTime)
	// Normalize to time to end of day (23:59:59.999999999)
	toTime = normalizeToEndOfDay(toTime)

	return &DateRange{from: fromTime, to: toTime}, nil
}

// From returns the start date.
func (d *DateRange) From() time.Time {
	return d.from
}

// To returns the end date.
func (d *DateRange) To() time.Time {
	return d.to
}

// getDefaultDateRange calculates the default date range for the latest week + 52 weeks.
func getDefaultDateRange() (time.Time, time.Time) {
	now := time.Now()
	weekday := int(now.Weekday())
	latestWeekStart := now.AddDate(0, 0, -weekday)
	defaultFrom := latestWeekStart.AddDate(0, 0, -52*7)
	return defaultFrom, now
}

// normalizeToBeginOfDay normalizes time to beginning of day (00:00:00).
func normalizeToBeginOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// normalizeToEndOfDay normalizes time to end of day (23:59:59.999999999).
func normalizeToEndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
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

	return time.Time{}, fmt.Errorf("unable to parse date")
}

// ObservationID represents an observation ID value object.
type ObservationID struct {
	value uuid.UUID
}

// NewObservationID creates a new observation ID value object.
func NewObservationID(idStr string) (*ObservationID, error) {
	if idStr == "" {
		return nil, fmt.Errorf("observation ID is required")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format")
	}

	return &ObservationID{value: id}, nil
}

// UUID returns the UUID value.
func (o *ObservationID) UUID() uuid.UUID {
	return o.value
}

// Timestamp represents a timestamp value object.
type Timestamp struct {
	value time.Time
}

// NewTimestamp creates a new timestamp value object.
func NewTimestamp(timestampStr string) (*Timestamp, error) {
	if timestampStr == "" {
		// Use current time for empty string
		return &Timestamp{value: time.Now()}, nil
	}

	timestamp, err := time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime format. Use ISO8601 format (YYYY-MM-DDThh:mm:ssZ)")
	}

	return &Timestamp{value: timestamp}, nil
}

// Time returns the time value.
func (t *Timestamp) Time() time.Time {
	return t.value
}

// Value represents a positive numeric value object.
type Value struct {
	value float64
}

// NewValue creates a new value object.
func NewValue(val *float64) (*Value, error) {
	if val == nil {
		// Use default value 1 for nil
		return &Value{value: 1}, nil
	}

	if *val <= 0 {
		return nil, fmt.Errorf("value must be a positive number")
	}

	return &Value{value: *val}, nil
}

// Float returns the numeric value.
func (v *Value) Float() float64 {
	return v.value
}

// ColorScale represents an ordered color scale value object.
type ColorScale struct {
	values []string
}

// NewColorScale creates a color scale from a comma-separated token list.
// An empty string yields an empty scale.
func NewColorScale(colorsStr string) *ColorScale {
	if colorsStr == "" {
		return &ColorScale{values: nil}
	}

	colors := strings.Split(colorsStr, ",")
	for i, c := range colors {
		colors[i] = strings.TrimSpace(c)
	}
	var filtered []string
	for _, c := range colors {
		if c != "" {
			filtered = append(filtered, c)
		}
	}

	return &ColorScale{values: filtered}
}

// Values returns the color list, lowest intensity first.
func (c *ColorScale) Values() []string {
	return c.values
}

// IsEmpty checks if the scale is empty.
func (c *ColorScale) IsEmpty() bool {
	return len(c.values) == 0
}

// View represents a calendar view granularity value object.
type View struct {
	value heatmap.View
}

// NewView creates a new view value object. Empty input defaults to the
// weekly view.
func NewView(viewStr string) (*View, error) {
	switch viewStr {
	case "":
		return &View{value: heatmap.ViewWeekly}, nil
	case string(heatmap.ViewWeekly):
		return &View{value: heatmap.ViewWeekly}, nil
	case string(heatmap.ViewMonthly):
		return &View{value: heatmap.ViewMonthly}, nil
	default:
		return nil, fmt.Errorf("invalid view parameter. Use \"weekly\" or \"monthly\"")
	}
}

// View returns the heatmap view value.
func (v *View) View() heatmap.View {
	return v.value
}
