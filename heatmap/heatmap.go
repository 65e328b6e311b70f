// Package heatmap computes the visual data model for a calendar heatmap:
// a dense, contiguous sequence of days with aggregated values and
// relative-intensity colors, plus week/month row grouping for display.
package heatmap

import (
	"time"

	"github.com/revers3ntropy/svelte-heatmap/datetime"
)

// Observation is a single timestamped input sample. Multiple
// observations may land on the same calendar day.
type Observation struct {
	Date  datetime.DateLike
	Value float64
}

// Day is one calendar cell of the computed data model.
type Day struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Color string    `json:"color"`
}

// Row is an ordered group of days shown on one display row.
type Row []Day

// View selects the granularity the calendar range is widened to.
type View string

const (
	ViewWeekly  View = "weekly"
	ViewMonthly View = "monthly"
)
