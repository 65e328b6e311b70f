package heatmap

import (
	"time"

	"github.com/revers3ntropy/svelte-heatmap/datetime"
)

const daysPerWeek = 7

// ChunkOptions configures ChunkWeeks and ChunkMonths. A nil StartDate
// or EndDate leaves that side unbounded; AllowOverflow disables bound
// filtering entirely.
type ChunkOptions struct {
	AllowOverflow bool
	Calendar      []Day
	StartDate     datetime.DateLike
	EndDate       datetime.DateLike
}

// ChunkWeeks partitions a built calendar into 7-entry rows by sequence
// position. Entries outside the bounds are dropped, and so is any row
// left empty after filtering.
func ChunkWeeks(opts ChunkOptions) ([]Row, error) {
	start, end, err := opts.bounds()
	if err != nil {
		return nil, err
	}

	var rows []Row
	var row Row
	for i, day := range opts.Calendar {
		if i > 0 && i%daysPerWeek == 0 {
			if len(row) > 0 {
				rows = append(rows, row)
			}
			row = nil
		}
		if opts.includes(day, start, end) {
			row = append(row, day)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return rows, nil
}

// ChunkMonths partitions a built calendar into rows by calendar month:
// a change of month always starts a new row. Filtering and empty-row
// cleanup follow ChunkWeeks.
func ChunkMonths(opts ChunkOptions) ([]Row, error) {
	start, end, err := opts.bounds()
	if err != nil {
		return nil, err
	}

	var rows []Row
	var row Row
	for i, day := range opts.Calendar {
		if i > 0 && !sameMonth(day.Date, opts.Calendar[i-1].Date) {
			if len(row) > 0 {
				rows = append(rows, row)
			}
			row = nil
		}
		if opts.includes(day, start, end) {
			row = append(row, day)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return rows, nil
}

// bounds normalizes the optional start/end bounds to day granularity.
func (o ChunkOptions) bounds() (start, end *time.Time, err error) {
	if o.StartDate != nil {
		t, err := datetime.Normalize(o.StartDate)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if o.EndDate != nil {
		t, err := datetime.Normalize(o.EndDate)
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	return start, end, nil
}

func (o ChunkOptions) includes(day Day, start, end *time.Time) bool {
	if o.AllowOverflow {
		return true
	}
	if start != nil && day.Date.Before(*start) {
		return false
	}
	if end != nil && day.Date.After(*end) {
		return false
	}
	return true
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
