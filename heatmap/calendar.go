package heatmap

import (
	"time"

	"github.com/revers3ntropy/svelte-heatmap/datetime"
)

// CalendarOptions configures GetCalendar. StartDate and EndDate default
// to the current moment when nil; View defaults to ViewWeekly.
type CalendarOptions struct {
	Colors     []string
	Data       []Observation
	EmptyColor string
	StartDate  datetime.DateLike
	EndDate    datetime.DateLike
	View       View
}

// GetDay sums every observation whose normalized date falls on the day
// at the given offset from the anchor. The target day is built from the
// anchor's month and startDayOfMonth+offset; the exclusive upper bound
// is exactly one day later. A day with no matching observations has
// value 0.
func GetDay(data []Observation, offset int, startDate time.Time, startDayOfMonth int) (Day, error) {
	dayStart := time.Date(startDate.Year(), startDate.Month(), startDayOfMonth+offset, 0, 0, 0, 0, startDate.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var sum float64
	for _, o := range data {
		d, err := datetime.Normalize(o.Date)
		if err != nil {
			return Day{}, err
		}
		if !d.Before(dayStart) && d.Before(dayEnd) {
			sum += o.Value
		}
	}

	return Day{Date: dayStart, Value: sum}, nil
}

// GetCalendar builds the dense day sequence for the requested range:
// one entry per day, contiguous and ascending, each carrying the
// aggregated value and the color for its relative intensity.
func GetCalendar(opts CalendarOptions) ([]Day, error) {
	startInput := opts.StartDate
	if startInput == nil {
		startInput = time.Now()
	}
	endInput := opts.EndDate
	if endInput == nil {
		endInput = time.Now()
	}

	start, err := datetime.Normalize(startInput)
	if err != nil {
		return nil, err
	}
	end, err := datetime.Normalize(endInput)
	if err != nil {
		return nil, err
	}

	if opts.View == ViewMonthly {
		start = datetime.MonthStart(start)
		end = datetime.MonthEnd(end)
	} else {
		start = datetime.WeekStart(start)
		end = datetime.WeekEnd(end)
	}

	totalDays := int(end.Sub(start).Milliseconds()/datetime.MillisPerDay) + 1

	days := make([]Day, 0, totalDays)
	var max float64
	for offset := 0; offset < totalDays; offset++ {
		day, err := GetDay(opts.Data, offset, start, start.Day())
		if err != nil {
			return nil, err
		}
		if day.Value > max {
			max = day.Value
		}
		days = append(days, day)
	}

	// The scale is relative, so the range maximum must be final before
	// any day can be colored.
	for i := range days {
		color, ok := GetColor(opts.Colors, max, days[i].Value)
		if !ok {
			color = opts.EmptyColor
		}
		days[i].Color = color
	}

	return days, nil
}
