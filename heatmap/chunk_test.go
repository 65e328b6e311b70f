package heatmap

import (
	"testing"
	"time"
)

// makeCalendar builds a contiguous day sequence starting at the given date.
func makeCalendar(t *testing.T, start time.Time, days int) []Day {
	t.Helper()
	calendar := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		calendar = append(calendar, Day{
			Date:  start.AddDate(0, 0, i),
			Value: float64(i),
			Color: "#ebedf0",
		})
	}
	return calendar
}

func TestChunkWeeks_SplitsEverySeventhEntry(t *testing.T) {
	start := time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 14)

	rows, err := ChunkWeeks(ChunkOptions{AllowOverflow: true, Calendar: calendar})
	if err != nil {
		t.Fatalf("ChunkWeeks returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if len(row) != 7 {
			t.Errorf("len(rows[%d]) = %d, want 7", i, len(row))
		}
	}
	if !rows[1][0].Date.Equal(start.AddDate(0, 0, 7)) {
		t.Errorf("second row starts at %v, want %v", rows[1][0].Date, start.AddDate(0, 0, 7))
	}
}

func TestChunkWeeks_PartialLastRow(t *testing.T) {
	start := time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 10)

	rows, err := ChunkWeeks(ChunkOptions{AllowOverflow: true, Calendar: calendar})
	if err != nil {
		t.Fatalf("ChunkWeeks returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if len(rows[0]) != 7 || len(rows[1]) != 3 {
		t.Errorf("row lengths = %d, %d, want 7, 3", len(rows[0]), len(rows[1]))
	}
}

func TestChunkWeeks_BoundFiltering(t *testing.T) {
	// 2020-01-12〜18 の週を 15〜16 に切り詰める
	start := time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 7)

	rows, err := ChunkWeeks(ChunkOptions{
		Calendar:  calendar,
		StartDate: "2020-01-15",
		EndDate:   "2020-01-16",
	})
	if err != nil {
		t.Fatalf("ChunkWeeks returned error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if len(rows[0]) != 2 {
		t.Fatalf("len(rows[0]) = %d, want 2", len(rows[0]))
	}
	if rows[0][0].Date.Day() != 15 || rows[0][1].Date.Day() != 16 {
		t.Errorf("surviving days = %v, %v, want 01-15, 01-16", rows[0][0].Date, rows[0][1].Date)
	}
}

func TestChunkWeeks_AllowOverflowKeepsAll(t *testing.T) {
	start := time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 7)

	rows, err := ChunkWeeks(ChunkOptions{
		AllowOverflow: true,
		Calendar:      calendar,
		StartDate:     "2020-01-15",
		EndDate:       "2020-01-16",
	})
	if err != nil {
		t.Fatalf("ChunkWeeks returned error: %v", err)
	}

	if len(rows) != 1 || len(rows[0]) != 7 {
		t.Errorf("Expected a single full row with overflow allowed, got %d rows", len(rows))
	}
}

func TestChunkWeeks_DropsEmptyRows(t *testing.T) {
	start := time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 21)

	// 2週目だけが残り、1週目と3週目は空になって落ちる
	rows, err := ChunkWeeks(ChunkOptions{
		Calendar:  calendar,
		StartDate: "2020-01-19",
		EndDate:   "2020-01-25",
	})
	if err != nil {
		t.Fatalf("ChunkWeeks returned error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	for _, row := range rows {
		if len(row) == 0 {
			t.Fatal("Chunker must never emit an empty row")
		}
	}
}

func TestChunkWeeks_NoMatchesYieldsNoRows(t *testing.T) {
	start := time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 7)

	rows, err := ChunkWeeks(ChunkOptions{
		Calendar:  calendar,
		StartDate: "2020-02-01",
	})
	if err != nil {
		t.Fatalf("ChunkWeeks returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestChunkMonths_SplitsOnMonthChange(t *testing.T) {
	// 2020-01-30〜02-02: 月替わりで行が分かれる
	start := time.Date(2020, 1, 30, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 4)

	rows, err := ChunkMonths(ChunkOptions{AllowOverflow: true, Calendar: calendar})
	if err != nil {
		t.Fatalf("ChunkMonths returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[1]) != 2 {
		t.Errorf("row lengths = %d, %d, want 2, 2", len(rows[0]), len(rows[1]))
	}
	if rows[0][1].Date.Month() != time.January || rows[1][0].Date.Month() != time.February {
		t.Error("Expected rows split exactly at the month boundary")
	}
}

func TestChunkMonths_SingleMonthSingleRow(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 31)

	rows, err := ChunkMonths(ChunkOptions{AllowOverflow: true, Calendar: calendar})
	if err != nil {
		t.Fatalf("ChunkMonths returned error: %v", err)
	}
	if len(rows) != 1 || len(rows[0]) != 31 {
		t.Errorf("Expected one 31-day row, got %d rows", len(rows))
	}
}

func TestChunkMonths_DropsFilteredMonth(t *testing.T) {
	start := time.Date(2020, 1, 30, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 4)

	// 2月分は範囲外で全滅し、行ごと落ちる
	rows, err := ChunkMonths(ChunkOptions{
		Calendar: calendar,
		EndDate:  "2020-01-31",
	})
	if err != nil {
		t.Fatalf("ChunkMonths returned error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if len(rows[0]) != 2 {
		t.Errorf("len(rows[0]) = %d, want 2", len(rows[0]))
	}
}

func TestChunkMonths_PreservesOrder(t *testing.T) {
	start := time.Date(2020, 1, 25, 0, 0, 0, 0, time.UTC)
	calendar := makeCalendar(t, start, 20)

	rows, err := ChunkMonths(ChunkOptions{AllowOverflow: true, Calendar: calendar})
	if err != nil {
		t.Fatalf("ChunkMonths returned error: %v", err)
	}

	prev := time.Time{}
	for _, row := range rows {
		for _, day := range row {
			if !prev.IsZero() && !day.Date.After(prev) {
				t.Fatalf("Days out of order: %v after %v", day.Date, prev)
			}
			prev = day.Date
		}
	}
}

func TestChunk_InvalidBound(t *testing.T) {
	calendar := makeCalendar(t, time.Date(2020, 1, 12, 0, 0, 0, 0, time.UTC), 7)

	if _, err := ChunkWeeks(ChunkOptions{Calendar: calendar, StartDate: "bogus"}); err == nil {
		t.Error("Expected error for invalid start bound")
	}
	if _, err := ChunkMonths(ChunkOptions{Calendar: calendar, EndDate: "bogus"}); err == nil {
		t.Error("Expected error for invalid end bound")
	}
}
