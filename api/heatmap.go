package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/revers3ntropy/svelte-heatmap/heatmap"
	"github.com/revers3ntropy/svelte-heatmap/model"
)

// デフォルトのカラースケール（GitHub風の緑系4段階）と空セル色
var defaultColors = []string{"#9be9a8", "#40c463", "#30a14e", "#216e39"}

const defaultEmptyColor = "#ebedf0"

// HeatmapParams represents parameters for the heatmap data endpoints.
type HeatmapParams struct {
	Series        *model.SeriesName
	DateRange     *model.DateRange
	View          *model.View
	Colors        *model.ColorScale
	EmptyColor    string
	AllowOverflow bool
}

// NewHeatmapParams creates parameters for heatmap data generation from HTTP request.
func NewHeatmapParams(r *http.Request) (*HeatmapParams, error) {
	series, err := model.NewSeriesName(r.PathValue("series"))
	if err != nil {
		return nil, err
	}

	query := r.URL.Query()

	dateRange, err := model.NewDateRange(query.Get("from"), query.Get("to"))
	if err != nil {
		return nil, err
	}

	view, err := model.NewView(query.Get("view"))
	if err != nil {
		return nil, err
	}

	emptyColor := query.Get("empty_color")
	if emptyColor == "" {
		emptyColor = defaultEmptyColor
	}

	return &HeatmapParams{
		Series:        series,
		DateRange:     dateRange,
		View:          view,
		Colors:        model.NewColorScale(query.Get("colors")),
		EmptyColor:    emptyColor,
		AllowOverflow: query.Get("overflow") == "true",
	}, nil
}

// buildCalendar は系列の観測値からカレンダーデータモデルを構築します。
func (s *Server) buildCalendar(r *http.Request, params *HeatmapParams) ([]heatmap.Day, error) {
	observations, err := s.store.ListObservations(r.Context(), params.Series.String(), params.DateRange.From(), params.DateRange.To())
	if err != nil {
		return nil, err
	}

	data := make([]heatmap.Observation, 0, len(observations))
	for _, obs := range observations {
		data = append(data, heatmap.Observation{
			Date:  obs.Timestamp,
			Value: obs.Value,
		})
	}

	colors := params.Colors.Values()
	if params.Colors.IsEmpty() {
		colors = defaultColors
	}

	return heatmap.GetCalendar(heatmap.CalendarOptions{
		Colors:     colors,
		Data:       data,
		EmptyColor: params.EmptyColor,
		StartDate:  params.DateRange.From(),
		EndDate:    params.DateRange.To(),
		View:       params.View.View(),
	})
}

// handleGetCalendar は系列のカレンダーデータモデルを返すハンドラーです。
func (s *Server) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	params, err := NewHeatmapParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	calendar, err := s.buildCalendar(r, params)
	if err != nil {
		log.Error().Err(err).Msg("Error building calendar")
		writeJSONError(w, "Failed to build calendar", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, calendar)
}

// handleGetWeeks はカレンダーを週単位の行に分割して返すハンドラーです。
func (s *Server) handleGetWeeks(w http.ResponseWriter, r *http.Request) {
	s.handleChunked(w, r, heatmap.ChunkWeeks)
}

// handleGetMonths はカレンダーを月単位の行に分割して返すハンドラーです。
func (s *Server) handleGetMonths(w http.ResponseWriter, r *http.Request) {
	s.handleChunked(w, r, heatmap.ChunkMonths)
}

// handleChunked はカレンダー構築と行分割の共通処理です。
func (s *Server) handleChunked(w http.ResponseWriter, r *http.Request, chunk func(heatmap.ChunkOptions) ([]heatmap.Row, error)) {
	params, err := NewHeatmapParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	calendar, err := s.buildCalendar(r, params)
	if err != nil {
		log.Error().Err(err).Msg("Error building calendar")
		writeJSONError(w, "Failed to build calendar", http.StatusInternalServerError)
		return
	}

	// 要求された期間の外側にはみ出した日はoverflow=trueの場合のみ含める
	rows, err := chunk(heatmap.ChunkOptions{
		AllowOverflow: params.AllowOverflow,
		Calendar:      calendar,
		StartDate:     params.DateRange.From(),
		EndDate:       params.DateRange.To(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Error chunking calendar")
		writeJSONError(w, "Failed to chunk calendar", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []heatmap.Row{}
	}

	writeJSON(w, http.StatusOK, rows)
}
