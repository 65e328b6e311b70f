// Package api はヒートマップAPIサーバー実装を提供します。
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/revers3ntropy/svelte-heatmap/config"
	"github.com/revers3ntropy/svelte-heatmap/model"
	"github.com/revers3ntropy/svelte-heatmap/store"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router *http.ServeMux
	store  store.ObservationStore
	config *config.Config
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Error encoding error response")
	}
}

// writeJSON はJSON形式でレスポンスを返却します。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(store store.ObservationStore, config *config.Config) *Server {
	s := &Server{
		router: http.NewServeMux(),
		store:  store,
		config: config,
	}
	s.routes()
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	// ヘルスチェックエンドポイントは認証不要
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// すべての保護されたエンドポイントをまずセキュアなルータに登録
	securedHandler := http.NewServeMux()

	// Observation endpoints
	securedHandler.HandleFunc("POST /api/v0/obs", s.handleCreateObservation)
	securedHandler.HandleFunc("GET /api/v0/obs", s.handleListObservations)
	securedHandler.HandleFunc("GET /api/v0/obs/{observation_id}", s.handleGetObservation)
	securedHandler.HandleFunc("DELETE /api/v0/obs/{observation_id}", s.handleDeleteObservation)

	// Series endpoints
	securedHandler.HandleFunc("GET /api/v0/s", s.handleListSeries)
	securedHandler.HandleFunc("DELETE /api/v0/s/{series}", s.handleDeleteSeries)

	// 認証ミドルウェアを適用し、メインルータにマウント
	s.router.Handle("/api/", s.authMiddleware(securedHandler))

	// Heatmap data endpoints - public so renderers can embed them
	s.router.HandleFunc("GET /s/{series}/calendar", s.handleGetCalendar)
	s.router.HandleFunc("GET /s/{series}/weeks", s.handleGetWeeks)
	s.router.HandleFunc("GET /s/{series}/months", s.handleGetMonths)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run はHTTPサーバーを起動します。
func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateObservationParams represents parameters for creating an observation.
type CreateObservationParams struct {
	Series    *model.SeriesName
	Timestamp *model.Timestamp
	Value     *model.Value
}

// NewCreateObservationParams creates parameters for observation creation from HTTP request.
func NewCreateObservationParams(r *http.Request) (*CreateObservationParams, error) {
	var requestBody struct {
		Series    string   `json:"series"`
		Timestamp string   `json:"timestamp"`
		Value     *float64 `json:"value"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	series, err := model.NewSeriesName(requestBody.Series)
	if err != nil {
		return nil, err
	}

	timestamp, err := model.NewTimestamp(requestBody.Timestamp)
	if err != nil {
		return nil, err
	}

	value, err := model.NewValue(requestBody.Value)
	if err != nil {
		return nil, err
	}

	return &CreateObservationParams{
		Series:    series,
		Timestamp: timestamp,
		Value:     value,
	}, nil
}

// handleCreateObservation は観測値作成エンドポイントのハンドラーです。
func (s *Server) handleCreateObservation(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewCreateObservationParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 新しい観測値の作成
	obs, err := model.NewObservation(params.Timestamp.Time(), params.Series.String(), params.Value.Float())
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 観測値の保存
	if err := s.store.CreateObservation(r.Context(), obs); err != nil {
		log.Error().Err(err).Msg("Error creating observation")
		writeJSONError(w, "Failed to create observation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, obs)
}

// ListObservationsParams represents parameters for listing observations.
type ListObservationsParams struct {
	Series    *model.SeriesName
	DateRange *model.DateRange
}

// NewListObservationsParams creates parameters for observation listing from HTTP request.
func NewListObservationsParams(r *http.Request) (*ListObservationsParams, error) {
	query := r.URL.Query()

	series, err := model.NewSeriesName(query.Get("series"))
	if err != nil {
		return nil, err
	}

	dateRange, err := model.NewDateRange(query.Get("from"), query.Get("to"))
	if err != nil {
		return nil, err
	}

	return &ListObservationsParams{
		Series:    series,
		DateRange: dateRange,
	}, nil
}

// handleListObservations は観測値一覧エンドポイントのハンドラーです。
func (s *Server) handleListObservations(w http.ResponseWriter, r *http.Request) {
	params, err := NewListObservationsParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	observations, err := s.store.ListObservations(r.Context(), params.Series.String(), params.DateRange.From(), params.DateRange.To())
	if err != nil {
		log.Error().Err(err).Msg("Error listing observations")
		writeJSONError(w, "Failed to list observations", http.StatusInternalServerError)
		return
	}
	if observations == nil {
		observations = []*model.Observation{}
	}

	writeJSON(w, http.StatusOK, observations)
}

// GetObservationParams represents parameters for getting an observation.
type GetObservationParams struct {
	ObservationID *model.ObservationID
}

// NewGetObservationParams creates parameters for observation retrieval from HTTP request.
func NewGetObservationParams(r *http.Request) (*GetObservationParams, error) {
	id, err := model.NewObservationID(r.PathValue("observation_id"))
	if err != nil {
		return nil, err
	}

	return &GetObservationParams{ObservationID: id}, nil
}

// handleGetObservation は特定のIDの観測値を取得するハンドラーです。
func (s *Server) handleGetObservation(w http.ResponseWriter, r *http.Request) {
	params, err := NewGetObservationParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	obs, err := s.store.GetObservation(r.Context(), params.ObservationID.UUID())
	if err != nil {
		if errors.Is(err, model.ErrObservationNotFound) {
			writeJSONError(w, "Observation not found", http.StatusNotFound)
		} else {
			log.Error().Err(err).Msg("Error retrieving observation")
			writeJSONError(w, "Failed to retrieve observation", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, obs)
}

// handleDeleteObservation は特定のIDの観測値を削除するハンドラーです。
func (s *Server) handleDeleteObservation(w http.ResponseWriter, r *http.Request) {
	params, err := NewGetObservationParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteObservation(r.Context(), params.ObservationID.UUID()); err != nil {
		if errors.Is(err, model.ErrObservationNotFound) {
			writeJSONError(w, "Observation not found", http.StatusNotFound)
		} else {
			log.Error().Err(err).Msg("Error deleting observation")
			writeJSONError(w, "Failed to delete observation", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListSeries は系列名一覧エンドポイントのハンドラーです。
func (s *Server) handleListSeries(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.ListSeries(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing series")
		writeJSONError(w, "Failed to list series", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, http.StatusOK, names)
}

// handleDeleteSeries は系列のすべての観測値を削除するハンドラーです。
func (s *Server) handleDeleteSeries(w http.ResponseWriter, r *http.Request) {
	series, err := model.NewSeriesName(r.PathValue("series"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := s.store.DeleteSeries(r.Context(), series.String())
	if err != nil {
		log.Error().Err(err).Msg("Error deleting series")
		writeJSONError(w, "Failed to delete series", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
