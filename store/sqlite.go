// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/revers3ntropy/svelte-heatmap/model"
)

// ObservationStore は観測値の保存と取得を行うインターフェースです。
type ObservationStore interface {
	// CreateObservation は新しい観測値を作成します。
	CreateObservation(ctx context.Context, obs *model.Observation) error
	// GetObservation は指定されたIDの観測値を取得します。
	GetObservation(ctx context.Context, id uuid.UUID) (*model.Observation, error)
	// DeleteObservation は指定されたIDの観測値を削除します。
	DeleteObservation(ctx context.Context, id uuid.UUID) error
	// DeleteSeries は指定された系列のすべての観測値を削除し、削除件数を返します。
	DeleteSeries(ctx context.Context, series string) (int, error)
	// ListObservations は指定された系列の、指定した期間内の観測値を取得します。
	ListObservations(ctx context.Context, series string, from, to time.Time) ([]*model.Observation, error)
	// ListSeries は観測値が存在するすべての系列名を取得します。
	ListSeries(ctx context.Context) ([]string, error)
	// Close はストアの接続を閉じます。
	Close() error
}

// SQLiteStore はSQLiteを使用したObservationStoreの実装です。
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore は新しいSQLiteStoreを作成します。
func NewSQLiteStore(dataDir string, migrate func(*sql.DB) error) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// SQLiteデータベースファイルのパス
	dbPath := filepath.Join(dataDir, "heatmap.db")

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// スキーマの初期化
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStore{conn: conn}, nil
}

// CreateObservation は新しい観測値をデータベースに保存します。
func (s *SQLiteStore) CreateObservation(ctx context.Context, obs *model.Observation) error {
	// バリデーション
	if err := obs.Validate(); err != nil {
		return err
	}

	// 日時をRFC3339形式に統一して保存
	formattedTime := obs.Timestamp.Format(time.RFC3339)

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO observations (id, series, value, timestamp) VALUES (?, ?, ?, ?)`,
		obs.ID.String(), obs.Series, obs.Value, formattedTime)
	if err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}

	return nil
}

// GetObservation は指定されたIDの観測値を取得します。
func (s *SQLiteStore) GetObservation(ctx context.Context, id uuid.UUID) (*model.Observation, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, series, value, timestamp FROM observations WHERE id = ?`,
		id.String())

	var idStr, series, timestampStr string
	var value float64
	err := row.Scan(&idStr, &series, &value, &timestampStr)
	if err == sql.ErrNoRows {
		return nil, model.ErrObservationNotFound
	}
	if err != nil {
		return nil, err
	}

	return loadObservationRow(idStr, series, value, timestampStr)
}

// DeleteObservation は指定されたIDの観測値を削除します。
func (s *SQLiteStore) DeleteObservation(ctx context.Context, id uuid.UUID) error {
	result, err := s.conn.ExecContext(ctx,
		`DELETE FROM observations WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return model.ErrObservationNotFound
	}

	return nil
}

// DeleteSeries は指定された系列のすべての観測値を削除します。
func (s *SQLiteStore) DeleteSeries(ctx context.Context, series string) (int, error) {
	result, err := s.conn.ExecContext(ctx,
		`DELETE FROM observations WHERE series = ?`, series)
	if err != nil {
		return 0, fmt.Errorf("failed to delete series: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// ListObservations は指定された系列の、指定した期間内の観測値を取得します。
func (s *SQLiteStore) ListObservations(ctx context.Context, series string, from, to time.Time) ([]*model.Observation, error) {
	// 日付の範囲を丸一日に設定（秒以下の精度を取り除く）
	// fromは日付の始まりに設定
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	fromStr := fromDate.Format(time.RFC3339)

	// toは日付の終わりに設定（次の日の0時の直前）
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())
	toStr := toDate.Format(time.RFC3339)

	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, series, value, timestamp FROM observations
		 WHERE series = ? AND timestamp >= ? AND timestamp <= ?
		 ORDER BY timestamp ASC`,
		series, fromStr, toStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []*model.Observation
	for rows.Next() {
		var idStr, seriesName, timestampStr string
		var value float64
		if err := rows.Scan(&idStr, &seriesName, &value, &timestampStr); err != nil {
			return nil, err
		}

		obs, err := loadObservationRow(idStr, seriesName, value, timestampStr)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return observations, nil
}

// ListSeries は観測値が存在するすべての系列名を取得します。
func (s *SQLiteStore) ListSeries(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT DISTINCT series FROM observations ORDER BY series ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// loadObservationRow はデータベースの1行をObservationに変換します。
func loadObservationRow(idStr, series string, value float64, timestampStr string) (*model.Observation, error) {
	// 文字列から時間に変換
	timestamp, err := time.Parse(time.RFC3339, timestampStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse observation date: %w", err)
	}

	// UUIDの解析
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in database: %w", err)
	}

	return model.LoadObservation(id, timestamp, series, value)
}
