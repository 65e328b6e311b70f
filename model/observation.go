// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Observation はヒートマップの元になる1件の観測値を表すモデルです。
type Observation struct {
	ID        uuid.UUID `json:"id"`
	Series    string    `json:"series"`    // 系列名
	Value     float64   `json:"value"`     // 観測値
	Timestamp time.Time `json:"timestamp"` // 観測日時
}

// NewObservation はObservationの新しいインスタンスを作成します。
// IDはサーバー側で生成されます。
func NewObservation(timestamp time.Time, series string, value float64) (*Observation, error) {
	obs := &Observation{
		ID:        uuid.New(),
		Series:    series,
		Value:     value,
		Timestamp: timestamp,
	}
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	return obs, nil
}

// LoadObservation は既存のObservationインスタンスを作成します。
func LoadObservation(id uuid.UUID, timestamp time.Time, series string, value float64) (*Observation, error) {
	obs := &Observation{
		ID:        id,
		Series:    series,
		Value:     value,
		Timestamp: timestamp,
	}
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	return obs, nil
}

// Validate は観測値のデータバリデーションを行います。
func (o *Observation) Validate() error {
	if o.ID == uuid.Nil {
		return errors.New("id is required")
	}

	if o.Timestamp.IsZero() {
		return errors.New("timestamp is required")
	}

	if o.Series == "" {
		return errors.New("series is required")
	}
	// 系列名はURLパスに使用するためスペースとスラッシュを禁止
	if strings.ContainsAny(o.Series, " /") {
		return errors.New("series cannot contain spaces or slashes")
	}

	if o.Value <= 0 {
		return errors.New("value must be positive")
	}

	return nil
}
