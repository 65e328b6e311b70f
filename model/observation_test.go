package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewObservation(t *testing.T) {
	timestamp := time.Date(2020, 1, 15, 10, 0, 0, 0, time.UTC)

	obs, err := NewObservation(timestamp, "running", 2.5)
	if err != nil {
		t.Fatalf("NewObservation returned error: %v", err)
	}

	if obs.ID == uuid.Nil {
		t.Error("Expected generated ID")
	}
	if obs.Series != "running" {
		t.Errorf("Series = %q, want %q", obs.Series, "running")
	}
	if obs.Value != 2.5 {
		t.Errorf("Value = %v, want 2.5", obs.Value)
	}
	if !obs.Timestamp.Equal(timestamp) {
		t.Errorf("Timestamp = %v, want %v", obs.Timestamp, timestamp)
	}
}

func TestObservation_Validate(t *testing.T) {
	timestamp := time.Date(2020, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		series    string
		value     float64
		timestamp time.Time
		wantErr   bool
	}{
		{"valid", "running", 1, timestamp, false},
		{"empty series", "", 1, timestamp, true},
		{"series with space", "my series", 1, timestamp, true},
		{"series with slash", "a/b", 1, timestamp, true},
		{"zero value", "running", 0, timestamp, true},
		{"negative value", "running", -1, timestamp, true},
		{"zero timestamp", "running", 1, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewObservation(tt.timestamp, tt.series, tt.value)
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestLoadObservation(t *testing.T) {
	id := uuid.New()
	timestamp := time.Date(2020, 1, 15, 10, 0, 0, 0, time.UTC)

	obs, err := LoadObservation(id, timestamp, "running", 3)
	if err != nil {
		t.Fatalf("LoadObservation returned error: %v", err)
	}
	if obs.ID != id {
		t.Errorf("ID = %v, want %v", obs.ID, id)
	}

	// ロード時はIDが必須
	if _, err := LoadObservation(uuid.Nil, timestamp, "running", 3); err == nil {
		t.Error("Expected error for nil ID")
	}
}
