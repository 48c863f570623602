package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// openTestStore opens an isolated in-memory database per test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// importFixture loads a three-card dataset used across the store tests.
func importFixture(t *testing.T, s *Store) *DatasetSummary {
	t.Helper()
	payload := `{
		"datasetId": "jh-geo",
		"title": "地理",
		"description": "県庁所在地",
		"tags": ["社会"],
		"cards": [
			{"id": "c1", "question": "日本の首都は?", "answers": ["東京", "Tokyo"]},
			{"id": "c2", "question": "愛知県の県庁所在地は?", "answers": ["名古屋"]},
			{"id": "c3", "question": "The answer to everything?", "answers": ["42"]}
		]
	}`
	sum, err := s.ImportDataset(context.Background(), []byte(payload))
	if err != nil {
		t.Fatalf("import fixture: %v", err)
	}
	return sum
}

// gradeFixtureCard writes scheduling state and a review row for a card.
func gradeFixtureCard(t *testing.T, s *Store, datasetID, cardID string, dueAt int64) {
	t.Helper()
	last := dueAt - 3*24*60*60*1000
	err := s.SaveReview(context.Background(),
		CardState{
			CardID:       cardID,
			DatasetID:    datasetID,
			Stability:    3,
			Difficulty:   5,
			LastReviewAt: &last,
			DueAt:        dueAt,
			Reps:         1,
		},
		Review{
			CardID:     cardID,
			DatasetID:  datasetID,
			Grade:      3,
			ResponseMs: 1200,
			ReviewedAt: last,
		})
	if err != nil {
		t.Fatalf("grade %s/%s: %v", datasetID, cardID, err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestEndOfLocalDay(t *testing.T) {
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	end := endOfLocalDay(noon.UnixMilli())

	wantDay := time.UnixMilli(end).Local()
	if wantDay.Day() != 1 || wantDay.Hour() != 23 || wantDay.Minute() != 59 {
		t.Errorf("end of day = %v", wantDay)
	}
	if end <= noon.UnixMilli() {
		t.Error("end of day must be after noon")
	}
}
