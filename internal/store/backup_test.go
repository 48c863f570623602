package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestBackupRoundTrip(t *testing.T) {
	src := openTestStore(t)
	ctx := context.Background()
	importFixture(t, src)
	now := time.Now().UnixMilli()
	gradeFixtureCard(t, src, "jh-geo", "c1", now)
	if _, err := src.DetectConfusion(ctx, "jh-geo", "c1", "42"); err != nil {
		t.Fatalf("detect: %v", err)
	}
	target := 0.85
	if _, err := src.UpdateSettings(ctx, SettingsPatch{TargetRetention: &target}); err != nil {
		t.Fatalf("settings: %v", err)
	}

	backup, err := src.ExportAll(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if backup.Version != BackupVersion {
		t.Errorf("version = %d, want %d", backup.Version, BackupVersion)
	}
	raw, err := json.Marshal(backup)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	dst := openTestStore(t)
	if err := dst.ImportAll(ctx, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	cards, err := dst.CardsByDataset(ctx, "jh-geo")
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(cards) != 3 {
		t.Errorf("cards = %d, want 3", len(cards))
	}
	states, err := dst.CardStatesByDataset(ctx, "jh-geo")
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	if len(states) != 1 || states[0].CardID != "c1" {
		t.Errorf("states = %+v", states)
	}
	reviews, err := dst.ReviewsByDataset(ctx, "jh-geo")
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("reviews = %d, want 1", len(reviews))
	}
	stats, err := dst.TopConfusions(ctx, "jh-geo", 10)
	if err != nil {
		t.Fatalf("confusions: %v", err)
	}
	if len(stats) != 1 || stats[0].Count != 1 {
		t.Errorf("confusions = %+v", stats)
	}
	settings, err := dst.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.TargetRetention != 0.85 {
		t.Errorf("targetRetention = %v, want 0.85", settings.TargetRetention)
	}
}

func TestImportAllReplacesExistingData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	empty := Backup{Version: BackupVersion, ExportedAt: time.Now().UTC().Format(time.RFC3339)}
	raw, _ := json.Marshal(empty)
	if err := s.ImportAll(ctx, raw); err != nil {
		t.Fatalf("import: %v", err)
	}
	datasets, err := s.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(datasets) != 0 {
		t.Errorf("datasets = %d, want 0 after restore", len(datasets))
	}
}

func TestImportAllRejectsUnknownVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	raw := []byte(`{"version": 2, "exportedAt": "2026-01-01T00:00:00Z"}`)
	err := s.ImportAll(ctx, raw)
	var ferr *ErrFormat
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}

	// The store is untouched.
	datasets, err := s.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(datasets) != 1 {
		t.Errorf("datasets = %d, want 1", len(datasets))
	}
}

func TestImportAllRejectsMalformedJSON(t *testing.T) {
	s := openTestStore(t)
	err := s.ImportAll(context.Background(), []byte("not json"))
	var ferr *ErrFormat
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
}
