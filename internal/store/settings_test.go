package store

import (
	"context"
	"testing"
)

func TestSettingsDefaults(t *testing.T) {
	s := openTestStore(t)
	settings, err := s.Settings(context.Background())
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.TargetRetention != 0.9 {
		t.Errorf("targetRetention = %v, want 0.9", settings.TargetRetention)
	}
	if settings.ExamDate != nil {
		t.Errorf("examDate = %v, want nil", *settings.ExamDate)
	}
}

func TestUpdateSettingsMergesPatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	exam := "2026-02-25"
	got, err := s.UpdateSettings(ctx, SettingsPatch{ExamDate: &exam})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.TargetRetention != 0.9 {
		t.Errorf("targetRetention = %v, want default preserved", got.TargetRetention)
	}
	if got.ExamDate == nil || *got.ExamDate != exam {
		t.Errorf("examDate = %v, want %q", got.ExamDate, exam)
	}

	// Patching the other field leaves the exam date alone.
	target := 0.8
	got, err = s.UpdateSettings(ctx, SettingsPatch{TargetRetention: &target})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.TargetRetention != 0.8 {
		t.Errorf("targetRetention = %v, want 0.8", got.TargetRetention)
	}
	if got.ExamDate == nil || *got.ExamDate != exam {
		t.Errorf("examDate = %v, want %q preserved", got.ExamDate, exam)
	}

	// Changes survive a fresh read.
	settings, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.TargetRetention != 0.8 || settings.ExamDate == nil {
		t.Errorf("settings = %+v, want persisted values", settings)
	}
}

func TestUpdateSettingsClearExamDate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	exam := "2026-02-25"
	if _, err := s.UpdateSettings(ctx, SettingsPatch{ExamDate: &exam}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.UpdateSettings(ctx, SettingsPatch{ClearExamDate: true})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got.ExamDate != nil {
		t.Errorf("examDate = %v, want nil", *got.ExamDate)
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.ExamDate != nil {
		t.Errorf("examDate persisted as %v, want nil", *settings.ExamDate)
	}
}
