package store

import (
	"context"
	"fmt"

	"github.com/hkawai/kioku/ent"
	"github.com/hkawai/kioku/ent/setting"
)

// settingsKey is the single settings row id.
const settingsKey = "app-settings"

// Settings returns the app preferences, or DefaultSettings when nothing
// has been written yet.
func (s *Store) Settings(ctx context.Context) (Settings, error) {
	row, err := s.client.Setting.Query().
		Where(setting.KeyEQ(settingsKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultSettings, nil
		}
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return Settings{
		TargetRetention: row.TargetRetention,
		ExamDate:        row.ExamDate,
	}, nil
}

// UpdateSettings merges a partial update into the current settings and
// returns the result. Unset patch fields keep their stored values.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) (Settings, error) {
	current, err := s.Settings(ctx)
	if err != nil {
		return Settings{}, err
	}

	next := current
	if patch.TargetRetention != nil {
		next.TargetRetention = *patch.TargetRetention
	}
	if patch.ClearExamDate {
		next.ExamDate = nil
	} else if patch.ExamDate != nil {
		next.ExamDate = patch.ExamDate
	}

	err = s.withTx(ctx, "update settings", func(tx *ent.Tx) error {
		return writeSettings(ctx, tx, next)
	})
	if err != nil {
		return Settings{}, err
	}
	return next, nil
}

func writeSettings(ctx context.Context, tx *ent.Tx, value Settings) error {
	existing, err := tx.Setting.Query().
		Where(setting.KeyEQ(settingsKey)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().SetTargetRetention(value.TargetRetention)
		if value.ExamDate == nil {
			upd = upd.ClearExamDate()
		} else {
			upd = upd.SetExamDate(*value.ExamDate)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update settings row: %w", err)
		}
	case ent.IsNotFound(err):
		_, err = tx.Setting.Create().
			SetKey(settingsKey).
			SetTargetRetention(value.TargetRetention).
			SetNillableExamDate(value.ExamDate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create settings row: %w", err)
		}
	default:
		return fmt.Errorf("get settings row: %w", err)
	}
	return nil
}
