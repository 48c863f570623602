package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hkawai/kioku/ent"
)

// BackupVersion is the schema version this build writes and the only one
// it restores.
const BackupVersion = 1

// Backup is a full snapshot of all six tables.
type Backup struct {
	Version    int               `json:"version"`
	ExportedAt string            `json:"exportedAt"`
	Datasets   []DatasetSummary  `json:"datasets"`
	Cards      []BackupCard      `json:"cards"`
	CardState  []BackupCardState `json:"cardState"`
	Reviews    []Review          `json:"reviews"`
	Confusions []BackupConfusion `json:"confusions"`
	Settings   []SettingsRecord  `json:"settings"`
}

// BackupCard carries a card with its owning dataset and composite key.
type BackupCard struct {
	Card
	DatasetID string `json:"datasetId"`
	Key       string `json:"dbKey"`
}

// BackupCardState carries a card state row with its composite key.
type BackupCardState struct {
	CardState
	Key string `json:"id"`
}

// BackupConfusion carries a confusion row with its composite key.
type BackupConfusion struct {
	ConfusionRecord
	Key string `json:"id"`
}

// SettingsRecord is the settings table row as exported.
type SettingsRecord struct {
	ID    string   `json:"id"`
	Value Settings `json:"value"`
}

// ExportAll snapshots the whole database.
func (s *Store) ExportAll(ctx context.Context) (*Backup, error) {
	backup := &Backup{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	datasets, err := s.client.Dataset.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export datasets: %w", err)
	}
	for _, row := range datasets {
		backup.Datasets = append(backup.Datasets, summaryFromRow(row))
	}

	cards, err := s.client.Card.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export cards: %w", err)
	}
	for _, row := range cards {
		backup.Cards = append(backup.Cards, BackupCard{
			Card:      cardFromRow(row),
			DatasetID: row.DatasetID,
			Key:       row.Key,
		})
	}

	states, err := s.client.CardState.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export card states: %w", err)
	}
	for _, row := range states {
		backup.CardState = append(backup.CardState, BackupCardState{
			CardState: stateFromRow(row),
			Key:       row.Key,
		})
	}

	reviews, err := s.client.Review.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export reviews: %w", err)
	}
	for _, row := range reviews {
		backup.Reviews = append(backup.Reviews, reviewFromRow(row))
	}

	confusions, err := s.client.Confusion.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export confusions: %w", err)
	}
	for _, row := range confusions {
		backup.Confusions = append(backup.Confusions, BackupConfusion{
			ConfusionRecord: ConfusionRecord{
				DatasetID: row.DatasetID,
				PairKey:   row.PairKey,
				CardA:     row.CardA,
				CardB:     row.CardB,
				Count:     row.Count,
			},
			Key: row.Key,
		})
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}
	backup.Settings = append(backup.Settings, SettingsRecord{ID: settingsKey, Value: settings})

	return backup, nil
}

// ImportAll restores a snapshot, replacing the entire database: every
// table is cleared, then bulk-inserted, in one transaction. A version tag
// other than BackupVersion or unparseable JSON fails with ErrFormat
// before any mutation.
func (s *Store) ImportAll(ctx context.Context, raw []byte) error {
	var backup Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return &ErrFormat{Msg: "unparseable JSON", Err: err}
	}
	if backup.Version != BackupVersion {
		return &ErrFormat{Msg: fmt.Sprintf("version %d, want %d", backup.Version, BackupVersion)}
	}

	return s.withTx(ctx, "restore backup", func(tx *ent.Tx) error {
		for _, clear := range []func() error{
			func() error { _, err := tx.Dataset.Delete().Exec(ctx); return err },
			func() error { _, err := tx.Card.Delete().Exec(ctx); return err },
			func() error { _, err := tx.CardState.Delete().Exec(ctx); return err },
			func() error { _, err := tx.Review.Delete().Exec(ctx); return err },
			func() error { _, err := tx.Confusion.Delete().Exec(ctx); return err },
			func() error { _, err := tx.Setting.Delete().Exec(ctx); return err },
		} {
			if err := clear(); err != nil {
				return fmt.Errorf("clear table: %w", err)
			}
		}

		for _, sum := range backup.Datasets {
			if err := upsertSummary(ctx, tx, sum); err != nil {
				return err
			}
		}

		for _, bc := range backup.Cards {
			key := bc.Key
			if key == "" {
				key = cardKey(bc.DatasetID, bc.ID)
			}
			_, err := tx.Card.Create().
				SetKey(key).
				SetDatasetID(bc.DatasetID).
				SetCardID(bc.ID).
				SetQuestion(bc.Question).
				SetAnswers(bc.Answers).
				SetTopic(bc.Topic).
				SetExplanation(bc.Explanation).
				SetTags(bc.Tags).
				SetCreatedAt(bc.CreatedAt).
				SetUpdatedAt(bc.UpdatedAt).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("restore card: %w", err)
			}
		}

		for _, bs := range backup.CardState {
			if err := upsertState(ctx, tx, bs.CardState); err != nil {
				return err
			}
		}

		for _, rev := range backup.Reviews {
			_, err := tx.Review.Create().
				SetDatasetID(rev.DatasetID).
				SetCardID(rev.CardID).
				SetGrade(int(rev.Grade)).
				SetResponseMs(rev.ResponseMs).
				SetReviewedAt(rev.ReviewedAt).
				SetSessionID(rev.SessionID).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("restore review: %w", err)
			}
		}

		for _, bc := range backup.Confusions {
			key := bc.Key
			if key == "" {
				key = bc.DatasetID + keySep + bc.PairKey
			}
			_, err := tx.Confusion.Create().
				SetKey(key).
				SetDatasetID(bc.DatasetID).
				SetPairKey(bc.PairKey).
				SetCardA(bc.CardA).
				SetCardB(bc.CardB).
				SetCount(bc.Count).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("restore confusion: %w", err)
			}
		}

		for _, rec := range backup.Settings {
			if err := writeSettings(ctx, tx, rec.Value); err != nil {
				return err
			}
		}
		return nil
	})
}
