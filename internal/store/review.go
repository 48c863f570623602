package store

import (
	"context"
	"fmt"

	"github.com/hkawai/kioku/ent"
	"github.com/hkawai/kioku/ent/cardstate"
	"github.com/hkawai/kioku/ent/review"

	"github.com/hkawai/kioku/internal/fsrs"
)

// SaveReview persists the outcome of one graded review: the updated
// scheduling state and its paired log entry commit together or not at
// all.
func (s *Store) SaveReview(ctx context.Context, state CardState, rev Review) error {
	return s.withTx(ctx, "save review", func(tx *ent.Tx) error {
		if err := upsertState(ctx, tx, state); err != nil {
			return err
		}
		_, err := tx.Review.Create().
			SetDatasetID(rev.DatasetID).
			SetCardID(rev.CardID).
			SetGrade(int(rev.Grade)).
			SetResponseMs(rev.ResponseMs).
			SetReviewedAt(rev.ReviewedAt).
			SetSessionID(rev.SessionID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("append review: %w", err)
		}
		return nil
	})
}

// CardStatesByDataset returns all scheduling state rows for a dataset.
func (s *Store) CardStatesByDataset(ctx context.Context, datasetID string) ([]CardState, error) {
	rows, err := s.client.CardState.Query().
		Where(cardstate.DatasetIDEQ(datasetID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query card states: %w", err)
	}
	out := make([]CardState, len(rows))
	for i, row := range rows {
		out[i] = stateFromRow(row)
	}
	return out, nil
}

// ReviewsByDataset returns the dataset's review log, oldest first.
func (s *Store) ReviewsByDataset(ctx context.Context, datasetID string) ([]Review, error) {
	rows, err := s.client.Review.Query().
		Where(review.DatasetIDEQ(datasetID)).
		Order(ent.Asc(review.FieldReviewedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	out := make([]Review, len(rows))
	for i, row := range rows {
		out[i] = reviewFromRow(row)
	}
	return out, nil
}

func upsertState(ctx context.Context, tx *ent.Tx, state CardState) error {
	key := cardKey(state.DatasetID, state.CardID)
	existing, err := tx.CardState.Query().
		Where(cardstate.KeyEQ(key)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetStability(state.Stability).
			SetDifficulty(state.Difficulty).
			SetDueAt(state.DueAt).
			SetReps(state.Reps).
			SetLapses(state.Lapses)
		if state.LastReviewAt != nil {
			upd = upd.SetLastReviewAt(*state.LastReviewAt)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update card state: %w", err)
		}
	case ent.IsNotFound(err):
		create := tx.CardState.Create().
			SetKey(key).
			SetDatasetID(state.DatasetID).
			SetCardID(state.CardID).
			SetStability(state.Stability).
			SetDifficulty(state.Difficulty).
			SetDueAt(state.DueAt).
			SetReps(state.Reps).
			SetLapses(state.Lapses).
			SetNillableLastReviewAt(state.LastReviewAt)
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create card state: %w", err)
		}
	default:
		return fmt.Errorf("get card state: %w", err)
	}
	return nil
}

func stateFromRow(row *ent.CardState) CardState {
	return CardState{
		CardID:       row.CardID,
		DatasetID:    row.DatasetID,
		Stability:    row.Stability,
		Difficulty:   row.Difficulty,
		LastReviewAt: row.LastReviewAt,
		DueAt:        row.DueAt,
		Reps:         row.Reps,
		Lapses:       row.Lapses,
	}
}

func reviewFromRow(row *ent.Review) Review {
	return Review{
		CardID:     row.CardID,
		DatasetID:  row.DatasetID,
		Grade:      fsrs.Grade(row.Grade),
		ResponseMs: row.ResponseMs,
		ReviewedAt: row.ReviewedAt,
		SessionID:  row.SessionID,
	}
}
