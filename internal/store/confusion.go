package store

import (
	"context"
	"fmt"

	"github.com/hkawai/kioku/ent"
	"github.com/hkawai/kioku/ent/card"
	"github.com/hkawai/kioku/ent/confusion"

	"github.com/hkawai/kioku/internal/answer"
)

// DetectConfusion cross-references a wrong answer for cardID against the
// accepted answers of every other card in the dataset. The first card
// whose answer set contains the normalized input gets its pair counter
// with cardID incremented (or created at 1), and the updated record is
// returned. At most one pair is credited per call; no match and empty
// input return nil.
func (s *Store) DetectConfusion(ctx context.Context, datasetID, cardID, input string) (*ConfusionRecord, error) {
	normalized := answer.Normalize(input)
	if normalized == "" {
		return nil, nil
	}

	rows, err := s.client.Card.Query().
		Where(card.DatasetIDEQ(datasetID)).
		Order(ent.Asc(card.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}

	var matched string
	for _, row := range rows {
		if row.CardID == cardID {
			continue
		}
		if res := answer.Check(row.Answers, input); res.IsCorrect {
			matched = row.CardID
			break
		}
	}
	if matched == "" {
		return nil, nil
	}

	pairKey, lo, hi := pairKeyFor(cardID, matched)
	rowKey := datasetID + keySep + pairKey

	rec := &ConfusionRecord{
		DatasetID: datasetID,
		PairKey:   pairKey,
		CardA:     lo,
		CardB:     hi,
	}
	err = s.withTx(ctx, "record confusion", func(tx *ent.Tx) error {
		existing, err := tx.Confusion.Query().
			Where(confusion.KeyEQ(rowKey)).
			Only(ctx)
		switch {
		case err == nil:
			updated, err := existing.Update().AddCount(1).Save(ctx)
			if err != nil {
				return fmt.Errorf("increment confusion: %w", err)
			}
			rec.Count = updated.Count
		case ent.IsNotFound(err):
			_, err = tx.Confusion.Create().
				SetKey(rowKey).
				SetDatasetID(datasetID).
				SetPairKey(pairKey).
				SetCardA(lo).
				SetCardB(hi).
				SetCount(1).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create confusion: %w", err)
			}
			rec.Count = 1
		default:
			return fmt.Errorf("get confusion: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// TopConfusions returns the most frequent confusion pairs, highest count
// first, labeled with the two cards' current question text. A deleted
// card's label falls back to its raw id. An empty datasetID spans all
// datasets.
func (s *Store) TopConfusions(ctx context.Context, datasetID string, limit int) ([]ConfusionStat, error) {
	if limit <= 0 {
		limit = 10
	}
	query := s.client.Confusion.Query()
	if datasetID != "" {
		query = query.Where(confusion.DatasetIDEQ(datasetID))
	}
	rows, err := query.
		Order(ent.Desc(confusion.FieldCount)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query confusions: %w", err)
	}

	out := make([]ConfusionStat, 0, len(rows))
	for _, row := range rows {
		stat := ConfusionStat{
			ConfusionRecord: ConfusionRecord{
				DatasetID: row.DatasetID,
				PairKey:   row.PairKey,
				CardA:     row.CardA,
				CardB:     row.CardB,
				Count:     row.Count,
			},
			LabelA: row.CardA,
			LabelB: row.CardB,
		}
		if q, err := s.questionText(ctx, row.DatasetID, row.CardA); err == nil && q != "" {
			stat.LabelA = q
		}
		if q, err := s.questionText(ctx, row.DatasetID, row.CardB); err == nil && q != "" {
			stat.LabelB = q
		}
		out = append(out, stat)
	}
	return out, nil
}

func (s *Store) questionText(ctx context.Context, datasetID, cardID string) (string, error) {
	row, err := s.client.Card.Query().
		Where(card.KeyEQ(cardKey(datasetID, cardID))).
		Only(ctx)
	if err != nil {
		return "", err
	}
	return row.Question, nil
}
