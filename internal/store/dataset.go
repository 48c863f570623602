package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hkawai/kioku/ent"
	"github.com/hkawai/kioku/ent/card"
	"github.com/hkawai/kioku/ent/cardstate"
	"github.com/hkawai/kioku/ent/confusion"
	"github.com/hkawai/kioku/ent/dataset"
	"github.com/hkawai/kioku/ent/review"
)

// ImportDataset validates a raw JSON payload and installs it as a fresh
// generation of rows: any prior cards, scheduling state, reviews and
// confusions for the same dataset id are deleted in the same transaction
// that inserts the new cards. Malformed cards are dropped silently;
// missing required top-level fields fail with ErrValidation before any
// mutation.
func (s *Store) ImportDataset(ctx context.Context, raw []byte) (*DatasetSummary, error) {
	now := time.Now()
	in, err := parseDataset(raw, now.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	summary := DatasetSummary{
		DatasetID:   in.DatasetID,
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		CardCount:   len(in.Cards),
		UpdatedAt:   now.UnixMilli(),
	}

	err = s.withTx(ctx, "import dataset", func(tx *ent.Tx) error {
		if err := deleteOwnedRows(ctx, tx, in.DatasetID); err != nil {
			return err
		}
		if err := upsertSummary(ctx, tx, summary); err != nil {
			return err
		}

		builders := make([]*ent.CardCreate, 0, len(in.Cards))
		for _, c := range in.Cards {
			builders = append(builders, tx.Card.Create().
				SetKey(cardKey(in.DatasetID, c.ID)).
				SetDatasetID(in.DatasetID).
				SetCardID(c.ID).
				SetQuestion(c.Question).
				SetAnswers(c.Answers).
				SetTopic(c.Topic).
				SetExplanation(c.Explanation).
				SetTags(c.Tags).
				SetCreatedAt(c.CreatedAt).
				SetUpdatedAt(c.UpdatedAt))
		}
		if len(builders) > 0 {
			if _, err := tx.Card.CreateBulk(builders...).Save(ctx); err != nil {
				return fmt.Errorf("insert cards: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// DeleteDataset removes the dataset and cascades across cards, card
// states, reviews and confusions in one transaction.
func (s *Store) DeleteDataset(ctx context.Context, datasetID string) error {
	return s.withTx(ctx, "delete dataset", func(tx *ent.Tx) error {
		n, err := tx.Dataset.Delete().
			Where(dataset.DatasetIDEQ(datasetID)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete dataset row: %w", err)
		}
		if n == 0 {
			return &ErrNotFound{Kind: "dataset", Key: datasetID}
		}
		return deleteOwnedRows(ctx, tx, datasetID)
	})
}

// ListDatasets returns all dataset summaries, most recently updated
// first, ties broken by title.
func (s *Store) ListDatasets(ctx context.Context) ([]DatasetSummary, error) {
	rows, err := s.client.Dataset.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	out := make([]DatasetSummary, len(rows))
	for i, row := range rows {
		out[i] = summaryFromRow(row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt > out[j].UpdatedAt
		}
		return s.coll.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out, nil
}

// GetDataset returns one dataset summary.
func (s *Store) GetDataset(ctx context.Context, datasetID string) (*DatasetSummary, error) {
	row, err := s.client.Dataset.Query().
		Where(dataset.DatasetIDEQ(datasetID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrNotFound{Kind: "dataset", Key: datasetID}
		}
		return nil, fmt.Errorf("get dataset: %w", err)
	}
	summary := summaryFromRow(row)
	return &summary, nil
}

// CardsByDataset returns the dataset's cards ordered by question text.
func (s *Store) CardsByDataset(ctx context.Context, datasetID string) ([]Card, error) {
	rows, err := s.client.Card.Query().
		Where(card.DatasetIDEQ(datasetID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	out := make([]Card, len(rows))
	for i, row := range rows {
		out[i] = cardFromRow(row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return s.coll.CompareString(out[i].Question, out[j].Question) < 0
	})
	return out, nil
}

// UpsertCard merges a card into an existing dataset by id, preserving the
// original createdAt, then recomputes the summary's card count.
func (s *Store) UpsertCard(ctx context.Context, datasetID string, c Card) error {
	return s.withTx(ctx, "upsert card", func(tx *ent.Tx) error {
		summaryRow, err := tx.Dataset.Query().
			Where(dataset.DatasetIDEQ(datasetID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return &ErrNotFound{Kind: "dataset", Key: datasetID}
			}
			return fmt.Errorf("get dataset: %w", err)
		}

		nowIso := time.Now().UTC().Format(time.RFC3339)
		key := cardKey(datasetID, c.ID)

		existing, err := tx.Card.Query().Where(card.KeyEQ(key)).Only(ctx)
		switch {
		case err == nil:
			_, err = existing.Update().
				SetQuestion(c.Question).
				SetAnswers(c.Answers).
				SetTopic(c.Topic).
				SetExplanation(c.Explanation).
				SetTags(c.Tags).
				SetUpdatedAt(nowIso).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("update card: %w", err)
			}
		case ent.IsNotFound(err):
			createdAt := c.CreatedAt
			if createdAt == "" {
				createdAt = nowIso
			}
			_, err = tx.Card.Create().
				SetKey(key).
				SetDatasetID(datasetID).
				SetCardID(c.ID).
				SetQuestion(c.Question).
				SetAnswers(c.Answers).
				SetTopic(c.Topic).
				SetExplanation(c.Explanation).
				SetTags(c.Tags).
				SetCreatedAt(createdAt).
				SetUpdatedAt(nowIso).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create card: %w", err)
			}
		default:
			return fmt.Errorf("get card: %w", err)
		}

		return refreshSummary(ctx, tx, summaryRow)
	})
}

// DeleteCard removes one card and every row that references it, then
// recomputes the summary's card count.
func (s *Store) DeleteCard(ctx context.Context, datasetID, cardID string) error {
	return s.withTx(ctx, "delete card", func(tx *ent.Tx) error {
		summaryRow, err := tx.Dataset.Query().
			Where(dataset.DatasetIDEQ(datasetID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return &ErrNotFound{Kind: "dataset", Key: datasetID}
			}
			return fmt.Errorf("get dataset: %w", err)
		}

		key := cardKey(datasetID, cardID)
		n, err := tx.Card.Delete().Where(card.KeyEQ(key)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete card: %w", err)
		}
		if n == 0 {
			return &ErrNotFound{Kind: "card", Key: key}
		}

		if _, err := tx.CardState.Delete().Where(cardstate.KeyEQ(key)).Exec(ctx); err != nil {
			return fmt.Errorf("delete card state: %w", err)
		}
		if _, err := tx.Review.Delete().
			Where(review.DatasetIDEQ(datasetID), review.CardIDEQ(cardID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		if _, err := tx.Confusion.Delete().
			Where(
				confusion.DatasetIDEQ(datasetID),
				confusion.Or(confusion.CardAEQ(cardID), confusion.CardBEQ(cardID)),
			).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete confusions: %w", err)
		}

		return refreshSummary(ctx, tx, summaryRow)
	})
}

// deleteOwnedRows clears one dataset generation from the four owned
// tables. The dataset summary row itself is handled by the caller.
func deleteOwnedRows(ctx context.Context, tx *ent.Tx, datasetID string) error {
	if _, err := tx.Card.Delete().Where(card.DatasetIDEQ(datasetID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete cards: %w", err)
	}
	if _, err := tx.CardState.Delete().Where(cardstate.DatasetIDEQ(datasetID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete card states: %w", err)
	}
	if _, err := tx.Review.Delete().Where(review.DatasetIDEQ(datasetID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	if _, err := tx.Confusion.Delete().Where(confusion.DatasetIDEQ(datasetID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete confusions: %w", err)
	}
	return nil
}

// upsertSummary replaces or creates the dataset summary row.
func upsertSummary(ctx context.Context, tx *ent.Tx, sum DatasetSummary) error {
	existing, err := tx.Dataset.Query().
		Where(dataset.DatasetIDEQ(sum.DatasetID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetTitle(sum.Title).
			SetDescription(sum.Description).
			SetTags(sum.Tags).
			SetCardCount(sum.CardCount).
			SetUpdatedAt(sum.UpdatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update dataset row: %w", err)
		}
	case ent.IsNotFound(err):
		_, err = tx.Dataset.Create().
			SetDatasetID(sum.DatasetID).
			SetTitle(sum.Title).
			SetDescription(sum.Description).
			SetTags(sum.Tags).
			SetCardCount(sum.CardCount).
			SetUpdatedAt(sum.UpdatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create dataset row: %w", err)
		}
	default:
		return fmt.Errorf("get dataset row: %w", err)
	}
	return nil
}

// refreshSummary recounts the dataset's cards and stamps updatedAt.
func refreshSummary(ctx context.Context, tx *ent.Tx, row *ent.Dataset) error {
	n, err := tx.Card.Query().
		Where(card.DatasetIDEQ(row.DatasetID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count cards: %w", err)
	}
	_, err = row.Update().
		SetCardCount(n).
		SetUpdatedAt(time.Now().UnixMilli()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update dataset row: %w", err)
	}
	return nil
}

func summaryFromRow(row *ent.Dataset) DatasetSummary {
	return DatasetSummary{
		DatasetID:   row.DatasetID,
		Title:       row.Title,
		Description: row.Description,
		Tags:        row.Tags,
		CardCount:   row.CardCount,
		UpdatedAt:   row.UpdatedAt,
	}
}

func cardFromRow(row *ent.Card) Card {
	return Card{
		ID:          row.CardID,
		Topic:       row.Topic,
		Question:    row.Question,
		Answers:     row.Answers,
		Explanation: row.Explanation,
		Tags:        row.Tags,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
