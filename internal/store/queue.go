package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hkawai/kioku/ent/card"
	"github.com/hkawai/kioku/ent/cardstate"

	"github.com/hkawai/kioku/internal/fsrs"
)

// BuildDueQueue returns every card in the dataset that is reviewable at
// now: no scheduling state yet, or due. Never-reviewed cards sort first,
// ordered by question text; the rest follow by ascending due time.
func (s *Store) BuildDueQueue(ctx context.Context, datasetID string, now int64) ([]QueueItem, error) {
	cards, err := s.client.Card.Query().
		Where(card.DatasetIDEQ(datasetID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	states, err := s.client.CardState.Query().
		Where(cardstate.DatasetIDEQ(datasetID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query card states: %w", err)
	}

	byCard := make(map[string]*CardState, len(states))
	for _, row := range states {
		st := stateFromRow(row)
		byCard[row.CardID] = &st
	}

	var queue []QueueItem
	for _, row := range cards {
		st := byCard[row.CardID]
		if st == nil || st.DueAt <= now {
			queue = append(queue, QueueItem{Card: cardFromRow(row), State: st})
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		a, b := queue[i], queue[j]
		switch {
		case a.State == nil && b.State == nil:
			return s.coll.CompareString(a.Card.Question, b.Card.Question) < 0
		case a.State == nil:
			return true
		case b.State == nil:
			return false
		default:
			return a.State.DueAt < b.State.DueAt
		}
	})
	return queue, nil
}

// CountDue counts reviewable cards. Overdue means due at now or earlier;
// today extends the horizon to the end of the local day. Never-reviewed
// cards count as both. An empty datasetID counts across all datasets.
func (s *Store) CountDue(ctx context.Context, datasetID string, now int64) (DueCount, error) {
	cardQuery := s.client.Card.Query()
	stateQuery := s.client.CardState.Query()
	if datasetID != "" {
		cardQuery = cardQuery.Where(card.DatasetIDEQ(datasetID))
		stateQuery = stateQuery.Where(cardstate.DatasetIDEQ(datasetID))
	}

	cards, err := cardQuery.All(ctx)
	if err != nil {
		return DueCount{}, fmt.Errorf("query cards: %w", err)
	}
	states, err := stateQuery.All(ctx)
	if err != nil {
		return DueCount{}, fmt.Errorf("query card states: %w", err)
	}

	dueByKey := make(map[string]int64, len(states))
	for _, row := range states {
		dueByKey[row.Key] = row.DueAt
	}

	endOfDay := endOfLocalDay(now)
	var count DueCount
	for _, row := range cards {
		dueAt, reviewed := dueByKey[row.Key]
		if !reviewed {
			count.Overdue++
			count.Today++
			continue
		}
		if dueAt <= now {
			count.Overdue++
		}
		if dueAt <= endOfDay {
			count.Today++
		}
	}
	return count, nil
}

// AvgRetrievability evaluates the retention model at now for every
// tracked card and returns the mean, or nil when nothing is tracked yet.
// An empty datasetID averages across all datasets.
func (s *Store) AvgRetrievability(ctx context.Context, datasetID string, now int64) (*float64, error) {
	query := s.client.CardState.Query()
	if datasetID != "" {
		query = query.Where(cardstate.DatasetIDEQ(datasetID))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query card states: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var sum float64
	for _, row := range rows {
		sum += fsrs.Retrievability(now, row.LastReviewAt, row.Stability)
	}
	avg := sum / float64(len(rows))
	return &avg, nil
}

// endOfLocalDay returns the last millisecond of now's local calendar day.
func endOfLocalDay(now int64) int64 {
	t := time.UnixMilli(now).Local()
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
	return end.UnixMilli()
}
