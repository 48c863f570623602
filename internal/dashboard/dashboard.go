// Package dashboard assembles the study overview shown on the home and
// stats surfaces: how much is due, how well material is retained, and
// which cards the learner keeps mixing up.
package dashboard

import (
	"context"

	"github.com/hkawai/kioku/internal/store"
)

// topConfusionLimit caps the confusion list on the overview.
const topConfusionLimit = 10

// Store is the read surface the dashboard needs.
type Store interface {
	CountDue(ctx context.Context, datasetID string, now int64) (store.DueCount, error)
	AvgRetrievability(ctx context.Context, datasetID string, now int64) (*float64, error)
	TopConfusions(ctx context.Context, datasetID string, limit int) ([]store.ConfusionStat, error)
}

// Overview is one dashboard snapshot. Retention is nil when no card has
// been reviewed yet.
type Overview struct {
	Due        store.DueCount
	Retention  *float64
	Confusions []store.ConfusionStat
}

// Load builds an overview for one dataset, or for everything when
// datasetID is empty. Empty data yields a zero overview, not an error.
func Load(ctx context.Context, st Store, datasetID string, now int64) (*Overview, error) {
	due, err := st.CountDue(ctx, datasetID, now)
	if err != nil {
		return nil, err
	}
	retention, err := st.AvgRetrievability(ctx, datasetID, now)
	if err != nil {
		return nil, err
	}
	confusions, err := st.TopConfusions(ctx, datasetID, topConfusionLimit)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Due:        due,
		Retention:  retention,
		Confusions: confusions,
	}, nil
}
