package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/hkawai/kioku/internal/store"
)

type mockStore struct {
	due        store.DueCount
	dueErr     error
	retention  *float64
	confusions []store.ConfusionStat
	gotLimit   int
}

func (m *mockStore) CountDue(ctx context.Context, datasetID string, now int64) (store.DueCount, error) {
	return m.due, m.dueErr
}

func (m *mockStore) AvgRetrievability(ctx context.Context, datasetID string, now int64) (*float64, error) {
	return m.retention, nil
}

func (m *mockStore) TopConfusions(ctx context.Context, datasetID string, limit int) ([]store.ConfusionStat, error) {
	m.gotLimit = limit
	return m.confusions, nil
}

func TestLoadEmptyStore(t *testing.T) {
	m := &mockStore{}
	ov, err := Load(context.Background(), m, "", 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ov.Due.Overdue != 0 || ov.Due.Today != 0 {
		t.Errorf("due = %+v, want zeros", ov.Due)
	}
	if ov.Retention != nil {
		t.Errorf("retention = %v, want nil", *ov.Retention)
	}
	if len(ov.Confusions) != 0 {
		t.Errorf("confusions = %d, want 0", len(ov.Confusions))
	}
}

func TestLoadAssemblesParts(t *testing.T) {
	r := 0.87
	m := &mockStore{
		due:       store.DueCount{Overdue: 3, Today: 5},
		retention: &r,
		confusions: []store.ConfusionStat{
			{ConfusionRecord: store.ConfusionRecord{CardA: "c1", CardB: "c3", Count: 2}},
		},
	}
	ov, err := Load(context.Background(), m, "jh-geo", 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ov.Due.Overdue != 3 || ov.Due.Today != 5 {
		t.Errorf("due = %+v", ov.Due)
	}
	if ov.Retention == nil || *ov.Retention != 0.87 {
		t.Errorf("retention = %v", ov.Retention)
	}
	if len(ov.Confusions) != 1 || ov.Confusions[0].Count != 2 {
		t.Errorf("confusions = %+v", ov.Confusions)
	}
	if m.gotLimit != 10 {
		t.Errorf("limit = %d, want 10", m.gotLimit)
	}
}

func TestLoadPropagatesStoreErrors(t *testing.T) {
	m := &mockStore{dueErr: errors.New("closed")}
	if _, err := Load(context.Background(), m, "", 0); err == nil {
		t.Fatal("expected error")
	}
}
