package store

import (
	"context"
	"testing"
)

func TestDetectConfusionSharedAnswer(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	// c3's answer is "42". A wrong "42" on c1 means the user mixed the
	// two cards up.
	rec, err := s.DetectConfusion(ctx, "jh-geo", "c1", "42")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if rec == nil {
		t.Fatal("rec = nil, want a confusion record")
	}
	if rec.Count != 1 {
		t.Errorf("count = %d, want 1", rec.Count)
	}
	if rec.CardA != "c1" || rec.CardB != "c3" {
		t.Errorf("pair = (%s, %s), want (c1, c3)", rec.CardA, rec.CardB)
	}

	// Same mistake again increments the existing record.
	rec, err = s.DetectConfusion(ctx, "jh-geo", "c1", "42")
	if err != nil {
		t.Fatalf("detect again: %v", err)
	}
	if rec == nil || rec.Count != 2 {
		t.Fatalf("rec = %+v, want count 2", rec)
	}
}

func TestDetectConfusionPairKeyIsOrderIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	a, err := s.DetectConfusion(ctx, "jh-geo", "c1", "42")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	b, err := s.DetectConfusion(ctx, "jh-geo", "c3", "東京")
	if err != nil {
		t.Fatalf("detect reversed: %v", err)
	}
	if a.PairKey != b.PairKey {
		t.Errorf("pair keys differ: %q vs %q", a.PairKey, b.PairKey)
	}
	if b.Count != 2 {
		t.Errorf("count = %d, want 2 (same pair either direction)", b.Count)
	}
}

func TestDetectConfusionNormalizesInput(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	// Full-width digits fold to "42" under NFKC.
	rec, err := s.DetectConfusion(ctx, "jh-geo", "c1", "４２")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if rec == nil || rec.CardB != "c3" {
		t.Fatalf("rec = %+v, want match against c3", rec)
	}
}

func TestDetectConfusionNoMatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	rec, err := s.DetectConfusion(ctx, "jh-geo", "c1", "osaka")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if rec != nil {
		t.Errorf("rec = %+v, want nil", rec)
	}

	// Empty and whitespace-only input never matches anything.
	rec, err = s.DetectConfusion(ctx, "jh-geo", "c1", "   ")
	if err != nil {
		t.Fatalf("detect blank: %v", err)
	}
	if rec != nil {
		t.Errorf("rec = %+v, want nil for blank input", rec)
	}
}

func TestTopConfusions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	for i := 0; i < 3; i++ {
		if _, err := s.DetectConfusion(ctx, "jh-geo", "c1", "42"); err != nil {
			t.Fatalf("detect: %v", err)
		}
	}
	if _, err := s.DetectConfusion(ctx, "jh-geo", "c2", "42"); err != nil {
		t.Fatalf("detect: %v", err)
	}

	stats, err := s.TopConfusions(ctx, "jh-geo", 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len = %d, want 2", len(stats))
	}
	if stats[0].Count != 3 || stats[1].Count != 1 {
		t.Errorf("counts = %d, %d, want 3, 1", stats[0].Count, stats[1].Count)
	}
	if stats[0].LabelA == "" || stats[0].LabelB == "" {
		t.Errorf("labels missing: %+v", stats[0])
	}

	// Limit trims the result.
	stats, err = s.TopConfusions(ctx, "jh-geo", 1)
	if err != nil {
		t.Fatalf("top limit: %v", err)
	}
	if len(stats) != 1 || stats[0].Count != 3 {
		t.Fatalf("stats = %+v, want the single busiest pair", stats)
	}
}
