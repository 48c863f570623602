package store

import (
	"context"
	"testing"
	"time"
)

func TestBuildDueQueueOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	now := time.Now().UnixMilli()
	day := int64(24 * 60 * 60 * 1000)

	// c2 due yesterday, c3 due an hour ago, c1 never reviewed.
	gradeFixtureCard(t, s, "jh-geo", "c2", now-day)
	gradeFixtureCard(t, s, "jh-geo", "c3", now-60*60*1000)

	queue, err := s.BuildDueQueue(ctx, "jh-geo", now)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 3 {
		t.Fatalf("len = %d, want 3", len(queue))
	}
	if queue[0].Card.ID != "c1" || queue[0].State != nil {
		t.Errorf("queue[0] = %s (never-reviewed cards sort first)", queue[0].Card.ID)
	}
	if queue[1].Card.ID != "c2" {
		t.Errorf("queue[1] = %s, want c2 (earlier dueAt)", queue[1].Card.ID)
	}
	if queue[2].Card.ID != "c3" {
		t.Errorf("queue[2] = %s, want c3", queue[2].Card.ID)
	}
}

func TestBuildDueQueueExcludesFutureCards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	now := time.Now().UnixMilli()
	day := int64(24 * 60 * 60 * 1000)
	gradeFixtureCard(t, s, "jh-geo", "c2", now+5*day)

	queue, err := s.BuildDueQueue(ctx, "jh-geo", now)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	for _, item := range queue {
		if item.Card.ID == "c2" {
			t.Error("c2 is not due yet")
		}
	}
	if len(queue) != 2 {
		t.Errorf("len = %d, want 2", len(queue))
	}
}

func TestCountDue(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	now := time.Now().UnixMilli()
	day := int64(24 * 60 * 60 * 1000)

	gradeFixtureCard(t, s, "jh-geo", "c2", now-day)    // overdue
	gradeFixtureCard(t, s, "jh-geo", "c3", now+10*day) // far future
	// c1 never reviewed: counts as overdue and today.

	count, err := s.CountDue(ctx, "jh-geo", now)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count.Overdue != 2 {
		t.Errorf("overdue = %d, want 2", count.Overdue)
	}
	if count.Today != 2 {
		t.Errorf("today = %d, want 2", count.Today)
	}

	// Empty dataset id spans everything; with one dataset it matches.
	all, err := s.CountDue(ctx, "", now)
	if err != nil {
		t.Fatalf("count all: %v", err)
	}
	if all != count {
		t.Errorf("all = %+v, per-dataset = %+v", all, count)
	}
}

func TestCountDueEmptyStore(t *testing.T) {
	s := openTestStore(t)
	count, err := s.CountDue(context.Background(), "", time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count.Overdue != 0 || count.Today != 0 {
		t.Errorf("count = %+v, want zeros", count)
	}
}

func TestAvgRetrievability(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)
	now := time.Now().UnixMilli()

	// No state rows yet: nil, not zero.
	avg, err := s.AvgRetrievability(ctx, "jh-geo", now)
	if err != nil {
		t.Fatalf("avg: %v", err)
	}
	if avg != nil {
		t.Errorf("avg = %v, want nil", *avg)
	}

	// One state reviewed just now: retrievability ~1.
	last := now
	err = s.SaveReview(ctx,
		CardState{CardID: "c1", DatasetID: "jh-geo", Stability: 3, Difficulty: 5, LastReviewAt: &last, DueAt: now, Reps: 1},
		Review{CardID: "c1", DatasetID: "jh-geo", Grade: 3, ReviewedAt: now})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	avg, err = s.AvgRetrievability(ctx, "jh-geo", now)
	if err != nil {
		t.Fatalf("avg: %v", err)
	}
	if avg == nil {
		t.Fatal("avg = nil, want value")
	}
	if *avg < 0.99 || *avg > 1.0 {
		t.Errorf("avg = %v, want ~1", *avg)
	}
}

func TestSaveReviewPersistsBothRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)
	now := time.Now().UnixMilli()

	gradeFixtureCard(t, s, "jh-geo", "c1", now)

	states, err := s.CardStatesByDataset(ctx, "jh-geo")
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	if len(states) != 1 || states[0].CardID != "c1" {
		t.Fatalf("states = %+v", states)
	}
	reviews, err := s.ReviewsByDataset(ctx, "jh-geo")
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Grade != 3 {
		t.Fatalf("reviews = %+v", reviews)
	}

	// A second review updates the same state row and appends a new log row.
	gradeFixtureCard(t, s, "jh-geo", "c1", now+1000)
	states, _ = s.CardStatesByDataset(ctx, "jh-geo")
	if len(states) != 1 {
		t.Errorf("states = %d rows, want 1", len(states))
	}
	reviews, _ = s.ReviewsByDataset(ctx, "jh-geo")
	if len(reviews) != 2 {
		t.Errorf("reviews = %d rows, want 2", len(reviews))
	}
}
