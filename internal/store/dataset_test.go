package store

import (
	"context"
	"errors"
	"testing"
)

func TestImportDatasetSummary(t *testing.T) {
	s := openTestStore(t)
	sum := importFixture(t, s)

	if sum.DatasetID != "jh-geo" {
		t.Errorf("datasetId = %q", sum.DatasetID)
	}
	if sum.CardCount != 3 {
		t.Errorf("cardCount = %d, want 3", sum.CardCount)
	}
	if sum.UpdatedAt == 0 {
		t.Error("updatedAt not stamped")
	}

	listed, err := s.ListDatasets(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "地理" {
		t.Errorf("listed = %+v", listed)
	}
}

func TestImportDatasetDropsMalformedCards(t *testing.T) {
	s := openTestStore(t)
	payload := `{
		"datasetId": "d1",
		"title": "T",
		"cards": [
			{"question": "ok?", "answers": ["yes"]},
			{"question": "", "answers": ["orphan"]},
			{"question": "no answers", "answers": []},
			"not even an object",
			{"question": "also ok?", "answers": ["sure"]}
		]
	}`
	sum, err := s.ImportDataset(context.Background(), []byte(payload))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if sum.CardCount != 2 {
		t.Errorf("cardCount = %d, want 2", sum.CardCount)
	}

	cards, err := s.CardsByDataset(context.Background(), "d1")
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	// Missing ids default to the card's 1-based position in the payload.
	ids := map[string]bool{}
	for _, c := range cards {
		ids[c.ID] = true
	}
	if !ids["card-1"] || !ids["card-5"] {
		t.Errorf("ids = %v, want card-1 and card-5", ids)
	}
}

func TestImportDatasetValidation(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"unparseable", `{not json`},
		{"missing datasetId", `{"title": "T", "cards": []}`},
		{"missing title", `{"datasetId": "d", "cards": []}`},
		{"missing cards", `{"datasetId": "d", "title": "T"}`},
		{"empty datasetId", `{"datasetId": "", "title": "T", "cards": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ImportDataset(context.Background(), []byte(tt.payload))
			var ve *ErrValidation
			if !errors.As(err, &ve) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}

	// Failed imports leave nothing behind.
	listed, err := s.ListDatasets(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("listed = %+v, want empty", listed)
	}
}

func TestImportDatasetReplacesPriorGeneration(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	// Accumulate state, a review and a confusion against the first import.
	gradeFixtureCard(t, s, "jh-geo", "c1", 1000)
	if _, err := s.DetectConfusion(ctx, "jh-geo", "c1", "名古屋"); err != nil {
		t.Fatalf("confusion: %v", err)
	}

	payload := `{
		"datasetId": "jh-geo",
		"title": "地理 v2",
		"cards": [{"id": "c9", "question": "新しい問題?", "answers": ["はい"]}]
	}`
	sum, err := s.ImportDataset(ctx, []byte(payload))
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if sum.CardCount != 1 || sum.Title != "地理 v2" {
		t.Errorf("summary = %+v", sum)
	}

	cards, _ := s.CardsByDataset(ctx, "jh-geo")
	if len(cards) != 1 || cards[0].ID != "c9" {
		t.Errorf("cards = %+v, want only c9", cards)
	}
	states, _ := s.CardStatesByDataset(ctx, "jh-geo")
	if len(states) != 0 {
		t.Errorf("states = %+v, want none", states)
	}
	reviews, _ := s.ReviewsByDataset(ctx, "jh-geo")
	if len(reviews) != 0 {
		t.Errorf("reviews = %+v, want none", reviews)
	}
	confusions, _ := s.TopConfusions(ctx, "jh-geo", 10)
	if len(confusions) != 0 {
		t.Errorf("confusions = %+v, want none", confusions)
	}
}

func TestDeleteDatasetCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)
	gradeFixtureCard(t, s, "jh-geo", "c1", 1000)
	if _, err := s.DetectConfusion(ctx, "jh-geo", "c1", "名古屋"); err != nil {
		t.Fatalf("confusion: %v", err)
	}

	if err := s.DeleteDataset(ctx, "jh-geo"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if cards, _ := s.CardsByDataset(ctx, "jh-geo"); len(cards) != 0 {
		t.Errorf("cards remain: %+v", cards)
	}
	if states, _ := s.CardStatesByDataset(ctx, "jh-geo"); len(states) != 0 {
		t.Errorf("states remain: %+v", states)
	}
	if reviews, _ := s.ReviewsByDataset(ctx, "jh-geo"); len(reviews) != 0 {
		t.Errorf("reviews remain: %+v", reviews)
	}
	if confusions, _ := s.TopConfusions(ctx, "jh-geo", 10); len(confusions) != 0 {
		t.Errorf("confusions remain: %+v", confusions)
	}

	if err := s.DeleteDataset(ctx, "jh-geo"); !IsNotFound(err) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestUpsertCard(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)

	// New card bumps the count.
	err := s.UpsertCard(ctx, "jh-geo", Card{
		ID:       "c4",
		Question: "北海道の県庁所在地は?",
		Answers:  []string{"札幌"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	sum, err := s.GetDataset(ctx, "jh-geo")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sum.CardCount != 4 {
		t.Errorf("cardCount = %d, want 4", sum.CardCount)
	}

	// Merge keeps createdAt and the count.
	cards, _ := s.CardsByDataset(ctx, "jh-geo")
	var created string
	for _, c := range cards {
		if c.ID == "c1" {
			created = c.CreatedAt
		}
	}
	err = s.UpsertCard(ctx, "jh-geo", Card{
		ID:       "c1",
		Question: "日本の首都は?",
		Answers:  []string{"東京", "Tokyo", "とうきょう"},
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	cards, _ = s.CardsByDataset(ctx, "jh-geo")
	for _, c := range cards {
		if c.ID != "c1" {
			continue
		}
		if len(c.Answers) != 3 {
			t.Errorf("answers = %v", c.Answers)
		}
		if c.CreatedAt != created {
			t.Errorf("createdAt changed: %q -> %q", created, c.CreatedAt)
		}
	}
	sum, _ = s.GetDataset(ctx, "jh-geo")
	if sum.CardCount != 4 {
		t.Errorf("cardCount after merge = %d, want 4", sum.CardCount)
	}

	if err := s.UpsertCard(ctx, "nope", Card{ID: "x", Question: "q", Answers: []string{"a"}}); !IsNotFound(err) {
		t.Errorf("missing dataset: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCard(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	importFixture(t, s)
	gradeFixtureCard(t, s, "jh-geo", "c1", 1000)

	if err := s.DeleteCard(ctx, "jh-geo", "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	sum, _ := s.GetDataset(ctx, "jh-geo")
	if sum.CardCount != 2 {
		t.Errorf("cardCount = %d, want 2", sum.CardCount)
	}
	if states, _ := s.CardStatesByDataset(ctx, "jh-geo"); len(states) != 0 {
		t.Errorf("states remain: %+v", states)
	}
	if reviews, _ := s.ReviewsByDataset(ctx, "jh-geo"); len(reviews) != 0 {
		t.Errorf("reviews remain: %+v", reviews)
	}

	if err := s.DeleteCard(ctx, "jh-geo", "c1"); !IsNotFound(err) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}
