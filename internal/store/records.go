package store

import (
	"github.com/hkawai/kioku/internal/fsrs"
)

// keySep joins the parts of composite identifiers. Dataset ids and card
// ids never contain it in practice; the key exists so per-dataset scans
// and deletes ride the dataset_id index.
const keySep = "::"

// cardKey builds the composite row key for a card or card state.
func cardKey(datasetID, cardID string) string {
	return datasetID + keySep + cardID
}

// pairKeyFor builds the unordered confusion pair key, smaller id first.
func pairKeyFor(a, b string) (key, lo, hi string) {
	if a > b {
		a, b = b, a
	}
	return a + keySep + b, a, b
}

// Card is one flashcard as seen by callers. Timestamps are ISO-8601.
type Card struct {
	ID          string   `json:"id"`
	Topic       string   `json:"topic,omitempty"`
	Question    string   `json:"question"`
	Answers     []string `json:"answers"`
	Explanation string   `json:"explanation,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// DatasetSummary is the stored dataset row. UpdatedAt is epoch ms.
type DatasetSummary struct {
	DatasetID   string   `json:"datasetId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CardCount   int      `json:"cardCount"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// CardState is the per-card scheduling row. A card without one has never
// been reviewed.
type CardState struct {
	CardID       string  `json:"cardId"`
	DatasetID    string  `json:"datasetId"`
	Stability    float64 `json:"stability"`
	Difficulty   float64 `json:"difficulty"`
	LastReviewAt *int64  `json:"lastReviewAt"`
	DueAt        int64   `json:"dueAt"`
	Reps         int     `json:"reps"`
	Lapses       int     `json:"lapses"`
}

// Model converts the row into the scheduler's state type. Nil-safe: a nil
// receiver means "never reviewed" and maps to a nil prior state.
func (s *CardState) Model() *fsrs.State {
	if s == nil {
		return nil
	}
	return &fsrs.State{
		Stability:    s.Stability,
		Difficulty:   s.Difficulty,
		LastReviewAt: s.LastReviewAt,
		DueAt:        s.DueAt,
		Reps:         s.Reps,
		Lapses:       s.Lapses,
	}
}

// NewCardState binds a scheduler result to a card.
func NewCardState(datasetID, cardID string, m fsrs.State) CardState {
	return CardState{
		CardID:       cardID,
		DatasetID:    datasetID,
		Stability:    m.Stability,
		Difficulty:   m.Difficulty,
		LastReviewAt: m.LastReviewAt,
		DueAt:        m.DueAt,
		Reps:         m.Reps,
		Lapses:       m.Lapses,
	}
}

// Review is one append-only review log entry. ReviewedAt is epoch ms.
type Review struct {
	CardID     string     `json:"cardId"`
	DatasetID  string     `json:"datasetId"`
	Grade      fsrs.Grade `json:"grade"`
	ResponseMs int64      `json:"responseMs"`
	ReviewedAt int64      `json:"reviewedAt"`
	SessionID  string     `json:"sessionId,omitempty"`
}

// QueueItem pairs a due card with its scheduling state (nil when never
// reviewed).
type QueueItem struct {
	Card  Card
	State *CardState
}

// DueCount summarizes how many cards are reviewable.
type DueCount struct {
	Overdue int `json:"overdue"`
	Today   int `json:"today"`
}

// ConfusionRecord is the stored pair counter. CardA < CardB.
type ConfusionRecord struct {
	DatasetID string `json:"datasetId"`
	PairKey   string `json:"pairKey"`
	CardA     string `json:"cardIdA"`
	CardB     string `json:"cardIdB"`
	Count     int    `json:"count"`
}

// ConfusionStat is a ConfusionRecord enriched with the two question texts
// for display. Labels fall back to raw card ids when a card is gone.
type ConfusionStat struct {
	ConfusionRecord
	LabelA string `json:"labelA"`
	LabelB string `json:"labelB"`
}

// Settings are the app preferences, one record process-wide.
type Settings struct {
	TargetRetention float64 `json:"targetRetentionRate"`
	ExamDate        *string `json:"examDate"`
}

// DefaultSettings applies when no settings row has been written yet.
var DefaultSettings = Settings{TargetRetention: 0.9}

// SettingsPatch is a partial settings update: nil fields keep their
// current value. ClearExamDate removes the exam date.
type SettingsPatch struct {
	TargetRetention *float64
	ExamDate        *string
	ClearExamDate   bool
}
