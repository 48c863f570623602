package session

import (
	"context"
	"errors"
	"testing"

	"github.com/hkawai/kioku/internal/fsrs"
	"github.com/hkawai/kioku/internal/store"
)

// mockStore records calls and serves canned data.
type mockStore struct {
	queue       []store.QueueItem
	queueErr    error
	saveErr     error
	saved       []store.CardState
	reviews     []store.Review
	confusions  int
	confusionFn func() (*store.ConfusionRecord, error)
	settings    store.Settings
}

func (m *mockStore) BuildDueQueue(ctx context.Context, datasetID string, now int64) ([]store.QueueItem, error) {
	return m.queue, m.queueErr
}

func (m *mockStore) SaveReview(ctx context.Context, state store.CardState, review store.Review) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, state)
	m.reviews = append(m.reviews, review)
	return nil
}

func (m *mockStore) DetectConfusion(ctx context.Context, datasetID, cardID, input string) (*store.ConfusionRecord, error) {
	m.confusions++
	if m.confusionFn != nil {
		return m.confusionFn()
	}
	return nil, nil
}

func (m *mockStore) Settings(ctx context.Context) (store.Settings, error) {
	if m.settings == (store.Settings{}) {
		return store.DefaultSettings, nil
	}
	return m.settings, nil
}

func testQueue() []store.QueueItem {
	return []store.QueueItem{
		{Card: store.Card{ID: "c1", Question: "首都は？", Answers: []string{"東京", "Tokyo"}}},
		{Card: store.Card{ID: "c2", Question: "面積最大の都道府県は？", Answers: []string{"北海道"}}},
	}
}

func testSession(m *mockStore) *Session {
	s := New(m)
	clock := int64(1_700_000_000_000)
	s.now = func() int64 {
		clock += 500
		return clock
	}
	return s
}

func TestStartServesFirstCard(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)

	if err := s.Start(context.Background(), "jh-geo"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Phase != PhaseQuestion {
		t.Errorf("phase = %v, want question", s.Phase)
	}
	if s.ID == "" {
		t.Error("expected a session id")
	}
	cur := s.Current()
	if cur == nil || cur.Card.ID != "c1" {
		t.Errorf("current = %+v, want c1", cur)
	}
	if s.Total() != 2 || s.Position() != 1 {
		t.Errorf("position = %d/%d, want 1/2", s.Position(), s.Total())
	}
}

func TestStartEmptyQueueCompletesImmediately(t *testing.T) {
	m := &mockStore{}
	s := testSession(m)

	if err := s.Start(context.Background(), "jh-geo"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Phase != PhaseDone {
		t.Errorf("phase = %v, want done", s.Phase)
	}
	if s.Total() != 0 {
		t.Errorf("total = %d, want 0", s.Total())
	}
}

func TestStartQueueErrorReturnsToIdle(t *testing.T) {
	m := &mockStore{queueErr: errors.New("disk gone")}
	s := testSession(m)

	if err := s.Start(context.Background(), "jh-geo"); err == nil {
		t.Fatal("expected error")
	}
	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase)
	}
}

func TestSubmitAnswerCorrect(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	s.Start(context.Background(), "jh-geo")

	s.SubmitAnswer(context.Background(), " Tokyo ")

	if s.Phase != PhaseReviewing {
		t.Errorf("phase = %v, want reviewing", s.Phase)
	}
	if s.Outcome == nil {
		t.Fatal("expected an outcome")
	}
	if !s.Outcome.IsCorrect {
		t.Error("expected correct")
	}
	if s.Outcome.MatchedAnswer != "Tokyo" {
		t.Errorf("matched = %q, want Tokyo", s.Outcome.MatchedAnswer)
	}
	if s.Outcome.ResponseMs <= 0 {
		t.Errorf("responseMs = %d, want > 0", s.Outcome.ResponseMs)
	}
	if m.confusions != 0 {
		t.Error("correct answers must not run confusion detection")
	}
	// Counters wait for the grade.
	if s.Correct != 0 {
		t.Errorf("correct = %d, want 0 before grading", s.Correct)
	}
}

func TestSubmitAnswerWrongRunsConfusionDetection(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	m.confusionFn = func() (*store.ConfusionRecord, error) {
		return &store.ConfusionRecord{CardA: "c1", CardB: "c2", Count: 1}, nil
	}
	s := testSession(m)
	s.Start(context.Background(), "jh-geo")

	s.SubmitAnswer(context.Background(), "北海道")

	if s.Outcome == nil || s.Outcome.IsCorrect {
		t.Fatal("expected a wrong outcome")
	}
	if m.confusions != 1 {
		t.Errorf("confusion calls = %d, want 1", m.confusions)
	}
	if s.Confusion == nil || s.Confusion.CardB != "c2" {
		t.Errorf("confusion = %+v", s.Confusion)
	}
}

func TestSubmitAnswerConfusionErrorIsSwallowed(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	m.confusionFn = func() (*store.ConfusionRecord, error) {
		return nil, errors.New("detector broke")
	}
	s := testSession(m)
	s.Start(context.Background(), "jh-geo")

	s.SubmitAnswer(context.Background(), "wrong")

	if s.Phase != PhaseReviewing {
		t.Errorf("phase = %v, want reviewing despite detector error", s.Phase)
	}
	if s.Confusion != nil {
		t.Errorf("confusion = %+v, want nil", s.Confusion)
	}
}

func TestSubmitGradeAdvances(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	ctx := context.Background()
	s.Start(ctx, "jh-geo")
	s.SubmitAnswer(ctx, "東京")

	if err := s.SubmitGrade(ctx, fsrs.Good); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if s.Phase != PhaseQuestion {
		t.Errorf("phase = %v, want question", s.Phase)
	}
	if s.Correct != 1 || s.Incorrect != 0 {
		t.Errorf("counters = %d/%d, want 1/0", s.Correct, s.Incorrect)
	}
	if s.Position() != 2 {
		t.Errorf("position = %d, want 2", s.Position())
	}
	if len(m.saved) != 1 || len(m.reviews) != 1 {
		t.Fatalf("saved %d states, %d reviews", len(m.saved), len(m.reviews))
	}
	if m.saved[0].CardID != "c1" || m.saved[0].Reps != 1 {
		t.Errorf("saved state = %+v", m.saved[0])
	}
	if m.reviews[0].Grade != fsrs.Good || m.reviews[0].SessionID != s.ID {
		t.Errorf("review = %+v", m.reviews[0])
	}
}

func TestSubmitGradeLastCardFinishes(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	ctx := context.Background()
	s.Start(ctx, "jh-geo")

	s.SubmitAnswer(ctx, "東京")
	s.SubmitGrade(ctx, fsrs.Good)
	s.SubmitAnswer(ctx, "wrong")
	s.SubmitGrade(ctx, fsrs.Unknown)

	if s.Phase != PhaseDone {
		t.Errorf("phase = %v, want done", s.Phase)
	}
	if s.Correct != 1 || s.Incorrect != 1 {
		t.Errorf("counters = %d/%d, want 1/1", s.Correct, s.Incorrect)
	}
	if s.Current() != nil {
		t.Error("no current card after done")
	}
}

func TestSubmitGradePersistenceFailureRetainsPosition(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	ctx := context.Background()
	s.Start(ctx, "jh-geo")
	s.SubmitAnswer(ctx, "東京")

	m.saveErr = errors.New("database is locked")
	if err := s.SubmitGrade(ctx, fsrs.Good); err == nil {
		t.Fatal("expected error")
	}
	if s.Phase != PhaseReviewing {
		t.Errorf("phase = %v, want reviewing", s.Phase)
	}
	if s.Err == nil {
		t.Error("expected session error to be set")
	}
	if s.Correct != 0 {
		t.Errorf("correct = %d, want 0 (nothing persisted)", s.Correct)
	}
	if s.Position() != 1 {
		t.Errorf("position = %d, want 1", s.Position())
	}

	// The retry succeeds and clears the error.
	m.saveErr = nil
	if err := s.SubmitGrade(ctx, fsrs.Good); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s.Err != nil {
		t.Errorf("err = %v, want cleared", s.Err)
	}
	if s.Correct != 1 || s.Position() != 2 {
		t.Errorf("counters/position = %d/%d", s.Correct, s.Position())
	}
}

func TestSubmitGradeCallsOnGraded(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	ctx := context.Background()
	calls := 0
	s.OnGraded = func() { calls++ }
	s.Start(ctx, "jh-geo")

	s.SubmitAnswer(ctx, "東京")
	m.saveErr = errors.New("locked")
	s.SubmitGrade(ctx, fsrs.Good)
	if calls != 0 {
		t.Errorf("calls = %d, want 0 after failed save", calls)
	}
	m.saveErr = nil
	s.SubmitGrade(ctx, fsrs.Good)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestOutOfPhaseCallsAreNoOps(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	ctx := context.Background()

	// Idle: answering and grading do nothing.
	s.SubmitAnswer(ctx, "東京")
	if s.Phase != PhaseIdle || s.Outcome != nil {
		t.Errorf("phase = %v, outcome = %+v", s.Phase, s.Outcome)
	}
	if err := s.SubmitGrade(ctx, fsrs.Good); err != nil {
		t.Errorf("grade in idle: %v", err)
	}
	if len(m.saved) != 0 {
		t.Error("nothing should persist in idle")
	}

	// Question phase: grading before answering does nothing.
	s.Start(ctx, "jh-geo")
	s.SubmitGrade(ctx, fsrs.Good)
	if s.Phase != PhaseQuestion || len(m.saved) != 0 {
		t.Errorf("phase = %v, saved = %d", s.Phase, len(m.saved))
	}

	// Reviewing: a second answer submission does nothing.
	s.SubmitAnswer(ctx, "東京")
	first := s.Outcome
	s.SubmitAnswer(ctx, "different")
	if s.Outcome != first {
		t.Error("outcome must not change in reviewing phase")
	}

	// Starting mid-run does nothing.
	if err := s.Start(ctx, "other"); err != nil {
		t.Errorf("start mid-run: %v", err)
	}
	if s.DatasetID != "jh-geo" {
		t.Errorf("dataset = %s, want jh-geo", s.DatasetID)
	}
}

func TestSubmitGradeRejectsInvalidGrade(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	ctx := context.Background()
	s.Start(ctx, "jh-geo")
	s.SubmitAnswer(ctx, "東京")

	s.SubmitGrade(ctx, fsrs.Grade(0))
	s.SubmitGrade(ctx, fsrs.Grade(9))
	if s.Phase != PhaseReviewing || len(m.saved) != 0 {
		t.Errorf("phase = %v, saved = %d, want reviewing/0", s.Phase, len(m.saved))
	}
}

func TestReset(t *testing.T) {
	m := &mockStore{queue: testQueue()}
	s := testSession(m)
	ctx := context.Background()
	s.Start(ctx, "jh-geo")
	s.SubmitAnswer(ctx, "東京")

	s.Reset()

	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase)
	}
	if s.Total() != 0 || s.Outcome != nil || s.Err != nil {
		t.Error("expected cleared state")
	}

	// A reset session can start again.
	if err := s.Start(ctx, "jh-geo"); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Phase != PhaseQuestion {
		t.Errorf("phase = %v, want question", s.Phase)
	}
}

func TestSchedulingUsesTargetRetention(t *testing.T) {
	// A lower target retention gives a longer first interval.
	run := func(target float64) int64 {
		m := &mockStore{queue: testQueue(), settings: store.Settings{TargetRetention: target}}
		s := testSession(m)
		ctx := context.Background()
		s.Start(ctx, "jh-geo")
		s.SubmitAnswer(ctx, "東京")
		if err := s.SubmitGrade(ctx, fsrs.Easy); err != nil {
			t.Fatalf("grade: %v", err)
		}
		return m.saved[0].DueAt
	}

	relaxed := run(0.70)
	strict := run(0.97)
	if relaxed <= strict {
		t.Errorf("dueAt(0.70) = %d, dueAt(0.97) = %d, want relaxed later", relaxed, strict)
	}
}
