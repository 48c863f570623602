package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hkawai/kioku/internal/answer"
	"github.com/hkawai/kioku/internal/fsrs"
	"github.com/hkawai/kioku/internal/store"
)

// Store is the persistence surface a session needs.
type Store interface {
	BuildDueQueue(ctx context.Context, datasetID string, now int64) ([]store.QueueItem, error)
	SaveReview(ctx context.Context, state store.CardState, review store.Review) error
	DetectConfusion(ctx context.Context, datasetID, cardID, input string) (*store.ConfusionRecord, error)
	Settings(ctx context.Context) (store.Settings, error)
}

// Session drives one study run over a dataset's due queue. It is not safe
// for concurrent use; the TUI drives it from a single goroutine.
type Session struct {
	ID        string
	DatasetID string
	Phase     Phase

	// Queue is the frozen due queue for this run. Index points at the
	// current card; it only moves forward.
	Queue []store.QueueItem
	Index int

	// Correct and Incorrect are counted when a grade is persisted, not
	// when the answer is checked.
	Correct   int
	Incorrect int

	// Outcome is the answer check for the current card, nil in the
	// question phase.
	Outcome *Outcome

	// Confusion is the record touched by the last wrong answer, nil when
	// none was detected.
	Confusion *store.ConfusionRecord

	// Err is the last persistence failure. Set when a grade could not be
	// saved; cleared on the next successful save.
	Err error

	// OnGraded is called after each successfully persisted grade, for
	// refreshing due counts elsewhere in the UI.
	OnGraded func()

	store    Store
	settings store.Settings
	shownAt  int64

	now func() int64
}

// New creates an idle session backed by st.
func New(st Store) *Session {
	return &Session{
		Phase: PhaseIdle,
		store: st,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// Start loads the due queue for datasetID and serves the first card. An
// empty queue completes immediately. Only valid from idle or done; other
// phases are a no-op.
func (s *Session) Start(ctx context.Context, datasetID string) error {
	if s.Phase != PhaseIdle && s.Phase != PhaseDone {
		return nil
	}
	s.Phase = PhaseLoading
	s.ID = uuid.NewString()
	s.DatasetID = datasetID
	s.Index = 0
	s.Correct = 0
	s.Incorrect = 0
	s.Outcome = nil
	s.Confusion = nil
	s.Err = nil

	settings, err := s.store.Settings(ctx)
	if err != nil {
		s.Phase = PhaseIdle
		return err
	}
	s.settings = settings

	queue, err := s.store.BuildDueQueue(ctx, datasetID, s.now())
	if err != nil {
		s.Phase = PhaseIdle
		return err
	}
	s.Queue = queue

	if len(queue) == 0 {
		s.Phase = PhaseDone
		return nil
	}
	s.Phase = PhaseQuestion
	s.shownAt = s.now()
	return nil
}

// Current returns the card being studied, nil outside question/reviewing.
func (s *Session) Current() *store.QueueItem {
	if s.Phase != PhaseQuestion && s.Phase != PhaseReviewing {
		return nil
	}
	if s.Index < 0 || s.Index >= len(s.Queue) {
		return nil
	}
	return &s.Queue[s.Index]
}

// SubmitAnswer checks input against the current card and moves to the
// reviewing phase. Wrong answers feed the confusion detector; detector
// failures are ignored, a stats miss must not block the session. Only
// valid in the question phase.
func (s *Session) SubmitAnswer(ctx context.Context, input string) {
	if s.Phase != PhaseQuestion {
		return
	}
	item := s.Current()
	if item == nil {
		return
	}

	res := answer.Check(item.Card.Answers, input)
	s.Outcome = &Outcome{
		IsCorrect:       res.IsCorrect,
		MatchedAnswer:   res.MatchedAnswer,
		NormalizedInput: res.NormalizedInput,
		ResponseMs:      s.now() - s.shownAt,
	}

	s.Confusion = nil
	if !res.IsCorrect {
		if rec, err := s.store.DetectConfusion(ctx, s.DatasetID, item.Card.ID, input); err == nil {
			s.Confusion = rec
		}
	}
	s.Phase = PhaseReviewing
}

// SubmitGrade schedules the next review for the current card and persists
// the new state together with a review log entry. On a persistence failure
// the session stays in the reviewing phase with Err set so the learner can
// retry. Only valid in the reviewing phase.
func (s *Session) SubmitGrade(ctx context.Context, g fsrs.Grade) error {
	if s.Phase != PhaseReviewing {
		return nil
	}
	item := s.Current()
	if item == nil || s.Outcome == nil || !g.IsValid() {
		return nil
	}

	now := s.now()
	next := fsrs.ScheduleNext(now, item.State.Model(), g, s.settings.TargetRetention, s.settings.ExamDate)

	err := s.store.SaveReview(ctx,
		store.NewCardState(s.DatasetID, item.Card.ID, next),
		store.Review{
			CardID:     item.Card.ID,
			DatasetID:  s.DatasetID,
			Grade:      g,
			ResponseMs: s.Outcome.ResponseMs,
			ReviewedAt: now,
			SessionID:  s.ID,
		})
	if err != nil {
		s.Err = err
		return err
	}
	s.Err = nil

	if s.Outcome.IsCorrect {
		s.Correct++
	} else {
		s.Incorrect++
	}
	s.Outcome = nil
	s.Confusion = nil
	if s.OnGraded != nil {
		s.OnGraded()
	}

	s.Index++
	if s.Index >= len(s.Queue) {
		s.Phase = PhaseDone
		return nil
	}
	s.Phase = PhaseQuestion
	s.shownAt = s.now()
	return nil
}

// Reset abandons the session and returns to idle. Valid from any phase.
func (s *Session) Reset() {
	s.Phase = PhaseIdle
	s.Queue = nil
	s.Index = 0
	s.Correct = 0
	s.Incorrect = 0
	s.Outcome = nil
	s.Confusion = nil
	s.Err = nil
}

// Total returns the size of the loaded queue.
func (s *Session) Total() int {
	return len(s.Queue)
}

// Position returns the 1-based position of the current card, or Total when
// the session is done.
func (s *Session) Position() int {
	if s.Index >= len(s.Queue) {
		return len(s.Queue)
	}
	return s.Index + 1
}
