package fsrs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleNextFirstReviewMonotonic(t *testing.T) {
	now := ms(1000)

	var prevStability, prevDifficulty float64
	for i, grade := range []Grade{Unknown, Hard, Good, Easy} {
		st := ScheduleNext(now, nil, grade, 0.9, nil)
		if i > 0 {
			assert.Greater(t, st.Stability, prevStability, "grade %v", grade)
			assert.Less(t, st.Difficulty, prevDifficulty, "grade %v", grade)
		}
		prevStability = st.Stability
		prevDifficulty = st.Difficulty
		assert.Equal(t, 1, st.Reps)
		require.NotNil(t, st.LastReviewAt)
		assert.Equal(t, now, *st.LastReviewAt)
	}
}

func TestScheduleNextFirstReviewSeeds(t *testing.T) {
	st := ScheduleNext(0, nil, Unknown, 0.9, nil)
	assert.Equal(t, 0.2, st.Stability)
	assert.Equal(t, 8.7, st.Difficulty)

	st = ScheduleNext(0, nil, Easy, 0.9, nil)
	assert.Equal(t, 4.0, st.Stability)
	assert.Equal(t, 4.2, st.Difficulty)
}

func TestScheduleNextLapseForcesOneDay(t *testing.T) {
	last := ms(0)
	prior := &State{
		Stability:    50,
		Difficulty:   4,
		LastReviewAt: &last,
		DueAt:        ms(50),
		Reps:         7,
		Lapses:       0,
	}

	now := ms(10)
	st := ScheduleNext(now, prior, Unknown, 0.9, nil)
	assert.Equal(t, now+1*DayMs, st.DueAt)
	assert.Equal(t, 1, st.Lapses)
	assert.Equal(t, 8, st.Reps)
	assert.Less(t, st.Stability, prior.Stability)
}

func TestScheduleNextLapseShrinkFactor(t *testing.T) {
	// The shrink factor is 0.35 + 0.25*R: a lapse at high retrievability
	// keeps more stability than one at low retrievability.
	mkPrior := func(elapsedDays float64) (*State, int64) {
		last := ms(0)
		now := ms(elapsedDays)
		return &State{Stability: 10, Difficulty: 5, LastReviewAt: &last}, now
	}

	fresh, nowFresh := mkPrior(1)   // high R
	stale, nowStale := mkPrior(100) // low R
	stFresh := ScheduleNext(nowFresh, fresh, Unknown, 0.9, nil)
	stStale := ScheduleNext(nowStale, stale, Unknown, 0.9, nil)
	assert.Greater(t, stFresh.Stability, stStale.Stability)

	// Floor at 0.2 regardless of how small the product gets.
	tiny := &State{Stability: 0.01, Difficulty: 10}
	st := ScheduleNext(ms(5), tiny, Unknown, 0.9, nil)
	assert.Equal(t, 0.2, st.Stability)
}

func TestScheduleNextSuccessGrowsStability(t *testing.T) {
	last := ms(0)
	now := ms(3)
	prior := &State{Stability: 3, Difficulty: 5, LastReviewAt: &last, Reps: 1}

	var prev float64
	for i, grade := range []Grade{Hard, Good, Easy} {
		st := ScheduleNext(now, prior, grade, 0.9, nil)
		assert.Greater(t, st.Stability, prior.Stability, "grade %v", grade)
		if i > 0 {
			assert.Greater(t, st.Stability, prev, "grade %v", grade)
		}
		prev = st.Stability
	}
}

func TestScheduleNextEasierCardsGetStrongerBoost(t *testing.T) {
	last := ms(0)
	now := ms(5)
	easyCard := &State{Stability: 3, Difficulty: 2, LastReviewAt: &last}
	hardCard := &State{Stability: 3, Difficulty: 9, LastReviewAt: &last}

	stEasy := ScheduleNext(now, easyCard, Good, 0.9, nil)
	stHard := ScheduleNext(now, hardCard, Good, 0.9, nil)
	assert.Greater(t, stEasy.Stability, stHard.Stability)
}

func TestScheduleNextDifficultyClamped(t *testing.T) {
	last := ms(0)
	atMax := &State{Stability: 1, Difficulty: 10, LastReviewAt: &last}
	st := ScheduleNext(ms(1), atMax, Unknown, 0.9, nil)
	assert.Equal(t, 10.0, st.Difficulty)

	atMin := &State{Stability: 1, Difficulty: 1, LastReviewAt: &last}
	st = ScheduleNext(ms(1), atMin, Easy, 0.9, nil)
	assert.Equal(t, 1.0, st.Difficulty)
}

func TestScheduleNextExamClamp(t *testing.T) {
	now := time.Now().UnixMilli()
	exam := time.Now().AddDate(0, 0, 3).Format("2006-01-02")

	// A first Easy review at 0.9 retention would otherwise land ~4 days out.
	st := ScheduleNext(now, nil, Easy, 0.9, &exam)
	examEnd, err := time.ParseInLocation("2006-01-02", exam, time.Local)
	if err != nil {
		t.Fatalf("parse exam date: %v", err)
	}
	limit := examEnd.AddDate(0, 0, 1).Add(-time.Millisecond).UnixMilli()
	assert.LessOrEqual(t, st.DueAt, limit)
	assert.GreaterOrEqual(t, st.DueAt, now+1*DayMs)
}

func TestScheduleNextExamInPastStillOneDay(t *testing.T) {
	now := time.Now().UnixMilli()
	exam := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	st := ScheduleNext(now, nil, Good, 0.9, &exam)
	assert.Equal(t, now+1*DayMs, st.DueAt)
}

func TestScheduleNextUnparseableExamDateIgnored(t *testing.T) {
	now := ms(0)
	bad := "next spring"
	st := ScheduleNext(now, nil, Easy, 0.9, &bad)
	unclamped := ScheduleNext(now, nil, Easy, 0.9, nil)
	assert.Equal(t, unclamped.DueAt, st.DueAt)
}

func TestGradeString(t *testing.T) {
	tests := []struct {
		grade Grade
		want  string
	}{
		{Unknown, "Unknown"},
		{Hard, "Hard"},
		{Good, "Good"},
		{Easy, "Easy"},
		{Grade(0), "Grade(0)"},
		{Grade(9), "Grade(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.grade.String())
	}
}
