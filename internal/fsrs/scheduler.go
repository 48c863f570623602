package fsrs

import (
	"math"
	"time"
)

// State is the scheduling memory carried per card. LastReviewAt is nil
// before the first review.
type State struct {
	Stability    float64
	Difficulty   float64
	LastReviewAt *int64
	DueAt        int64
	Reps         int
	Lapses       int
}

// Per-grade seed tables for the first review. Index 0 is unused; grades
// run 1-4. Harder grades seed lower stability and higher difficulty.
var (
	initialStability  = [5]float64{0, 0.2, 0.7, 2.4, 4.0}
	initialDifficulty = [5]float64{0, 8.7, 7.2, 5.5, 4.2}
)

// Per-grade adjustments for subsequent reviews.
var (
	difficultyDelta = [5]float64{0, 0.8, 0.35, -0.15, -0.4}
	stabilityBonus  = [5]float64{0, 0, 0.9, 1.35, 1.75}
)

// ScheduleNext computes the next scheduling state for a card after a
// graded review. prior is nil on the first review. targetR is the desired
// retention rate; examDate, when non-nil, is an ISO date ("2006-01-02")
// past which no review is ever scheduled. The transform is deterministic;
// grade must be valid.
func ScheduleNext(now int64, prior *State, grade Grade, targetR float64, examDate *string) State {
	targetR = clamp(targetR, 0.70, 0.97)

	next := State{Reps: 1}
	if prior != nil {
		next.Reps = prior.Reps + 1
		next.Lapses = prior.Lapses
	}

	if prior == nil {
		next.Stability = initialStability[grade]
		next.Difficulty = initialDifficulty[grade]
	} else {
		r := Retrievability(now, prior.LastReviewAt, prior.Stability)
		next.Difficulty = clamp(prior.Difficulty+difficultyDelta[grade], 1, 10)

		if grade == Unknown {
			next.Lapses++
			// A lapse shrinks stability multiplicatively. The factor grows
			// with retrievability at the time of the lapse, floored at 0.2.
			next.Stability = math.Max(0.2, prior.Stability*(0.35+0.25*r))
		} else {
			diffPenalty := 1 + (10-next.Difficulty)*0.03
			next.Stability = math.Max(0.3,
				prior.Stability*(1+(1-r)*stabilityBonus[grade]*diffPenalty))
		}
	}

	intervalDays := 1
	if grade != Unknown {
		intervalDays = IntervalFromTargetR(targetR, next.Stability)
	}
	if examTs := parseExamDate(examDate); examTs != nil {
		maxDays := int((*examTs - now) / DayMs)
		if maxDays < 1 {
			maxDays = 1
		}
		if intervalDays > maxDays {
			intervalDays = maxDays
		}
	}

	last := now
	next.LastReviewAt = &last
	next.DueAt = now + int64(intervalDays)*DayMs
	return next
}

// parseExamDate resolves an ISO date to the last millisecond of that local
// day, or nil when unset or unparseable.
func parseExamDate(iso *string) *int64 {
	if iso == nil || *iso == "" {
		return nil
	}
	d, err := time.ParseInLocation("2006-01-02", *iso, time.Local)
	if err != nil {
		return nil
	}
	ts := d.AddDate(0, 0, 1).Add(-time.Millisecond).UnixMilli()
	return &ts
}
