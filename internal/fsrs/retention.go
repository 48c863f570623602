// Package fsrs implements the retention model and review scheduler.
//
// Retrievability decays exponentially with elapsed time relative to a
// per-card stability constant: R = 0.9^(elapsedDays / stability). The
// scheduler inverts that curve to pick the interval at which
// retrievability will have fallen to the configured target.
package fsrs

import "math"

// DayMs is one day in epoch milliseconds. All timestamps in this package
// are epoch milliseconds.
const DayMs = 24 * 60 * 60 * 1000

var log09 = math.Log(0.9)

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Retrievability returns the modeled probability of recall at time now.
// A card that has never been reviewed, or whose stability is not positive,
// has retrievability 0.
func Retrievability(now int64, lastReviewAt *int64, stability float64) float64 {
	if lastReviewAt == nil || stability <= 0 {
		return 0
	}
	elapsedDays := math.Max(0, float64(now-*lastReviewAt)/DayMs)
	r := math.Exp(log09 * elapsedDays / math.Max(stability, 0.01))
	return clamp(r, 0, 1)
}

// IntervalFromTargetR returns the whole number of days after which
// retrievability falls to targetR, at least 1. targetR is forced into
// [0.70, 0.97] and stability floored at 0.05 to keep the inversion sane.
func IntervalFromTargetR(targetR, stability float64) int {
	targetR = clamp(targetR, 0.70, 0.97)
	stability = math.Max(stability, 0.05)
	days := stability * math.Log(targetR) / log09
	n := int(math.Round(days))
	if n < 1 {
		return 1
	}
	return n
}
