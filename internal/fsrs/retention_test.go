package fsrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ms(days float64) int64 {
	return int64(days * DayMs)
}

func TestRetrievabilityNeverReviewed(t *testing.T) {
	assert.Equal(t, 0.0, Retrievability(ms(100), nil, 3.0))
}

func TestRetrievabilityNonPositiveStability(t *testing.T) {
	last := ms(99)
	assert.Equal(t, 0.0, Retrievability(ms(100), &last, 0))
	assert.Equal(t, 0.0, Retrievability(ms(100), &last, -1))
}

func TestRetrievabilityAtReviewTimeIsOne(t *testing.T) {
	now := ms(50)
	assert.InDelta(t, 1.0, Retrievability(now, &now, 2.5), 1e-12)
}

func TestRetrievabilityAfterOneStabilityIsNinety(t *testing.T) {
	// elapsed == stability forces exactly one decay step: 0.9^1.
	stability := 3.0
	last := ms(10)
	now := last + ms(stability)
	assert.InDelta(t, 0.9, Retrievability(now, &last, stability), 1e-9)
}

func TestRetrievabilityClockSkewClampsToOne(t *testing.T) {
	last := ms(100)
	now := ms(99) // last review in the future
	assert.InDelta(t, 1.0, Retrievability(now, &last, 2.0), 1e-12)
}

func TestIntervalFromTargetRMinimumOneDay(t *testing.T) {
	assert.Equal(t, 1, IntervalFromTargetR(0.90, 0.05))
	assert.Equal(t, 1, IntervalFromTargetR(0.97, 0.2))
}

func TestIntervalFromTargetRClampsTarget(t *testing.T) {
	// Targets outside [0.70, 0.97] behave as the nearest bound.
	assert.Equal(t, IntervalFromTargetR(0.70, 20), IntervalFromTargetR(0.1, 20))
	assert.Equal(t, IntervalFromTargetR(0.97, 20), IntervalFromTargetR(0.999, 20))
}

func TestIntervalInversionRoundTrip(t *testing.T) {
	targets := []float64{0.70, 0.80, 0.90, 0.97}
	stabilities := []float64{3, 10, 40}

	for _, targetR := range targets {
		for _, s := range stabilities {
			days := IntervalFromTargetR(targetR, s)
			last := int64(0)
			now := int64(days) * DayMs
			got := Retrievability(now, &last, s)
			// Rounding the interval to whole days moves R off the target
			// slightly; a fraction of a day against these stabilities stays
			// well inside 0.02.
			assert.InDelta(t, targetR, got, 0.02,
				"targetR=%v stability=%v days=%d", targetR, s, days)
		}
	}
}
