package fsrs

import "fmt"

// Grade is the learner's self-assessment of a review.
type Grade int

const (
	Unknown Grade = iota + 1 // Could not recall at all.
	Hard                     // Recalled with significant effort.
	Good                     // Recalled with some effort.
	Easy                     // Recalled effortlessly.
)

var gradeNames = [...]string{Unknown: "Unknown", Hard: "Hard", Good: "Good", Easy: "Easy"}

// String returns the grade name, or "Grade(n)" for invalid values.
func (g Grade) String() string {
	if g.IsValid() {
		return gradeNames[g]
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// IsValid reports whether g is in the 1-4 range.
func (g Grade) IsValid() bool {
	return g >= Unknown && g <= Easy
}
