package session

// Phase represents the current phase of a study session.
type Phase int

const (
	PhaseIdle      Phase = iota // No session running
	PhaseLoading                // Queue being fetched
	PhaseQuestion               // Waiting for the learner's answer
	PhaseReviewing              // Answer shown, waiting for a grade
	PhaseDone                   // Queue exhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseQuestion:
		return "question"
	case PhaseReviewing:
		return "reviewing"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Outcome captures the answer check for the current card. It is set when
// the learner submits an answer and consumed when they grade themselves.
type Outcome struct {
	IsCorrect       bool
	MatchedAnswer   string
	NormalizedInput string
	ResponseMs      int64
}
