package quiz

// ConceptResult tracks per-concept progress across a session: the outcome
// of each tier the learner faced, one result per concept.
type ConceptResult struct {
	ConceptID string

	// Mastered is set only by a correct answer on a hard-tier question.
	Mastered bool

	// MasteredOnFirstTry records whether mastery came from the initial
	// hard test rather than from the penalty cascade.
	MasteredOnFirstTry bool

	// CascadeTriggered records that the initial hard failure injected an
	// easy, medium, hard-retry remediation sequence. Legacy re-queues do
	// not count: they repeat the same question without a cascade.
	CascadeTriggered bool

	// Per-tier outcomes. Nil means the tier was never served. HardRetry
	// keeps the latest outcome when the gate is retried more than once.
	HardCorrect      *bool
	EasyCorrect      *bool
	MediumCorrect    *bool
	HardRetryCorrect *bool

	Attempts int
	Correct  int
}

// recordTier notes the outcome of the queue slot just answered.
func (r *ConceptResult) recordTier(q QueuedQuestion, correct bool) {
	outcome := correct
	switch {
	case q.InitialHardTest:
		r.HardCorrect = &outcome
	case q.Pos == CascadeEasy:
		r.EasyCorrect = &outcome
	case q.Pos == CascadeMedium:
		r.MediumCorrect = &outcome
	case q.Pos == CascadeHardRetry:
		r.HardRetryCorrect = &outcome
	}
}

// Credit returns the reward-eligible credit this concept contributes:
// full credit for an initial hard pass, half for mastery earned through
// the penalty cascade, nothing for an unmastered concept.
func (r *ConceptResult) Credit() float64 {
	switch {
	case !r.Mastered:
		return 0
	case r.MasteredOnFirstTry:
		return 1.0
	default:
		return 0.5
	}
}

// Feedback describes what happened after one submitted answer.
type Feedback struct {
	Correct bool

	// Mastered reports that this answer mastered the question's concept.
	Mastered bool

	// CascadeStarted reports that a remediation cascade was appended for
	// the concept.
	CascadeStarted bool

	// Requeued reports that the same question was appended again for
	// another try.
	Requeued bool

	// Done reports that the queue is exhausted and the session is over.
	Done bool
}
