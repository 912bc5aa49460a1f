package quiz

import "github.com/abhisek/lingua/internal/catalog"

// CascadePos identifies a question's slot inside a penalty cascade.
type CascadePos int

const (
	CascadeNone      CascadePos = iota
	CascadeEasy                 // first remediation slot
	CascadeMedium               // second remediation slot
	CascadeHardRetry            // the mastery gate, re-queued until passed
)

// QueuedQuestion is one entry in a session's question queue. The queue is
// append-only for the life of the session: entries are never removed, only
// advanced past.
type QueuedQuestion struct {
	QuestionID string
	ConceptID  string
	Difficulty catalog.Difficulty

	// Penalty marks remediation questions injected after a failure.
	// Correct penalty answers earn reduced credit.
	Penalty bool

	// InitialHardTest marks the single up-front hard question seeded per
	// concept. A failure here is what triggers the cascade.
	InitialHardTest bool

	// Pos is the slot within the cascade, CascadeNone outside one.
	Pos CascadePos
}
