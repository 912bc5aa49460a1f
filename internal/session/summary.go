package session

import (
	"time"

	"github.com/abhisek/lingua/internal/quiz"
)

// Result summarizes a finished session for display and logging.
type Result struct {
	SessionID string
	LessonID  string

	Completed   bool
	AllMastered bool

	MasteredConcepts int
	TotalConcepts    int
	Attempts         int
	Accuracy         float64

	Reward    float64
	XPAwarded int
	Duration  time.Duration

	Concepts []quiz.ConceptResult
}
