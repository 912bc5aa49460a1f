// Package bandit holds the per-lesson contextual bandit state and its
// online update rule. The learning step is a stochastic-gradient variant of
// LinUCB: a single weight vector per arm instead of a covariance matrix.
// The scoring constants elsewhere were tuned against this simplified
// behavior, so it is preserved as-is.
package bandit

import (
	"time"

	"github.com/abhisek/lingua/internal/feature"
)

// OptimisticSeed is the initial average reward for an unseen lesson.
// Seeding above zero keeps untried arms attractive during cold start.
const OptimisticSeed = 0.5

// LessonParams holds the learned parameters for one lesson (one arm).
type LessonParams struct {
	LessonID      string
	PullCount     int
	RewardSum     float64
	AverageReward float64
	Theta         []float64
	Confidence    float64
}

// NewLessonParams returns fresh parameters for a lesson: optimistic average,
// zero weights.
func NewLessonParams(lessonID string) LessonParams {
	return LessonParams{
		LessonID:      lessonID,
		AverageReward: OptimisticSeed,
		Theta:         make([]float64, feature.Dim),
	}
}

// State is one learner's bandit state: parameters per lesson plus a global
// pull counter. Values are updated state-in/state-out; the only mutator is
// Apply in update.go.
type State struct {
	Lessons    map[string]LessonParams
	TotalPulls int64
	UpdatedAt  time.Time
}

// NewState returns an empty bandit state.
func NewState() State {
	return State{Lessons: make(map[string]LessonParams)}
}

// Params returns the stored parameters for a lesson, or fresh ones if the
// lesson has never been scored or updated. The state itself is not modified;
// params are stored lazily on the first Apply.
func (s State) Params(lessonID string) LessonParams {
	if p, ok := s.Lessons[lessonID]; ok {
		return p
	}
	return NewLessonParams(lessonID)
}

// clone returns a shallow copy of the state with a fresh lesson map.
func (s State) clone() State {
	out := State{
		Lessons:    make(map[string]LessonParams, len(s.Lessons)+1),
		TotalPulls: s.TotalPulls,
		UpdatedAt:  s.UpdatedAt,
	}
	for id, p := range s.Lessons {
		out.Lessons[id] = p
	}
	return out
}
