package bandit

import (
	"math"
	"time"
)

// UpdateParams folds one observed reward into a lesson's parameters.
//
// The pull count is incremented before any division, so no divide-by-zero
// path exists. The weight update is a single stochastic-gradient step with
// learning rate 1/sqrt(pulls), not a covariance-matrix LinUCB update.
func UpdateParams(p LessonParams, contextFeatures []float64, reward float64) LessonParams {
	n := p.PullCount + 1

	out := LessonParams{
		LessonID:  p.LessonID,
		PullCount: n,
		RewardSum: p.RewardSum + reward,
	}
	out.AverageReward = out.RewardSum / float64(n)

	lr := 1 / math.Sqrt(float64(n))
	prediction := Dot(p.Theta, contextFeatures)
	delta := reward - prediction

	out.Theta = make([]float64, len(p.Theta))
	for i := range p.Theta {
		x := 0.0
		if i < len(contextFeatures) {
			x = contextFeatures[i]
		}
		out.Theta[i] = p.Theta[i] + lr*delta*x
	}

	out.Confidence = math.Sqrt(math.Log(float64(n)+1) / float64(n+1))
	return out
}

// Apply returns a new State with one reward folded into the given lesson's
// parameters. The global pull counter advances exactly once per call. This
// is the only mutator of bandit state.
func Apply(s State, lessonID string, contextFeatures []float64, reward float64, now time.Time) State {
	out := s.clone()
	out.Lessons[lessonID] = UpdateParams(s.Params(lessonID), contextFeatures, reward)
	out.TotalPulls++
	out.UpdatedAt = now
	return out
}

// Dot returns the dot product of two vectors. Extra components in the longer
// vector are ignored, so a short feature vector behaves as if padded with
// zeros.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := range n {
		sum += a[i] * b[i]
	}
	return sum
}
