package bandit

// LessonOutcome is the raw completion telemetry for one lesson attempt.
// Consumed once to produce a reward scalar.
type LessonOutcome struct {
	LessonID       string
	Accuracy       float64 // 0-1
	CompletionSecs float64
	ExpectedSecs   float64
	Completed      bool
	Rating         int // 1-5, 0 when the learner gave no rating
}

// ComputeReward maps a lesson outcome to a reward in [0, 1].
//
// Accuracy is the base. Completing adds 0.1, abandoning costs 0.2. Finishing
// in under half the expected time with accuracy >= 0.8 adds 0.1; taking more
// than twice the expected time costs 0.1. A rating shifts the result by
// (rating-3)*0.1.
func ComputeReward(o LessonOutcome) float64 {
	reward := o.Accuracy

	if o.Completed {
		reward += 0.1
	} else {
		reward -= 0.2
	}

	if o.ExpectedSecs > 0 {
		ratio := o.CompletionSecs / o.ExpectedSecs
		if ratio < 0.5 && o.Accuracy >= 0.8 {
			reward += 0.1
		} else if ratio > 2.0 {
			reward -= 0.1
		}
	}

	if o.Rating > 0 {
		reward += float64(o.Rating-3) * 0.1
	}

	if reward < 0 {
		return 0
	}
	if reward > 1 {
		return 1
	}
	return reward
}
