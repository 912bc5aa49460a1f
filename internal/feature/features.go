// Package feature maps a learner's situation and a lesson's metadata into
// fixed-length numeric vectors for the bandit. Extraction is pure: current
// time is an explicit input and missing fields default to zero.
package feature

import (
	"time"

	"github.com/abhisek/lingua/internal/catalog"
)

// Dim is the shared dimensionality of context and lesson vectors.
const Dim = 10

// TimeBucket is a coarse time-of-day category.
type TimeBucket int

const (
	BucketMorning   TimeBucket = iota // 05:00-10:59
	BucketAfternoon                   // 11:00-16:59
	BucketEvening                     // 17:00-21:59
	BucketNight                       // 22:00-04:59
)

// BucketFor returns the time-of-day bucket for a wall-clock time.
func BucketFor(t time.Time) TimeBucket {
	switch h := t.Hour(); {
	case h >= 5 && h < 11:
		return BucketMorning
	case h >= 11 && h < 17:
		return BucketAfternoon
	case h >= 17 && h < 22:
		return BucketEvening
	default:
		return BucketNight
	}
}

func (b TimeBucket) weight() float64 {
	switch b {
	case BucketMorning:
		return 0.25
	case BucketAfternoon:
		return 0.5
	case BucketEvening:
		return 0.75
	case BucketNight:
		return 1.0
	default:
		return 0
	}
}

// Context is the learner's situation at recommendation time. It is rebuilt
// fresh before every call and never persisted as its own entity.
type Context struct {
	// SkillScores holds per-domain skill levels 0-100 in catalog.AllDomains order.
	SkillScores [catalog.NumDomains]float64

	StreakDays   int
	TimeOfDay    TimeBucket
	SessionOfDay int

	LastDifficulty catalog.Difficulty
	LastAccuracy   float64

	Preferred catalog.Difficulty
	Completed map[string]bool
}

// ContextFeatures encodes a learner context as a Dim-length vector.
func ContextFeatures(c Context) []float64 {
	v := make([]float64, Dim)

	for i := range catalog.NumDomains {
		v[i] = clamp01(c.SkillScores[i] / 100)
	}

	v[5] = clamp01(float64(c.StreakDays) / 30)
	v[6] = c.TimeOfDay.weight()
	v[7] = clamp01(float64(c.SessionOfDay) / 5)
	v[8] = c.LastDifficulty.Weight()
	v[9] = clamp01(c.LastAccuracy)

	return v
}

// LessonFeatures encodes a lesson's metadata as a Dim-length vector:
// a one-hot domain block, then difficulty, length, reward, and size, with a
// constant padding slot to match the context dimensionality.
func LessonFeatures(l catalog.Lesson) []float64 {
	v := make([]float64, Dim)

	if i := catalog.DomainIndex(l.Domain); i >= 0 {
		v[i] = 1
	}

	v[5] = l.Difficulty.Weight()
	v[6] = clamp01(float64(l.EstimatedMins) / 20)
	v[7] = clamp01(float64(l.XPReward) / 200)
	v[8] = clamp01(float64(l.QuestionCount()) / 15)
	v[9] = 0.5

	return v
}

func clamp01(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < 0 {
		return 0
	}
	return x
}
