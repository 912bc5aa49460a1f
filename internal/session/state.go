package session

import (
	"time"

	"github.com/abhisek/lingua/internal/bandit"
	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/feature"
	"github.com/abhisek/lingua/internal/skills"
	"github.com/abhisek/lingua/internal/store"
)

// MaxHearts is the heart budget refilled each day.
const MaxHearts = 5

// dateLayout is the local calendar date carried in snapshots.
const dateLayout = "2006-01-02"

// LearnerState is the working in-memory form of a learner's progress,
// rebuilt from a snapshot at startup and written back after each session.
type LearnerState struct {
	Skills skills.Profile
	Bandit bandit.State

	Completed map[string]bool
	Rewarded  map[string]bool

	XP         int
	Hearts     int
	StreakDays int

	LastActiveDate string
	SessionsToday  int

	LastDifficulty      catalog.Difficulty
	LastAccuracy        float64
	PreferredDifficulty catalog.Difficulty
}

// NewLearnerState returns the state of a brand new learner.
func NewLearnerState() LearnerState {
	return LearnerState{
		Skills:              skills.NewProfile(),
		Bandit:              bandit.NewState(),
		Completed:           make(map[string]bool),
		Rewarded:            make(map[string]bool),
		Hearts:              MaxHearts,
		PreferredDifficulty: catalog.DifficultyBeginner,
	}
}

// FromSnapshot rebuilds learner state from persisted snapshot data.
// Fields absent from older snapshots come back as zero values and are
// normalized here.
func FromSnapshot(data store.SnapshotData) LearnerState {
	ls := NewLearnerState()

	for d, score := range data.Skills {
		ls.Skills.Scores[catalog.Domain(d)] = score
	}

	ls.Bandit.TotalPulls = data.Bandit.TotalPulls
	for id, arm := range data.Bandit.Arms {
		theta := make([]float64, feature.Dim)
		copy(theta, arm.Theta)
		ls.Bandit.Lessons[id] = bandit.LessonParams{
			LessonID:      id,
			PullCount:     arm.PullCount,
			RewardSum:     arm.RewardSum,
			AverageReward: arm.AverageReward,
			Theta:         theta,
		}
	}

	for _, id := range data.CompletedLessons {
		ls.Completed[id] = true
	}
	for _, id := range data.RewardedLessons {
		ls.Rewarded[id] = true
	}

	ls.XP = data.XP
	ls.Hearts = data.Hearts
	ls.StreakDays = data.StreakDays
	ls.LastActiveDate = data.LastActiveDate
	ls.SessionsToday = data.SessionsToday
	ls.LastAccuracy = data.LastAccuracy

	if data.LastDifficulty >= int(catalog.DifficultyBeginner) && data.LastDifficulty <= int(catalog.DifficultyAdvanced) {
		ls.LastDifficulty = catalog.Difficulty(data.LastDifficulty)
	}
	if data.PreferredDifficulty >= int(catalog.DifficultyBeginner) && data.PreferredDifficulty <= int(catalog.DifficultyAdvanced) {
		ls.PreferredDifficulty = catalog.Difficulty(data.PreferredDifficulty)
	}

	return ls
}

// ToSnapshot serializes the state for persistence.
func (ls LearnerState) ToSnapshot() store.SnapshotData {
	data := store.SnapshotData{
		Version:             store.SnapshotVersion,
		Skills:              make(map[string]float64, len(ls.Skills.Scores)),
		XP:                  ls.XP,
		Hearts:              ls.Hearts,
		StreakDays:          ls.StreakDays,
		LastActiveDate:      ls.LastActiveDate,
		SessionsToday:       ls.SessionsToday,
		LastDifficulty:      int(ls.LastDifficulty),
		LastAccuracy:        ls.LastAccuracy,
		PreferredDifficulty: int(ls.PreferredDifficulty),
	}

	for d, score := range ls.Skills.Scores {
		data.Skills[string(d)] = score
	}

	data.Bandit = store.BanditState{
		Arms:       make(map[string]store.BanditArm, len(ls.Bandit.Lessons)),
		TotalPulls: ls.Bandit.TotalPulls,
	}
	for id, p := range ls.Bandit.Lessons {
		theta := make([]float64, len(p.Theta))
		copy(theta, p.Theta)
		data.Bandit.Arms[id] = store.BanditArm{
			PullCount:     p.PullCount,
			RewardSum:     p.RewardSum,
			AverageReward: p.AverageReward,
			Theta:         theta,
		}
	}

	data.CompletedLessons = sortedKeys(ls.Completed)
	data.RewardedLessons = sortedKeys(ls.Rewarded)
	return data
}

// TouchDay rolls the daily counters forward to now's calendar date:
// consecutive days extend the streak, a gap resets it, and hearts and the
// session counter refill on the first activity of a day.
func (ls *LearnerState) TouchDay(now time.Time) {
	today := now.Format(dateLayout)
	if ls.LastActiveDate == today {
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if ls.LastActiveDate == yesterday {
		ls.StreakDays++
	} else {
		ls.StreakDays = 1
	}

	ls.LastActiveDate = today
	ls.SessionsToday = 0
	ls.Hearts = MaxHearts
}

// Context assembles the recommendation context for the current moment.
func (ls LearnerState) Context(now time.Time) feature.Context {
	return feature.Context{
		SkillScores:    ls.Skills.Vector(),
		StreakDays:     ls.StreakDays,
		TimeOfDay:      feature.BucketFor(now),
		SessionOfDay:   ls.SessionsToday,
		LastDifficulty: ls.LastDifficulty,
		LastAccuracy:   ls.LastAccuracy,
		Preferred:      ls.PreferredDifficulty,
		Completed:      ls.Completed,
	}
}
