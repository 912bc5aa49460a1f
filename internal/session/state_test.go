package session

import (
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/bandit"
	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/feature"
	"github.com/abhisek/lingua/internal/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	ls := NewLearnerState()
	ls.Skills.Scores[catalog.DomainGrammar] = 42
	ls.Bandit = bandit.Apply(ls.Bandit, "l1", []float64{0.5, 0.5}, 0.7, now)
	ls.Completed["l1"] = true
	ls.Rewarded["l1"] = true
	ls.XP = 230
	ls.Hearts = 3
	ls.StreakDays = 6
	ls.LastActiveDate = "2026-08-29"
	ls.SessionsToday = 2
	ls.LastDifficulty = catalog.DifficultyIntermediate
	ls.LastAccuracy = 0.75
	ls.PreferredDifficulty = catalog.DifficultyAdvanced

	got := FromSnapshot(ls.ToSnapshot())

	if got.Skills.Score(catalog.DomainGrammar) != 42 {
		t.Errorf("grammar = %v, want 42", got.Skills.Score(catalog.DomainGrammar))
	}
	p := got.Bandit.Params("l1")
	if p.PullCount != 1 || p.RewardSum != 0.7 {
		t.Errorf("arm = %+v", p)
	}
	if len(p.Theta) != feature.Dim {
		t.Errorf("theta dim = %d, want %d", len(p.Theta), feature.Dim)
	}
	if got.Bandit.TotalPulls != 1 {
		t.Errorf("total pulls = %d, want 1", got.Bandit.TotalPulls)
	}
	if !got.Completed["l1"] || !got.Rewarded["l1"] {
		t.Error("lesson sets lost in round trip")
	}
	if got.XP != 230 || got.Hearts != 3 || got.StreakDays != 6 {
		t.Errorf("counters = %d/%d/%d", got.XP, got.Hearts, got.StreakDays)
	}
	if got.SessionsToday != 2 || got.LastActiveDate != "2026-08-29" {
		t.Errorf("daily = %d/%q", got.SessionsToday, got.LastActiveDate)
	}
	if got.LastDifficulty != catalog.DifficultyIntermediate {
		t.Errorf("last difficulty = %v", got.LastDifficulty)
	}
	if got.PreferredDifficulty != catalog.DifficultyAdvanced {
		t.Errorf("preferred = %v", got.PreferredDifficulty)
	}
}

func TestFromSnapshotEmptyData(t *testing.T) {
	ls := FromSnapshot(store.SnapshotData{})

	if ls.Completed == nil || ls.Rewarded == nil {
		t.Fatal("nil lesson sets")
	}
	if ls.Hearts != MaxHearts {
		t.Errorf("hearts = %d, want %d", ls.Hearts, MaxHearts)
	}
	if ls.PreferredDifficulty != catalog.DifficultyBeginner {
		t.Errorf("preferred = %v, want beginner default", ls.PreferredDifficulty)
	}
	if ls.Skills.Score(catalog.DomainVocabulary) != 0 {
		t.Error("unseen domain should score 0")
	}
}

func TestTouchDay(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 8, d, hour, 0, 0, 0, time.UTC)
	}

	t.Run("same day is a no-op", func(t *testing.T) {
		ls := NewLearnerState()
		ls.StreakDays = 3
		ls.LastActiveDate = "2026-08-29"
		ls.SessionsToday = 2
		ls.Hearts = 1

		ls.TouchDay(day(29, 20))
		if ls.StreakDays != 3 || ls.SessionsToday != 2 || ls.Hearts != 1 {
			t.Errorf("state changed on same day: %+v", ls)
		}
	})

	t.Run("consecutive day extends streak", func(t *testing.T) {
		ls := NewLearnerState()
		ls.StreakDays = 3
		ls.LastActiveDate = "2026-08-28"
		ls.SessionsToday = 4
		ls.Hearts = 0

		ls.TouchDay(day(29, 9))
		if ls.StreakDays != 4 {
			t.Errorf("streak = %d, want 4", ls.StreakDays)
		}
		if ls.SessionsToday != 0 {
			t.Errorf("sessions = %d, want reset", ls.SessionsToday)
		}
		if ls.Hearts != MaxHearts {
			t.Errorf("hearts = %d, want refilled", ls.Hearts)
		}
		if ls.LastActiveDate != "2026-08-29" {
			t.Errorf("date = %q", ls.LastActiveDate)
		}
	})

	t.Run("gap resets streak", func(t *testing.T) {
		ls := NewLearnerState()
		ls.StreakDays = 10
		ls.LastActiveDate = "2026-08-25"

		ls.TouchDay(day(29, 9))
		if ls.StreakDays != 1 {
			t.Errorf("streak = %d, want 1", ls.StreakDays)
		}
	})

	t.Run("first ever activity", func(t *testing.T) {
		ls := NewLearnerState()
		ls.TouchDay(day(29, 9))
		if ls.StreakDays != 1 {
			t.Errorf("streak = %d, want 1", ls.StreakDays)
		}
	})
}

func TestContextAssembly(t *testing.T) {
	ls := NewLearnerState()
	ls.Skills.Scores[catalog.DomainVocabulary] = 80
	ls.StreakDays = 5
	ls.SessionsToday = 2
	ls.LastDifficulty = catalog.DifficultyIntermediate
	ls.LastAccuracy = 0.6
	ls.Completed["l1"] = true

	now := time.Date(2026, 8, 29, 19, 0, 0, 0, time.UTC)
	c := ls.Context(now)

	if c.SkillScores[0] != 80 {
		t.Errorf("vocabulary score = %v, want 80", c.SkillScores[0])
	}
	if c.TimeOfDay != feature.BucketEvening {
		t.Errorf("bucket = %v, want evening", c.TimeOfDay)
	}
	if c.StreakDays != 5 || c.SessionOfDay != 2 {
		t.Errorf("streak/session = %d/%d", c.StreakDays, c.SessionOfDay)
	}
	if !c.Completed["l1"] {
		t.Error("completed set not carried")
	}
}
