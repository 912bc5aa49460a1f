package feature

import (
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/catalog"
)

func at(hour int) time.Time {
	return time.Date(2026, 8, 29, hour, 30, 0, 0, time.UTC)
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		hour int
		want TimeBucket
	}{
		{5, BucketMorning},
		{10, BucketMorning},
		{11, BucketAfternoon},
		{16, BucketAfternoon},
		{17, BucketEvening},
		{21, BucketEvening},
		{22, BucketNight},
		{2, BucketNight},
		{4, BucketNight},
	}
	for _, tt := range tests {
		if got := BucketFor(at(tt.hour)); got != tt.want {
			t.Errorf("BucketFor(%02d:30) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestContextFeatures(t *testing.T) {
	c := Context{
		SkillScores:    [catalog.NumDomains]float64{50, 100, 0, 25, 75},
		StreakDays:     15,
		TimeOfDay:      BucketEvening,
		SessionOfDay:   2,
		LastDifficulty: catalog.DifficultyIntermediate,
		LastAccuracy:   0.8,
	}
	v := ContextFeatures(c)

	if len(v) != Dim {
		t.Fatalf("len = %d, want %d", len(v), Dim)
	}
	wantSkills := []float64{0.5, 1.0, 0, 0.25, 0.75}
	for i, w := range wantSkills {
		if v[i] != w {
			t.Errorf("v[%d] = %v, want %v", i, v[i], w)
		}
	}
	if v[5] != 0.5 {
		t.Errorf("streak feature = %v, want 0.5", v[5])
	}
	if v[6] != 0.75 {
		t.Errorf("time feature = %v, want 0.75", v[6])
	}
	if v[7] != 0.4 {
		t.Errorf("session feature = %v, want 0.4", v[7])
	}
	if v[8] != 0.66 {
		t.Errorf("difficulty feature = %v, want 0.66", v[8])
	}
	if v[9] != 0.8 {
		t.Errorf("accuracy feature = %v, want 0.8", v[9])
	}
}

func TestContextFeaturesClamped(t *testing.T) {
	c := Context{
		StreakDays:   365,
		SessionOfDay: 40,
		LastAccuracy: 1.5,
	}
	v := ContextFeatures(c)
	for _, i := range []int{5, 7, 9} {
		if v[i] != 1.0 {
			t.Errorf("v[%d] = %v, want clamped to 1", i, v[i])
		}
	}
}

func TestContextFeaturesZeroValue(t *testing.T) {
	v := ContextFeatures(Context{})
	// Zero-value context: morning weight only.
	for i, x := range v {
		if i == 6 {
			if x != 0.25 {
				t.Errorf("time feature = %v, want morning 0.25", x)
			}
			continue
		}
		if x != 0 {
			t.Errorf("v[%d] = %v, want 0 for missing data", i, x)
		}
	}
}

func TestLessonFeatures(t *testing.T) {
	l := catalog.Lesson{
		ID:            "l1",
		Domain:        catalog.DomainGrammar,
		Difficulty:    catalog.DifficultyAdvanced,
		EstimatedMins: 10,
		XPReward:      50,
		QuestionIDs:   []string{"a", "b", "c"},
	}
	v := LessonFeatures(l)

	if len(v) != Dim {
		t.Fatalf("len = %d, want %d", len(v), Dim)
	}
	// One-hot block: grammar is index 1 in catalog order.
	for i := 0; i < catalog.NumDomains; i++ {
		want := 0.0
		if i == 1 {
			want = 1.0
		}
		if v[i] != want {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want)
		}
	}
	if v[5] != 1.0 {
		t.Errorf("difficulty = %v, want 1.0 for advanced", v[5])
	}
	if v[6] != 0.5 {
		t.Errorf("length = %v, want 0.5", v[6])
	}
	if v[7] != 0.25 {
		t.Errorf("xp = %v, want 0.25", v[7])
	}
	if v[8] != 0.2 {
		t.Errorf("size = %v, want 0.2", v[8])
	}
	if v[9] != 0.5 {
		t.Errorf("pad = %v, want 0.5", v[9])
	}
}

func TestLessonFeaturesUnknownDomain(t *testing.T) {
	v := LessonFeatures(catalog.Lesson{Domain: catalog.Domain("klingon")})
	for i := 0; i < catalog.NumDomains; i++ {
		if v[i] != 0 {
			t.Errorf("v[%d] = %v, unknown domain must not one-hot", i, v[i])
		}
	}
}
