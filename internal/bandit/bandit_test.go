package bandit

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/feature"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeReward(t *testing.T) {
	tests := []struct {
		name string
		o    LessonOutcome
		want float64
	}{
		{
			name: "accuracy plus completion",
			o:    LessonOutcome{Accuracy: 0.6, Completed: true, CompletionSecs: 300, ExpectedSecs: 300},
			want: 0.7,
		},
		{
			name: "abandonment penalty",
			o:    LessonOutcome{Accuracy: 0.6, Completed: false, CompletionSecs: 300, ExpectedSecs: 300},
			want: 0.4,
		},
		{
			name: "fast and accurate bonus",
			o:    LessonOutcome{Accuracy: 0.8, Completed: true, CompletionSecs: 100, ExpectedSecs: 300},
			want: 1.0,
		},
		{
			name: "fast but inaccurate gets no bonus",
			o:    LessonOutcome{Accuracy: 0.5, Completed: true, CompletionSecs: 100, ExpectedSecs: 300},
			want: 0.6,
		},
		{
			name: "overtime penalty",
			o:    LessonOutcome{Accuracy: 0.9, Completed: true, CompletionSecs: 700, ExpectedSecs: 300},
			want: 0.9,
		},
		{
			name: "low rating drags reward down",
			o:    LessonOutcome{Accuracy: 0.9, Completed: true, CompletionSecs: 300, ExpectedSecs: 300, Rating: 1},
			want: 0.8,
		},
		{
			name: "high rating lifts reward",
			o:    LessonOutcome{Accuracy: 0.5, Completed: true, CompletionSecs: 300, ExpectedSecs: 300, Rating: 5},
			want: 0.8,
		},
		{
			name: "clamped at zero",
			o:    LessonOutcome{Accuracy: 0.0, Completed: false, CompletionSecs: 700, ExpectedSecs: 300, Rating: 1},
			want: 0.0,
		},
		{
			name: "clamped at one",
			o:    LessonOutcome{Accuracy: 1.0, Completed: true, CompletionSecs: 100, ExpectedSecs: 300, Rating: 5},
			want: 1.0,
		},
		{
			name: "zero expected time skips pace adjustments",
			o:    LessonOutcome{Accuracy: 0.5, Completed: true, CompletionSecs: 100, ExpectedSecs: 0},
			want: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeReward(tt.o)
			if !almostEqual(got, tt.want) {
				t.Errorf("ComputeReward(%+v) = %v, want %v", tt.o, got, tt.want)
			}
		})
	}
}

func TestNewLessonParamsOptimisticSeed(t *testing.T) {
	p := NewLessonParams("l1")
	if p.AverageReward != OptimisticSeed {
		t.Errorf("average = %v, want %v", p.AverageReward, OptimisticSeed)
	}
	if p.PullCount != 0 || p.RewardSum != 0 {
		t.Errorf("fresh params carry history: %+v", p)
	}
	if len(p.Theta) != feature.Dim {
		t.Errorf("theta dim = %d, want %d", len(p.Theta), feature.Dim)
	}
}

func TestUpdateParamsFirstPull(t *testing.T) {
	x := []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	p := UpdateParams(NewLessonParams("l1"), x, 0.8)

	if p.PullCount != 1 {
		t.Fatalf("pulls = %d, want 1", p.PullCount)
	}
	if !almostEqual(p.AverageReward, 0.8) {
		t.Errorf("average = %v, want observed reward 0.8", p.AverageReward)
	}
	// lr = 1/sqrt(1) = 1, prediction = 0, so theta[0] = reward * x[0].
	if !almostEqual(p.Theta[0], 0.8) {
		t.Errorf("theta[0] = %v, want 0.8", p.Theta[0])
	}
	for i := 1; i < len(p.Theta); i++ {
		if p.Theta[i] != 0 {
			t.Errorf("theta[%d] = %v, want 0 for zero feature", i, p.Theta[i])
		}
	}
	want := math.Sqrt(math.Log(2) / 2)
	if !almostEqual(p.Confidence, want) {
		t.Errorf("confidence = %v, want %v", p.Confidence, want)
	}
}

func TestUpdateParamsLearningRateDecays(t *testing.T) {
	x := []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	p := NewLessonParams("l1")

	p = UpdateParams(p, x, 1.0)
	first := p.Theta[0]
	p = UpdateParams(p, x, 1.0)
	second := p.Theta[0] - first

	if second >= first {
		t.Errorf("second step %v not smaller than first %v", second, first)
	}

	prevConf := math.Inf(1)
	for i := 0; i < 10; i++ {
		p = UpdateParams(p, x, 0.5)
		if p.Confidence >= prevConf {
			t.Fatalf("confidence did not shrink at pull %d: %v", p.PullCount, p.Confidence)
		}
		prevConf = p.Confidence
	}
}

func TestUpdateParamsShortFeatureVector(t *testing.T) {
	p := UpdateParams(NewLessonParams("l1"), []float64{1, 1}, 0.6)
	for i := 2; i < len(p.Theta); i++ {
		if p.Theta[i] != 0 {
			t.Errorf("theta[%d] = %v, short vector should act zero-padded", i, p.Theta[i])
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	x := []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	s0 := NewState()
	s1 := Apply(s0, "l1", x, 0.9, now)

	if s0.TotalPulls != 0 || len(s0.Lessons) != 0 {
		t.Errorf("input state mutated: %+v", s0)
	}
	if s1.TotalPulls != 1 {
		t.Errorf("total pulls = %d, want 1", s1.TotalPulls)
	}
	if s1.Params("l1").PullCount != 1 {
		t.Errorf("arm pulls = %d, want 1", s1.Params("l1").PullCount)
	}
	if !s1.UpdatedAt.Equal(now) {
		t.Errorf("updated at = %v, want %v", s1.UpdatedAt, now)
	}

	s2 := Apply(s1, "l2", x, 0.3, now)
	if s2.TotalPulls != 2 {
		t.Errorf("total pulls = %d, want 2 after two lessons", s2.TotalPulls)
	}
	if s1.TotalPulls != 1 {
		t.Error("earlier state mutated by later apply")
	}
}

func TestParamsForUnseenLessonIsFresh(t *testing.T) {
	s := NewState()
	p := s.Params("never-played")
	if p.AverageReward != OptimisticSeed || p.PullCount != 0 {
		t.Errorf("unseen params = %+v", p)
	}
	if len(s.Lessons) != 0 {
		t.Error("Params must not store anything")
	}
}

func TestDot(t *testing.T) {
	if got := Dot([]float64{1, 2, 3}, []float64{4, 5, 6}); got != 32 {
		t.Errorf("dot = %v, want 32", got)
	}
	if got := Dot([]float64{1, 2, 3}, []float64{2}); got != 2 {
		t.Errorf("mismatched dot = %v, want 2", got)
	}
	if got := Dot(nil, []float64{1}); got != 0 {
		t.Errorf("nil dot = %v, want 0", got)
	}
}
