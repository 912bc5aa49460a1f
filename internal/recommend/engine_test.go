package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/bandit"
	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/feature"
)

func TestAlpha(t *testing.T) {
	if got := Alpha(0); got != 2.5 {
		t.Errorf("Alpha(0) = %v, want 2.5", got)
	}
	if got := Alpha(1); math.Abs(got-2.475) > 1e-9 {
		t.Errorf("Alpha(1) = %v, want 2.475", got)
	}
	// Monotone decay.
	prev := Alpha(0)
	for n := int64(1); n < 300; n += 10 {
		a := Alpha(n)
		if a > prev {
			t.Fatalf("Alpha(%d) = %v rose above %v", n, a, prev)
		}
		prev = a
	}
	// Floor.
	if got := Alpha(10000); got != 0.5 {
		t.Errorf("Alpha(10000) = %v, want floor 0.5", got)
	}
}

func TestColdStartScore(t *testing.T) {
	// Fresh arm, no pulls anywhere: 0.7 + 2.5/1 = 3.2.
	got := ucbScore(bandit.NewLessonParams("l1"), nil, Alpha(0))
	if math.Abs(got-3.2) > 1e-9 {
		t.Errorf("cold-start score = %v, want 3.2", got)
	}

	// Cold-start optimism fades with the arm's own pulls.
	p := bandit.NewLessonParams("l1")
	p.PullCount = 2
	got2 := ucbScore(p, nil, Alpha(0))
	if math.Abs(got2-(0.7+2.5/3)) > 1e-9 {
		t.Errorf("cold-start score at 2 pulls = %v, want %v", got2, 0.7+2.5/3)
	}
	if got2 >= got {
		t.Error("optimism should shrink as the arm is pulled")
	}
}

func TestSampledScoreUsesModelAndUncertainty(t *testing.T) {
	x := []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	p := bandit.NewLessonParams("l1")
	for i := 0; i < 5; i++ {
		p = bandit.UpdateParams(p, x, 0.8)
	}

	alpha := 1.0
	got := ucbScore(p, x, alpha)

	predicted := (bandit.Dot(p.Theta, x) + p.AverageReward) / 2
	want := predicted + alpha*math.Sqrt(math.Log(6)/6)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestSampledPredictionClamped(t *testing.T) {
	p := bandit.NewLessonParams("l1")
	p.PullCount = 10
	p.AverageReward = 5 // corrupt state, prediction must still clamp
	p.Theta = []float64{10}

	got := ucbScore(p, []float64{1}, 0)
	if got > 1 {
		t.Errorf("clamped score = %v, want <= 1", got)
	}
}

func TestWeaknessBonus(t *testing.T) {
	var ctx feature.Context
	ctx.SkillScores[catalog.DomainIndex(catalog.DomainGrammar)] = 100
	ctx.SkillScores[catalog.DomainIndex(catalog.DomainReading)] = 50

	if got := weaknessBonus(ctx, catalog.DomainGrammar); got != 0 {
		t.Errorf("mastered domain bonus = %v, want 0", got)
	}
	if got := weaknessBonus(ctx, catalog.DomainReading); got != 0.1 {
		t.Errorf("half-skill bonus = %v, want 0.1", got)
	}
	if got := weaknessBonus(ctx, catalog.DomainListening); got != 0.2 {
		t.Errorf("untouched domain bonus = %v, want 0.2", got)
	}
}

func TestDifficultyBonus(t *testing.T) {
	var ctx feature.Context
	ctx.Preferred = catalog.DifficultyBeginner
	ctx.SkillScores[catalog.DomainIndex(catalog.DomainVocabulary)] = 20

	// Ideal beginner, preferred beginner: target 1.0, perfect match.
	l := catalog.Lesson{Domain: catalog.DomainVocabulary, Difficulty: catalog.DifficultyBeginner}
	if got := difficultyBonus(ctx, l); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("matched bonus = %v, want 0.1", got)
	}

	// An advanced lesson for the same weak learner sits two tiers off.
	l.Difficulty = catalog.DifficultyAdvanced
	if got := difficultyBonus(ctx, l); math.Abs(got-0.0) > 1e-9 {
		t.Errorf("mismatched bonus = %v, want 0.0", got)
	}

	// Strong skill pulls the ideal tier up.
	ctx.SkillScores[catalog.DomainIndex(catalog.DomainVocabulary)] = 85
	ctx.Preferred = catalog.DifficultyAdvanced
	if got := difficultyBonus(ctx, l); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("advanced-for-strong bonus = %v, want 0.1", got)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	ctx := feature.Context{TimeOfDay: feature.BucketMorning}
	st := bandit.NewState()
	candidates := catalog.AllLessons()

	a := Recommend(ctx, st, candidates, 3)
	b := Recommend(ctx, st, candidates, 3)

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("lengths = %d/%d, want 3", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("rank %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRecommendPrefersWeakDomains(t *testing.T) {
	var ctx feature.Context
	for i := range ctx.SkillScores {
		ctx.SkillScores[i] = 90
	}
	ctx.SkillScores[catalog.DomainIndex(catalog.DomainListening)] = 5

	// Warm up every arm past cold start so heuristics decide.
	now := time.Now()
	st := bandit.NewState()
	feats := feature.ContextFeatures(ctx)
	for _, l := range catalog.AllLessons() {
		for i := 0; i < 3; i++ {
			st = bandit.Apply(st, l.ID, feats, 0.5, now)
		}
	}

	recs := Recommend(ctx, st, catalog.AllLessons(), 1)
	if len(recs) != 1 {
		t.Fatal("no recommendation")
	}
	top, err := catalog.GetLesson(recs[0].LessonID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if top.Domain != catalog.DomainListening {
		t.Errorf("top domain = %s, want weak listening domain", top.Domain)
	}
}

func TestRecommendColdStartFavorsUntriedArm(t *testing.T) {
	ctx := feature.Context{}
	now := time.Now()
	st := bandit.NewState()
	feats := feature.ContextFeatures(ctx)

	lessons := catalog.AllLessons()
	// Pull every arm except the first well past cold start.
	for _, l := range lessons[1:] {
		for i := 0; i < 5; i++ {
			st = bandit.Apply(st, l.ID, feats, 1.0, now)
		}
	}

	recs := Recommend(ctx, st, lessons, 1)
	if recs[0].LessonID != lessons[0].ID {
		t.Errorf("top = %s, want untried %s", recs[0].LessonID, lessons[0].ID)
	}
}

func TestRecommendTopN(t *testing.T) {
	ctx := feature.Context{}
	st := bandit.NewState()

	if got := Recommend(ctx, st, catalog.AllLessons(), 0); got != nil {
		t.Errorf("n=0 returned %v", got)
	}
	if got := Recommend(ctx, st, nil, 3); got != nil {
		t.Errorf("no candidates returned %v", got)
	}
	all := Recommend(ctx, st, catalog.AllLessons(), 100)
	if len(all) != len(catalog.AllLessons()) {
		t.Errorf("oversized n returned %d recs", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Score > all[i-1].Score {
			t.Errorf("scores not descending at %d: %v > %v", i, all[i].Score, all[i-1].Score)
		}
	}
}

func TestReasonPriorities(t *testing.T) {
	lesson := catalog.Lesson{Domain: catalog.DomainGrammar, Difficulty: catalog.DifficultyAdvanced}
	gi := catalog.DomainIndex(catalog.DomainGrammar)

	var ctx feature.Context
	ctx.SkillScores[gi] = 10
	if got := reasonFor(ctx, lesson); got != "Build fundamentals in Grammar" {
		t.Errorf("weak reason = %q", got)
	}

	ctx.SkillScores[gi] = 55
	if got := reasonFor(ctx, lesson); got != "Level up your Grammar" {
		t.Errorf("mid reason = %q", got)
	}

	ctx.SkillScores[gi] = 90
	if got := reasonFor(ctx, lesson); got != "Ready for a challenge" {
		t.Errorf("challenge reason = %q", got)
	}

	easy := catalog.Lesson{Domain: catalog.DomainGrammar, Difficulty: catalog.DifficultyBeginner}
	ctx.StreakDays = 5
	if got := reasonFor(ctx, easy); got != "Keep your streak going" {
		t.Errorf("streak reason = %q", got)
	}

	ctx.StreakDays = 0
	if got := reasonFor(ctx, easy); got != "Recommended for you" {
		t.Errorf("fallback reason = %q", got)
	}
}
