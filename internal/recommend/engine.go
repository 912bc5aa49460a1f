// Package recommend ranks candidate lessons for a learner using the bandit
// state plus domain and difficulty heuristics. Scoring is fully
// deterministic: identical inputs always produce identical rankings.
package recommend

import (
	"math"
	"sort"

	"github.com/abhisek/lingua/internal/bandit"
	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/feature"
)

// Recommendation is one ranked lesson with its score and a short
// human-readable reason.
type Recommendation struct {
	LessonID string
	CourseID string
	Score    float64
	Reason   string
}

// coldStartPulls is the pull count below which a lesson is scored with the
// optimistic cold-start formula instead of the learned model.
const coldStartPulls = 3

// Alpha returns the exploration coefficient for a given total pull count.
// It starts at 2.5, decays by 1% per pull, and never drops below 0.5.
func Alpha(totalPulls int64) float64 {
	a := 2.5 * math.Pow(0.99, float64(totalPulls))
	if a < 0.5 {
		return 0.5
	}
	return a
}

// Recommend ranks the candidate lessons and returns the top n. Ties are
// broken by catalog order via stable sort.
func Recommend(ctx feature.Context, st bandit.State, candidates []catalog.Lesson, n int) []Recommendation {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	alpha := Alpha(st.TotalPulls)
	ctxFeatures := feature.ContextFeatures(ctx)

	recs := make([]Recommendation, 0, len(candidates))
	for _, l := range candidates {
		params := st.Params(l.ID)

		score := ucbScore(params, ctxFeatures, alpha)
		score += weaknessBonus(ctx, l.Domain)
		score += difficultyBonus(ctx, l)

		recs = append(recs, Recommendation{
			LessonID: l.ID,
			CourseID: l.CourseID,
			Score:    score,
			Reason:   reasonFor(ctx, l),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > n {
		recs = recs[:n]
	}
	return recs
}

// ucbScore computes the upper-confidence-bound score for one arm.
// Under-sampled arms get a deliberately optimistic cold-start score so they
// surface quickly; sampled arms average the linear model's prediction with
// the running mean reward, then add an uncertainty bonus.
func ucbScore(p bandit.LessonParams, ctxFeatures []float64, alpha float64) float64 {
	if p.PullCount < coldStartPulls {
		return 0.7 + alpha/float64(p.PullCount+1)
	}

	predicted := (bandit.Dot(p.Theta, ctxFeatures) + p.AverageReward) / 2
	if predicted < 0 {
		predicted = 0
	}
	if predicted > 1 {
		predicted = 1
	}

	n := float64(p.PullCount)
	return predicted + alpha*math.Sqrt(math.Log(n+1)/(n+1))
}

// weaknessBonus nudges scores toward the learner's weaker domains.
// Range [0, 0.2].
func weaknessBonus(ctx feature.Context, d catalog.Domain) float64 {
	return (100 - skillFor(ctx, d)) / 500
}

// difficultyBonus rewards lessons whose tier sits near a blend of the
// skill-derived ideal tier and the learner's stated preference.
// Range roughly [-0.1, 0.1].
func difficultyBonus(ctx feature.Context, l catalog.Lesson) float64 {
	skill := skillFor(ctx, l.Domain)

	ideal := catalog.DifficultyAdvanced
	switch {
	case skill < 40:
		ideal = catalog.DifficultyBeginner
	case skill < 70:
		ideal = catalog.DifficultyIntermediate
	}

	target := 0.6*float64(ideal) + 0.4*float64(ctx.Preferred)
	return 0.1 - 0.05*math.Abs(float64(l.Difficulty)-target)
}

// reasonFor picks the explanation string by priority: weak domain, then
// mid-level growth, then challenge, then streak, then a generic fallback.
func reasonFor(ctx feature.Context, l catalog.Lesson) string {
	skill := skillFor(ctx, l.Domain)

	switch {
	case skill < 40:
		return "Build fundamentals in " + catalog.DomainDisplayName(l.Domain)
	case skill < 70:
		return "Level up your " + catalog.DomainDisplayName(l.Domain)
	case l.Difficulty == catalog.DifficultyAdvanced:
		return "Ready for a challenge"
	case ctx.StreakDays >= 3:
		return "Keep your streak going"
	default:
		return "Recommended for you"
	}
}

func skillFor(ctx feature.Context, d catalog.Domain) float64 {
	if i := catalog.DomainIndex(d); i >= 0 {
		return ctx.SkillScores[i]
	}
	return 0
}
