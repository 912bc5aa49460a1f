// Package skills tracks a learner's per-domain skill profile. The profile
// feeds the recommendation context; it is independent of the bandit.
package skills

import (
	"time"

	"github.com/abhisek/lingua/internal/catalog"
)

// Profile holds one learner's skill scores, 0-100 per domain.
type Profile struct {
	Scores    map[catalog.Domain]float64
	UpdatedAt time.Time
}

// NewProfile returns an empty profile. Unseen domains score zero, which
// surfaces them as weak in the recommendation context.
func NewProfile() Profile {
	return Profile{Scores: make(map[catalog.Domain]float64)}
}

// Score returns the skill score for a domain, zero if never practiced.
func (p Profile) Score(d catalog.Domain) float64 {
	return p.Scores[d]
}

// Vector returns the scores in catalog.AllDomains order.
func (p Profile) Vector() [catalog.NumDomains]float64 {
	var v [catalog.NumDomains]float64
	for i, d := range catalog.AllDomains() {
		v[i] = p.Scores[d]
	}
	return v
}

// difficultyMultiplier scales skill movement by how hard the lesson was.
func difficultyMultiplier(d catalog.Difficulty) float64 {
	switch d {
	case catalog.DifficultyIntermediate:
		return 1.5
	case catalog.DifficultyAdvanced:
		return 2.0
	default:
		return 1.0
	}
}

// Update returns a new profile with one quiz outcome folded into the named
// domain. The change is (accuracy - 0.33) * 15 * multiplier, clamped to
// [-5, 10]; the resulting score is clamped to [0, 100]. Other domains are
// untouched.
func Update(p Profile, domain catalog.Domain, accuracy float64, difficulty catalog.Difficulty, now time.Time) Profile {
	change := (accuracy - 0.33) * 15 * difficultyMultiplier(difficulty)
	if change < -5 {
		change = -5
	}
	if change > 10 {
		change = 10
	}

	out := Profile{
		Scores:    make(map[catalog.Domain]float64, len(p.Scores)+1),
		UpdatedAt: now,
	}
	for d, s := range p.Scores {
		out.Scores[d] = s
	}

	score := out.Scores[domain] + change
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	out.Scores[domain] = score

	return out
}
