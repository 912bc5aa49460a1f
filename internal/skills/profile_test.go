package skills

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/catalog"
)

var testTime = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func profileWith(d catalog.Domain, score float64) Profile {
	p := NewProfile()
	p.Scores[d] = score
	return p
}

func TestUpdateModerateAccuracyIntermediate(t *testing.T) {
	p := profileWith(catalog.DomainGrammar, 50)

	// (0.775 - 0.33) * 15 * 1.5 = 10.01..., clamped to +10.
	got := Update(p, catalog.DomainGrammar, 0.775, catalog.DifficultyIntermediate, testTime)
	if got.Score(catalog.DomainGrammar) != 60 {
		t.Errorf("score = %v, want 60", got.Score(catalog.DomainGrammar))
	}
}

func TestUpdatePerfectBeginner(t *testing.T) {
	p := profileWith(catalog.DomainVocabulary, 20)

	// (1.0 - 0.33) * 15 * 1.0 = 10.05, clamped to +10.
	got := Update(p, catalog.DomainVocabulary, 1.0, catalog.DifficultyBeginner, testTime)
	if got.Score(catalog.DomainVocabulary) != 30 {
		t.Errorf("score = %v, want 30", got.Score(catalog.DomainVocabulary))
	}
}

func TestUpdateFailureClampedAtMinusFive(t *testing.T) {
	p := profileWith(catalog.DomainListening, 50)

	// (0 - 0.33) * 15 * 2.0 = -9.9, clamped to -5.
	got := Update(p, catalog.DomainListening, 0, catalog.DifficultyAdvanced, testTime)
	if got.Score(catalog.DomainListening) != 45 {
		t.Errorf("score = %v, want 45", got.Score(catalog.DomainListening))
	}
}

func TestUpdateSmallChangeUnclamped(t *testing.T) {
	p := profileWith(catalog.DomainReading, 50)

	// (0.5 - 0.33) * 15 * 1.0 = 2.55.
	got := Update(p, catalog.DomainReading, 0.5, catalog.DifficultyBeginner, testTime)
	want := 52.55
	if math.Abs(got.Score(catalog.DomainReading)-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got.Score(catalog.DomainReading), want)
	}
}

func TestUpdateScoreBounds(t *testing.T) {
	high := profileWith(catalog.DomainVocabulary, 97)
	got := Update(high, catalog.DomainVocabulary, 1.0, catalog.DifficultyAdvanced, testTime)
	if got.Score(catalog.DomainVocabulary) != 100 {
		t.Errorf("score = %v, want capped at 100", got.Score(catalog.DomainVocabulary))
	}

	low := profileWith(catalog.DomainVocabulary, 2)
	got = Update(low, catalog.DomainVocabulary, 0, catalog.DifficultyAdvanced, testTime)
	if got.Score(catalog.DomainVocabulary) != 0 {
		t.Errorf("score = %v, want floored at 0", got.Score(catalog.DomainVocabulary))
	}
}

func TestUpdateOnlyNamedDomainChanges(t *testing.T) {
	p := NewProfile()
	p.Scores[catalog.DomainGrammar] = 40
	p.Scores[catalog.DomainReading] = 60

	got := Update(p, catalog.DomainGrammar, 1.0, catalog.DifficultyBeginner, testTime)
	if got.Score(catalog.DomainReading) != 60 {
		t.Errorf("reading = %v, must not move", got.Score(catalog.DomainReading))
	}
	// Input profile untouched.
	if p.Score(catalog.DomainGrammar) != 40 {
		t.Errorf("input profile mutated: %v", p.Score(catalog.DomainGrammar))
	}
	if !got.UpdatedAt.Equal(testTime) {
		t.Errorf("updated at = %v", got.UpdatedAt)
	}
}

func TestVectorOrder(t *testing.T) {
	p := NewProfile()
	p.Scores[catalog.DomainConversation] = 11
	p.Scores[catalog.DomainVocabulary] = 99

	v := p.Vector()
	if v[0] != 99 {
		t.Errorf("v[0] = %v, want vocabulary 99", v[0])
	}
	if v[4] != 11 {
		t.Errorf("v[4] = %v, want conversation 11", v[4])
	}
	if v[1] != 0 || v[2] != 0 || v[3] != 0 {
		t.Errorf("unset domains = %v, want zeros", v)
	}
}
