package catalog

// Domain represents a language learning domain.
type Domain string

const (
	DomainVocabulary   Domain = "vocabulary"
	DomainGrammar      Domain = "grammar"
	DomainListening    Domain = "listening"
	DomainReading      Domain = "reading"
	DomainConversation Domain = "conversation"
)

// AllDomains returns all domains in canonical order. This order defines the
// layout of skill vectors and one-hot lesson features, so it must not change
// between releases without a snapshot migration.
func AllDomains() []Domain {
	return []Domain{
		DomainVocabulary,
		DomainGrammar,
		DomainListening,
		DomainReading,
		DomainConversation,
	}
}

// NumDomains is the number of learning domains.
const NumDomains = 5

// DomainIndex returns the canonical index of a domain, or -1 if unknown.
func DomainIndex(d Domain) int {
	for i, dom := range AllDomains() {
		if dom == d {
			return i
		}
	}
	return -1
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainVocabulary:
		return "Vocabulary"
	case DomainGrammar:
		return "Grammar"
	case DomainListening:
		return "Listening"
	case DomainReading:
		return "Reading"
	case DomainConversation:
		return "Conversation"
	default:
		return string(d)
	}
}

// Difficulty represents a lesson or question difficulty tier.
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
)

// Weight returns the normalized feature weight for a difficulty tier.
func (d Difficulty) Weight() float64 {
	switch d {
	case DifficultyBeginner:
		return 0.33
	case DifficultyIntermediate:
		return 0.66
	case DifficultyAdvanced:
		return 1.0
	default:
		return 0
	}
}

// Label returns the display label for a difficulty tier.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}
