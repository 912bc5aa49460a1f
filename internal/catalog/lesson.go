package catalog

// Question is a single quiz question in the catalog.
type Question struct {
	ID         string
	ConceptID  string
	Difficulty Difficulty
	Prompt     string
	Choices    []string
	Answer     int // index into Choices
}

// ConceptVariant groups the three difficulty variants of one concept.
// The hard variant is the mastery gate: a concept counts as learned only
// once its hard question has been answered correctly.
type ConceptVariant struct {
	ConceptID string
	Name      string
	Group     string
	Domain    Domain

	EasyQuestionID   string
	MediumQuestionID string
	HardQuestionID   string
}

// QuestionID returns the variant's question id for a difficulty tier.
// Missing entries come back empty; callers degrade to the hard question.
func (c ConceptVariant) QuestionID(d Difficulty) string {
	switch d {
	case DifficultyBeginner:
		return c.EasyQuestionID
	case DifficultyIntermediate:
		return c.MediumQuestionID
	case DifficultyAdvanced:
		return c.HardQuestionID
	default:
		return ""
	}
}

// Lesson is a recommendable learning unit, one arm of the recommender.
type Lesson struct {
	ID            string
	CourseID      string
	Name          string
	Domain        Domain
	Difficulty    Difficulty
	EstimatedMins int
	XPReward      int

	// Concepts holds the concept variants driving the mastery quiz.
	// Empty for legacy lessons, which carry flat QuestionIDs instead.
	Concepts []ConceptVariant

	// QuestionIDs is the flat question list for legacy lessons without
	// concept variants. Each question is treated as its own hard-tier
	// concept by the quiz engine.
	QuestionIDs []string
}

// HasVariants reports whether the lesson exposes concept variants.
func (l Lesson) HasVariants() bool {
	return len(l.Concepts) > 0
}

// QuestionCount returns the number of questions a first pass serves:
// one hard question per concept, or the flat list length for legacy lessons.
func (l Lesson) QuestionCount() int {
	if l.HasVariants() {
		return len(l.Concepts)
	}
	return len(l.QuestionIDs)
}

// Course groups lessons for display ordering.
type Course struct {
	ID   string
	Name string
}
