package catalog

import "fmt"

// index holds the catalog with precomputed lookups.
type index struct {
	courses   []Course
	lessons   []Lesson
	questions []Question

	lessonByID   map[string]*Lesson
	questionByID map[string]*Question
	byCourse     map[string][]Lesson
	byDomain     map[Domain][]Lesson
	lessonOrder  map[string]int
}

// idx is the package-level catalog singleton, set by init() in seed.go.
var idx *index

func buildIndex(courses []Course, lessons []Lesson, questions []Question) (*index, error) {
	if err := validateCatalog(courses, lessons, questions); err != nil {
		return nil, err
	}

	ix := &index{
		courses:      courses,
		lessons:      lessons,
		questions:    questions,
		lessonByID:   make(map[string]*Lesson, len(lessons)),
		questionByID: make(map[string]*Question, len(questions)),
		byCourse:     make(map[string][]Lesson),
		byDomain:     make(map[Domain][]Lesson),
		lessonOrder:  make(map[string]int, len(lessons)),
	}

	for i := range ix.lessons {
		l := &ix.lessons[i]
		ix.lessonByID[l.ID] = l
		ix.byCourse[l.CourseID] = append(ix.byCourse[l.CourseID], *l)
		ix.byDomain[l.Domain] = append(ix.byDomain[l.Domain], *l)
		ix.lessonOrder[l.ID] = i
	}
	for i := range ix.questions {
		ix.questionByID[ix.questions[i].ID] = &ix.questions[i]
	}

	return ix, nil
}

// AllLessons returns every lesson in catalog order.
func AllLessons() []Lesson {
	out := make([]Lesson, len(idx.lessons))
	copy(out, idx.lessons)
	return out
}

// AllCourses returns every course in catalog order.
func AllCourses() []Course {
	out := make([]Course, len(idx.courses))
	copy(out, idx.courses)
	return out
}

// GetLesson returns the lesson with the given id.
func GetLesson(id string) (Lesson, error) {
	l, ok := idx.lessonByID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("unknown lesson: %q", id)
	}
	return *l, nil
}

// GetQuestion returns the question with the given id.
func GetQuestion(id string) (Question, error) {
	q, ok := idx.questionByID[id]
	if !ok {
		return Question{}, fmt.Errorf("unknown question: %q", id)
	}
	return *q, nil
}

// ByCourse returns lessons belonging to a course, in catalog order.
func ByCourse(courseID string) []Lesson {
	return append([]Lesson(nil), idx.byCourse[courseID]...)
}

// ByDomain returns lessons belonging to a domain, in catalog order.
func ByDomain(d Domain) []Lesson {
	return append([]Lesson(nil), idx.byDomain[d]...)
}

// LessonOrder returns a lesson's position in catalog order. Used as the
// deterministic tiebreaker when recommendation scores are equal.
func LessonOrder(id string) int {
	if pos, ok := idx.lessonOrder[id]; ok {
		return pos
	}
	return len(idx.lessons)
}

// Candidates returns lessons not yet completed, in catalog order.
// Lesson ids present in completed but absent from the catalog are ignored.
func Candidates(completed map[string]bool) []Lesson {
	var out []Lesson
	for _, l := range idx.lessons {
		if completed[l.ID] {
			continue
		}
		out = append(out, l)
	}
	return out
}
