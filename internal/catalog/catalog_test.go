package catalog

import (
	"strings"
	"testing"
)

func TestSeedCatalogLoads(t *testing.T) {
	lessons := AllLessons()
	if len(lessons) == 0 {
		t.Fatal("seed catalog has no lessons")
	}
	courses := AllCourses()
	if len(courses) != 2 {
		t.Errorf("courses = %d, want 2", len(courses))
	}
	for _, l := range lessons {
		if DomainIndex(l.Domain) < 0 {
			t.Errorf("lesson %s has unknown domain %q", l.ID, l.Domain)
		}
		if l.XPReward <= 0 || l.EstimatedMins <= 0 {
			t.Errorf("lesson %s missing reward or length", l.ID)
		}
	}
}

func TestGetLesson(t *testing.T) {
	l, err := GetLesson("es-vocab-greetings")
	if err != nil {
		t.Fatalf("GetLesson: %v", err)
	}
	if l.Name != "Greetings" || l.Domain != DomainVocabulary {
		t.Errorf("unexpected lesson: %+v", l)
	}
	if !l.HasVariants() || l.QuestionCount() != 2 {
		t.Errorf("greetings should have 2 concept variants, got %d", l.QuestionCount())
	}

	if _, err := GetLesson("nope"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestGetQuestion(t *testing.T) {
	q, err := GetQuestion("q-greet-hello-h")
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if q.ConceptID != "greet-hello" || q.Difficulty != DifficultyAdvanced {
		t.Errorf("unexpected question: %+v", q)
	}
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		t.Errorf("answer index %d out of range", q.Answer)
	}

	if _, err := GetQuestion("q-missing"); err == nil {
		t.Error("expected error for unknown question")
	}
}

func TestConceptVariantQuestionID(t *testing.T) {
	l, _ := GetLesson("es-listen-numbers")
	var tens ConceptVariant
	for _, c := range l.Concepts {
		if c.ConceptID == "listen-tens" {
			tens = c
		}
	}
	if tens.ConceptID == "" {
		t.Fatal("listen-tens concept not found")
	}
	if got := tens.QuestionID(DifficultyBeginner); got != "" {
		t.Errorf("easy variant = %q, want empty", got)
	}
	if got := tens.QuestionID(DifficultyAdvanced); got != "q-num-tens-h" {
		t.Errorf("hard variant = %q", got)
	}
	if got := tens.QuestionID(Difficulty(99)); got != "" {
		t.Errorf("bogus tier variant = %q, want empty", got)
	}
}

func TestLegacyLesson(t *testing.T) {
	l, err := GetLesson("es-vocab-colors")
	if err != nil {
		t.Fatalf("GetLesson: %v", err)
	}
	if l.HasVariants() {
		t.Error("legacy lesson should have no concept variants")
	}
	if l.QuestionCount() != 3 {
		t.Errorf("question count = %d, want 3", l.QuestionCount())
	}
}

func TestByCourseAndDomain(t *testing.T) {
	found := ByCourse("es-foundations")
	if len(found) != 4 {
		t.Errorf("es-foundations lessons = %d, want 4", len(found))
	}
	for _, l := range found {
		if l.CourseID != "es-foundations" {
			t.Errorf("lesson %s in wrong course %s", l.ID, l.CourseID)
		}
	}

	vocab := ByDomain(DomainVocabulary)
	if len(vocab) != 2 {
		t.Errorf("vocabulary lessons = %d, want 2", len(vocab))
	}

	if got := ByCourse("nope"); len(got) != 0 {
		t.Errorf("unknown course returned %d lessons", len(got))
	}
}

func TestLessonOrder(t *testing.T) {
	lessons := AllLessons()
	for i, l := range lessons {
		if got := LessonOrder(l.ID); got != i {
			t.Errorf("order of %s = %d, want %d", l.ID, got, i)
		}
	}
	if got := LessonOrder("nope"); got != len(lessons) {
		t.Errorf("unknown lesson order = %d, want %d", got, len(lessons))
	}
}

func TestCandidates(t *testing.T) {
	all := AllLessons()

	got := Candidates(nil)
	if len(got) != len(all) {
		t.Errorf("nil completed gave %d candidates, want %d", len(got), len(all))
	}

	completed := map[string]bool{
		"es-vocab-greetings": true,
		"not-in-catalog":     true,
	}
	got = Candidates(completed)
	if len(got) != len(all)-1 {
		t.Fatalf("candidates = %d, want %d", len(got), len(all)-1)
	}
	for _, l := range got {
		if l.ID == "es-vocab-greetings" {
			t.Error("completed lesson still a candidate")
		}
	}
}

func TestValidateCatalogRejectsBadData(t *testing.T) {
	courses := []Course{{ID: "c1", Name: "Course"}}
	goodQ := Question{ID: "q1", Difficulty: DifficultyAdvanced,
		Prompt: "?", Choices: []string{"a", "b"}, Answer: 0}

	cases := []struct {
		name      string
		courses   []Course
		lessons   []Lesson
		questions []Question
		wantErr   string
	}{
		{
			name:      "duplicate course",
			courses:   []Course{{ID: "c1"}, {ID: "c1"}},
			wantErr:   "duplicate course",
			questions: []Question{goodQ},
		},
		{
			name:      "duplicate question",
			courses:   courses,
			questions: []Question{goodQ, goodQ},
			wantErr:   "duplicate question",
		},
		{
			name:    "answer out of range",
			courses: courses,
			questions: []Question{{ID: "q1", Prompt: "?",
				Choices: []string{"a"}, Answer: 3}},
			wantErr: "out of range",
		},
		{
			name:      "lesson with unknown course",
			courses:   courses,
			questions: []Question{goodQ},
			lessons: []Lesson{{ID: "l1", CourseID: "ghost",
				Domain: DomainVocabulary, QuestionIDs: []string{"q1"}}},
			wantErr: "nonexistent course",
		},
		{
			name:      "lesson with unknown domain",
			courses:   courses,
			questions: []Question{goodQ},
			lessons: []Lesson{{ID: "l1", CourseID: "c1",
				Domain: "juggling", QuestionIDs: []string{"q1"}}},
			wantErr: "unknown domain",
		},
		{
			name:      "empty lesson",
			courses:   courses,
			questions: []Question{goodQ},
			lessons: []Lesson{{ID: "l1", CourseID: "c1",
				Domain: DomainVocabulary}},
			wantErr: "neither concepts nor questions",
		},
		{
			name:      "concept missing hard question",
			courses:   courses,
			questions: []Question{goodQ},
			lessons: []Lesson{{ID: "l1", CourseID: "c1", Domain: DomainVocabulary,
				Concepts: []ConceptVariant{{ConceptID: "k1", EasyQuestionID: "q1"}}}},
			wantErr: "no hard question",
		},
		{
			name:      "concept with dangling question ref",
			courses:   courses,
			questions: []Question{goodQ},
			lessons: []Lesson{{ID: "l1", CourseID: "c1", Domain: DomainVocabulary,
				Concepts: []ConceptVariant{{ConceptID: "k1", HardQuestionID: "q-ghost"}}}},
			wantErr: "nonexistent question",
		},
		{
			name:      "legacy lesson with dangling question ref",
			courses:   courses,
			questions: []Question{goodQ},
			lessons: []Lesson{{ID: "l1", CourseID: "c1", Domain: DomainVocabulary,
				QuestionIDs: []string{"q-ghost"}}},
			wantErr: "nonexistent question",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCatalog(tc.courses, tc.lessons, tc.questions)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCatalogAcceptsGoodData(t *testing.T) {
	courses := []Course{{ID: "c1", Name: "Course"}}
	questions := []Question{
		{ID: "q1", Difficulty: DifficultyAdvanced, Prompt: "?", Choices: []string{"a", "b"}, Answer: 1},
	}
	lessons := []Lesson{{ID: "l1", CourseID: "c1", Domain: DomainVocabulary,
		Concepts: []ConceptVariant{{ConceptID: "k1", HardQuestionID: "q1"}}}}

	if err := validateCatalog(courses, lessons, questions); err != nil {
		t.Errorf("valid catalog rejected: %v", err)
	}
}
