package quiz

import (
	"testing"

	"github.com/abhisek/lingua/internal/catalog"
)

func variantLesson(concepts ...catalog.ConceptVariant) catalog.Lesson {
	return catalog.Lesson{
		ID:       "l-test",
		CourseID: "c-test",
		Name:     "Test Lesson",
		Domain:   catalog.DomainVocabulary,
		Concepts: concepts,
	}
}

func concept(id string) catalog.ConceptVariant {
	return catalog.ConceptVariant{
		ConceptID:        id,
		Name:             id,
		Domain:           catalog.DomainVocabulary,
		EasyQuestionID:   id + "-e",
		MediumQuestionID: id + "-m",
		HardQuestionID:   id + "-h",
	}
}

func mustEngine(t *testing.T, l catalog.Lesson) *Engine {
	t.Helper()
	e, err := NewEngine(l)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func answer(t *testing.T, e *Engine, correct bool) Feedback {
	t.Helper()
	fb, err := e.Submit(correct)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return fb
}

func TestSeedsOneHardQuestionPerConcept(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a"), concept("b"), concept("c")))

	want := []string{"a-h", "b-h", "c-h"}
	for i, id := range want {
		q, ok := e.Current()
		if !ok {
			t.Fatalf("queue exhausted at %d", i)
		}
		if q.QuestionID != id {
			t.Errorf("question %d = %s, want %s", i, q.QuestionID, id)
		}
		if q.Difficulty != catalog.DifficultyAdvanced {
			t.Errorf("question %d difficulty = %v, want advanced", i, q.Difficulty)
		}
		if !q.InitialHardTest {
			t.Errorf("question %d not marked as initial hard test", i)
		}
		answer(t, e, true)
	}
	if !e.Completed() {
		t.Error("session not complete after all initial questions")
	}
}

func TestInitialHardPassMastersWithFullCredit(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))

	fb := answer(t, e, true)
	if !fb.Mastered {
		t.Error("hard pass did not master the concept")
	}
	if !fb.Done {
		t.Error("session should be done")
	}
	if got := e.CreditRatio(); got != 1.0 {
		t.Errorf("CreditRatio = %v, want 1.0", got)
	}
	if !e.AllMastered() {
		t.Error("AllMastered = false")
	}
}

func TestFailureAppendsCascade(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))

	fb := answer(t, e, false)
	if !fb.CascadeStarted {
		t.Fatal("cascade not started after hard failure")
	}
	if fb.Done {
		t.Error("session ended despite pending cascade")
	}

	wantIDs := []string{"a-e", "a-m", "a-h"}
	wantDiff := []catalog.Difficulty{
		catalog.DifficultyBeginner,
		catalog.DifficultyIntermediate,
		catalog.DifficultyAdvanced,
	}
	for i, id := range wantIDs {
		q, ok := e.Current()
		if !ok {
			t.Fatalf("queue exhausted at cascade slot %d", i)
		}
		if q.QuestionID != id || q.Difficulty != wantDiff[i] {
			t.Errorf("cascade slot %d = %s/%v, want %s/%v",
				i, q.QuestionID, q.Difficulty, id, wantDiff[i])
		}
		if !q.Penalty {
			t.Errorf("cascade slot %d not marked penalty", i)
		}
		answer(t, e, true)
	}

	if !e.AllMastered() {
		t.Error("concept not mastered after cascade hard pass")
	}
	if got := e.CreditRatio(); got != 0.5 {
		t.Errorf("CreditRatio = %v, want 0.5 for cascade mastery", got)
	}
}

func TestCascadeInjectedOnlyOnce(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))

	answer(t, e, false) // initial hard, starts cascade
	before := len(e.queue)

	fb := answer(t, e, false) // easy fails
	if fb.CascadeStarted || fb.Requeued {
		t.Error("easy failure must not inject more work")
	}
	fb = answer(t, e, false) // medium fails
	if fb.CascadeStarted || fb.Requeued {
		t.Error("medium failure must not inject more work")
	}
	if len(e.queue) != before {
		t.Errorf("queue grew from %d to %d on easy/medium failures", before, len(e.queue))
	}
}

func TestHardRetryRequeuesUntilPassed(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))

	answer(t, e, false) // initial hard
	answer(t, e, true)  // easy
	answer(t, e, true)  // medium

	for i := 0; i < 3; i++ {
		fb := answer(t, e, false) // hard retry fails
		if !fb.Requeued {
			t.Fatalf("retry %d: hard failure not re-queued", i)
		}
	}
	fb := answer(t, e, true)
	if !fb.Mastered {
		t.Error("hard retry pass did not master")
	}
	if !fb.Done {
		t.Error("session should be done after final retry")
	}
}

func TestEasyMediumFailuresDoNotBlockMastery(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))

	answer(t, e, false)      // initial hard
	answer(t, e, false)      // easy
	answer(t, e, false)      // medium
	fb := answer(t, e, true) // hard retry
	if !fb.Mastered {
		t.Error("concept should be mastered despite easy/medium failures")
	}
	if !e.AllMastered() {
		t.Error("AllMastered = false")
	}
}

func TestMixedSessionTallies(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a"), concept("b"), concept("c")))

	answer(t, e, true)       // a hard
	answer(t, e, false)      // b hard, cascade
	answer(t, e, true)       // c hard
	answer(t, e, true)       // b easy
	answer(t, e, true)       // b medium
	answer(t, e, false)      // b hard retry
	fb := answer(t, e, true) // b retry again
	if !fb.Done {
		t.Fatal("session should be complete")
	}

	if e.NumMastered() != 3 {
		t.Errorf("NumMastered = %d, want 3", e.NumMastered())
	}
	if got, want := e.Attempts(), 7; got != want {
		t.Errorf("Attempts = %d, want %d", got, want)
	}
	if got, want := e.Accuracy(), 5.0/7.0; got != want {
		t.Errorf("Accuracy = %v, want %v", got, want)
	}
	// a and c at full credit, b at half.
	if got, want := e.CreditRatio(), 2.5/3.0; got != want {
		t.Errorf("CreditRatio = %v, want %v", got, want)
	}
}

func TestMissingVariantsDegradeToHardStandIn(t *testing.T) {
	cv := catalog.ConceptVariant{
		ConceptID:      "solo",
		Name:           "solo",
		Domain:         catalog.DomainListening,
		HardQuestionID: "solo-h",
	}
	e := mustEngine(t, variantLesson(cv))

	answer(t, e, false) // initial hard, cascade of stand-ins

	q, _ := e.Current()
	if q.QuestionID != "solo-h" || q.Difficulty != catalog.DifficultyAdvanced {
		t.Fatalf("stand-in = %s/%v, want solo-h at advanced", q.QuestionID, q.Difficulty)
	}
	fb := answer(t, e, true)
	if !fb.Mastered {
		t.Error("stand-in pass should master the concept")
	}

	// Leftover stand-ins for the mastered concept must be inert.
	for !e.Completed() {
		fb := answer(t, e, false)
		if fb.Requeued || fb.CascadeStarted {
			t.Error("mastered concept re-queued more work")
		}
	}
	if !e.AllMastered() {
		t.Error("AllMastered = false")
	}
}

func TestLegacyLessonTreatsQuestionsAsConcepts(t *testing.T) {
	l := catalog.Lesson{
		ID:          "legacy",
		CourseID:    "c-test",
		Name:        "Legacy",
		Domain:      catalog.DomainGrammar,
		QuestionIDs: []string{"q1", "q2"},
	}
	e := mustEngine(t, l)

	if e.NumConcepts() != 2 {
		t.Fatalf("NumConcepts = %d, want 2", e.NumConcepts())
	}

	fb := answer(t, e, true) // q1
	if !fb.Mastered {
		t.Error("legacy pass should master the question")
	}

	fb = answer(t, e, false) // q2 fails, retried
	if !fb.Requeued {
		t.Fatal("legacy failure should re-queue the question")
	}
	if fb.CascadeStarted {
		t.Error("legacy lessons must not start cascades")
	}

	q, _ := e.Current()
	if q.QuestionID != "q2" {
		t.Fatalf("retry question = %s, want q2", q.QuestionID)
	}
	fb = answer(t, e, true)
	if !fb.Mastered || !fb.Done {
		t.Errorf("retry pass: mastered=%v done=%v, want both true", fb.Mastered, fb.Done)
	}
	if got := e.CreditRatio(); got != 0.75 {
		t.Errorf("CreditRatio = %v, want 0.75", got)
	}
}

func TestSubmitAfterCompletionFails(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))
	answer(t, e, true)
	if _, err := e.Submit(true); err == nil {
		t.Error("Submit after completion should fail")
	}
}

func TestResultsInLessonOrder(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("b"), concept("a")))
	answer(t, e, true)
	answer(t, e, true)

	rs := e.Results()
	if len(rs) != 2 || rs[0].ConceptID != "b" || rs[1].ConceptID != "a" {
		t.Errorf("Results order = %+v, want b then a", rs)
	}
	for _, r := range rs {
		if !r.MasteredOnFirstTry {
			t.Errorf("concept %s: MasteredOnFirstTry = false", r.ConceptID)
		}
	}
}

func tierOutcome(t *testing.T, name string, got *bool, want *bool) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want unset", name, *got)
	case want != nil && got == nil:
		t.Errorf("%s unset, want %v", name, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func boolPtr(b bool) *bool { return &b }

func TestResultRecordsTierOutcomes(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))

	// Fail the initial hard test, work through the cascade with a wrong
	// medium answer, fail the first hard retry, then pass the second.
	answer(t, e, false)      // a-h
	answer(t, e, true)       // a-e
	answer(t, e, false)      // a-m
	answer(t, e, false)      // a-h retry
	fb := answer(t, e, true) // a-h retry again

	if !fb.Mastered || !fb.Done {
		t.Fatalf("final retry fb = %+v, want mastered and done", fb)
	}

	res := e.Results()[0]
	if !res.CascadeTriggered {
		t.Error("CascadeTriggered = false after a hard failure")
	}
	tierOutcome(t, "HardCorrect", res.HardCorrect, boolPtr(false))
	tierOutcome(t, "EasyCorrect", res.EasyCorrect, boolPtr(true))
	tierOutcome(t, "MediumCorrect", res.MediumCorrect, boolPtr(false))
	tierOutcome(t, "HardRetryCorrect", res.HardRetryCorrect, boolPtr(true))
	if !res.Mastered || res.MasteredOnFirstTry {
		t.Errorf("mastery = %v/%v, want mastered via cascade", res.Mastered, res.MasteredOnFirstTry)
	}
	if res.Attempts != 5 || res.Correct != 2 {
		t.Errorf("tallies = %d attempts / %d correct, want 5/2", res.Attempts, res.Correct)
	}
}

func TestResultTierOutcomesStayUnsetWithoutCascade(t *testing.T) {
	e := mustEngine(t, variantLesson(concept("a")))

	answer(t, e, true)

	res := e.Results()[0]
	if res.CascadeTriggered {
		t.Error("CascadeTriggered = true on a clean pass")
	}
	tierOutcome(t, "HardCorrect", res.HardCorrect, boolPtr(true))
	tierOutcome(t, "EasyCorrect", res.EasyCorrect, nil)
	tierOutcome(t, "MediumCorrect", res.MediumCorrect, nil)
	tierOutcome(t, "HardRetryCorrect", res.HardRetryCorrect, nil)
}

func TestLegacyRequeueIsNotACascade(t *testing.T) {
	lesson := catalog.Lesson{
		ID:          "l-legacy",
		CourseID:    "c-test",
		Name:        "Legacy Lesson",
		Domain:      catalog.DomainVocabulary,
		QuestionIDs: []string{"q1"},
	}
	e := mustEngine(t, lesson)

	answer(t, e, false) // q1, re-queued verbatim
	answer(t, e, true)  // q1 retry

	res := e.Results()[0]
	if res.CascadeTriggered {
		t.Error("CascadeTriggered = true for a legacy re-queue")
	}
	tierOutcome(t, "HardCorrect", res.HardCorrect, boolPtr(false))
	tierOutcome(t, "HardRetryCorrect", res.HardRetryCorrect, boolPtr(true))
	tierOutcome(t, "EasyCorrect", res.EasyCorrect, nil)
}
