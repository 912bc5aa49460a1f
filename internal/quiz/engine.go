// Package quiz implements the mastery quiz state machine: hard-first
// testing with a penalty cascade of easier variants after a failure, and
// mastery granted only on a correct hard-tier answer.
package quiz

import (
	"fmt"

	"github.com/abhisek/lingua/internal/catalog"
)

// Engine runs one lesson's quiz session. The question queue is append-only:
// answering never removes entries, a wrong answer only appends remediation
// work, so the session always terminates once the queue is exhausted.
type Engine struct {
	lesson   catalog.Lesson
	variants map[string]catalog.ConceptVariant

	queue []QueuedQuestion
	pos   int

	// inCascade guards the single-injection rule: at most one cascade per
	// concept, no matter how many of its questions fail afterwards.
	inCascade map[string]bool

	results map[string]*ConceptResult
	order   []string

	legacy   bool
	attempts int
	correct  int
}

// NewEngine builds a session for the lesson. Variant lessons seed one hard
// question per concept, in lesson order. Legacy lessons seed their flat
// question list, each question standing in as its own hard-tier concept.
func NewEngine(lesson catalog.Lesson) (*Engine, error) {
	e := &Engine{
		lesson:    lesson,
		variants:  make(map[string]catalog.ConceptVariant),
		inCascade: make(map[string]bool),
		results:   make(map[string]*ConceptResult),
		legacy:    !lesson.HasVariants(),
	}

	if e.legacy {
		if len(lesson.QuestionIDs) == 0 {
			return nil, fmt.Errorf("lesson %s has no questions", lesson.ID)
		}
		for _, qid := range lesson.QuestionIDs {
			e.addConcept(qid)
			e.queue = append(e.queue, QueuedQuestion{
				QuestionID:      qid,
				ConceptID:       qid,
				Difficulty:      catalog.DifficultyAdvanced,
				InitialHardTest: true,
			})
		}
		return e, nil
	}

	for _, cv := range lesson.Concepts {
		if cv.HardQuestionID == "" {
			return nil, fmt.Errorf("concept %s has no hard question", cv.ConceptID)
		}
		e.variants[cv.ConceptID] = cv
		e.addConcept(cv.ConceptID)
		e.queue = append(e.queue, QueuedQuestion{
			QuestionID:      cv.HardQuestionID,
			ConceptID:       cv.ConceptID,
			Difficulty:      catalog.DifficultyAdvanced,
			InitialHardTest: true,
		})
	}
	return e, nil
}

func (e *Engine) addConcept(id string) {
	e.results[id] = &ConceptResult{ConceptID: id}
	e.order = append(e.order, id)
}

// Current returns the question to present next. ok is false once the queue
// is exhausted and the session is complete.
func (e *Engine) Current() (QueuedQuestion, bool) {
	if e.pos >= len(e.queue) {
		return QueuedQuestion{}, false
	}
	return e.queue[e.pos], true
}

// Submit records the answer to the current question and advances the queue,
// appending remediation entries as needed.
func (e *Engine) Submit(correct bool) (Feedback, error) {
	q, ok := e.Current()
	if !ok {
		return Feedback{}, fmt.Errorf("session already complete")
	}
	e.pos++
	e.attempts++

	res := e.results[q.ConceptID]
	res.Attempts++
	res.recordTier(q, correct)

	var fb Feedback
	if correct {
		e.correct++
		res.Correct++
		fb.Correct = true
		// Mastery comes only from a hard-tier pass. Already-mastered
		// concepts are left alone, so stale cascade entries served after
		// mastery cannot change the outcome.
		if q.Difficulty == catalog.DifficultyAdvanced && !res.Mastered {
			res.Mastered = true
			res.MasteredOnFirstTry = q.InitialHardTest
			fb.Mastered = true
		}
	} else {
		e.handleWrong(q, &fb)
	}

	fb.Done = e.Completed()
	return fb, nil
}

func (e *Engine) handleWrong(q QueuedQuestion, fb *Feedback) {
	res := e.results[q.ConceptID]
	if res.Mastered {
		// Leftover cascade question for a concept already mastered.
		// Nothing left to remediate.
		return
	}

	switch {
	case q.InitialHardTest && !e.legacy:
		if e.inCascade[q.ConceptID] {
			return
		}
		e.inCascade[q.ConceptID] = true
		res.CascadeTriggered = true
		e.appendCascade(q.ConceptID)
		fb.CascadeStarted = true

	case q.Pos == CascadeHardRetry:
		// The mastery gate failed again. Keep offering it until it
		// passes, one retry per failure.
		e.queue = append(e.queue, QueuedQuestion{
			QuestionID: q.QuestionID,
			ConceptID:  q.ConceptID,
			Difficulty: catalog.DifficultyAdvanced,
			Penalty:    true,
			Pos:        CascadeHardRetry,
		})
		fb.Requeued = true

	case q.InitialHardTest && e.legacy:
		// Legacy questions have no easier variants to fall back to:
		// retry the same question until it passes.
		e.queue = append(e.queue, QueuedQuestion{
			QuestionID: q.QuestionID,
			ConceptID:  q.ConceptID,
			Difficulty: catalog.DifficultyAdvanced,
			Penalty:    true,
			Pos:        CascadeHardRetry,
		})
		fb.Requeued = true

		// Easy and medium cascade failures never block: the hard retry
		// already queued behind them decides mastery.
	}
}

// appendCascade queues the easy, medium, hard remediation sequence for a
// concept. A concept missing an easy or medium variant gets the hard
// question as a stand-in so the cascade still ends at the mastery gate.
func (e *Engine) appendCascade(conceptID string) {
	cv := e.variants[conceptID]
	slots := []struct {
		d   catalog.Difficulty
		pos CascadePos
	}{
		{catalog.DifficultyBeginner, CascadeEasy},
		{catalog.DifficultyIntermediate, CascadeMedium},
		{catalog.DifficultyAdvanced, CascadeHardRetry},
	}
	for _, s := range slots {
		qid := cv.QuestionID(s.d)
		diff := s.d
		if qid == "" {
			qid = cv.HardQuestionID
			diff = catalog.DifficultyAdvanced
		}
		e.queue = append(e.queue, QueuedQuestion{
			QuestionID: qid,
			ConceptID:  conceptID,
			Difficulty: diff,
			Penalty:    true,
			Pos:        s.pos,
		})
	}
}

// Completed reports whether the queue is exhausted.
func (e *Engine) Completed() bool {
	return e.pos >= len(e.queue)
}

// AllMastered reports whether every concept in the session is mastered.
func (e *Engine) AllMastered() bool {
	for _, r := range e.results {
		if !r.Mastered {
			return false
		}
	}
	return true
}

// NumMastered counts mastered concepts.
func (e *Engine) NumMastered() int {
	n := 0
	for _, r := range e.results {
		if r.Mastered {
			n++
		}
	}
	return n
}

// NumConcepts returns the total number of concepts in the session.
func (e *Engine) NumConcepts() int {
	return len(e.order)
}

// Attempts returns how many answers have been submitted.
func (e *Engine) Attempts() int {
	return e.attempts
}

// Correct returns how many submitted answers were correct.
func (e *Engine) Correct() int {
	return e.correct
}

// Accuracy returns correct answers over total attempts, 0 before the
// first answer.
func (e *Engine) Accuracy() float64 {
	if e.attempts == 0 {
		return 0
	}
	return float64(e.correct) / float64(e.attempts)
}

// CreditRatio returns earned reward credit over the maximum possible:
// each concept contributes 1.0 for an initial hard pass, 0.5 for mastery
// through the cascade, 0 if unmastered.
func (e *Engine) CreditRatio() float64 {
	if len(e.order) == 0 {
		return 0
	}
	earned := 0.0
	for _, r := range e.results {
		earned += r.Credit()
	}
	return earned / float64(len(e.order))
}

// Results returns per-concept outcomes in lesson order.
func (e *Engine) Results() []ConceptResult {
	out := make([]ConceptResult, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, *e.results[id])
	}
	return out
}

// Lesson returns the lesson this session runs.
func (e *Engine) Lesson() catalog.Lesson {
	return e.lesson
}
