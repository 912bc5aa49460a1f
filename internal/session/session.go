// Package session drives one quiz run end to end: it serves questions from
// the mastery engine, records telemetry, and on completion folds the
// outcome back into the skill profile and the recommender.
package session

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lingua/internal/bandit"
	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/quiz"
	"github.com/abhisek/lingua/internal/remgen"
	"github.com/abhisek/lingua/internal/skills"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/telemetry"
)

// Session is one in-progress quiz run over a lesson.
type Session struct {
	ID     string
	Lesson catalog.Lesson

	engine   *quiz.Engine
	recorder telemetry.Recorder
	rewriter *remgen.Service

	firstAttempt bool
	startedAt    time.Time
	questionAt   time.Time
	now          func() time.Time

	contextFeatures []float64
	finished        bool
}

// Config wires a session's collaborators. Recorder defaults to a no-op;
// Rewriter is optional. Now defaults to time.Now and exists for tests.
type Config struct {
	Recorder telemetry.Recorder
	Rewriter *remgen.Service
	Now      func() time.Time
}

// Start opens a session for the lesson, seeding the quiz queue and
// recording the start event. contextFeatures must be the feature vector the
// lesson was recommended under; it is replayed into the bandit update at
// finish so scoring and learning see the same context.
func Start(ctx context.Context, lesson catalog.Lesson, ls LearnerState, contextFeatures []float64, cfg Config) (*Session, error) {
	engine, err := quiz.NewEngine(lesson)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	if cfg.Recorder == nil {
		cfg.Recorder = telemetry.NopRecorder{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	now := cfg.Now()
	s := &Session{
		ID:              uuid.NewString(),
		Lesson:          lesson,
		engine:          engine,
		recorder:        cfg.Recorder,
		rewriter:        cfg.Rewriter,
		firstAttempt:    !ls.Rewarded[lesson.ID],
		startedAt:       now,
		questionAt:      now,
		now:             cfg.Now,
		contextFeatures: contextFeatures,
	}

	s.recorder.RecordSessionStart(ctx, store.SessionEventData{
		SessionID: s.ID,
		LessonID:  lesson.ID,
		Domain:    string(lesson.Domain),
	})
	return s, nil
}

// ServedQuestion is a question ready for display. Prompt may differ from
// the catalog text when a remediation rewrite landed in time.
type ServedQuestion struct {
	quiz.QueuedQuestion
	Prompt  string
	Choices []string
	Answer  int
}

// Current returns the next question to show, false when the queue is done.
func (s *Session) Current() (ServedQuestion, bool, error) {
	qq, ok := s.engine.Current()
	if !ok {
		return ServedQuestion{}, false, nil
	}

	q, err := catalog.GetQuestion(qq.QuestionID)
	if err != nil {
		return ServedQuestion{}, false, fmt.Errorf("serve question: %w", err)
	}

	served := ServedQuestion{
		QueuedQuestion: qq,
		Prompt:         q.Prompt,
		Choices:        q.Choices,
		Answer:         q.Answer,
	}
	if qq.Penalty && s.rewriter != nil {
		if v, ok := s.rewriter.ConsumeVariant(qq.QuestionID); ok {
			served.Prompt = v.Prompt
		}
	}
	return served, true, nil
}

// Answer submits the learner's choice for the current question and records
// the attempt.
func (s *Session) Answer(ctx context.Context, choice int) (quiz.Feedback, error) {
	qq, ok := s.engine.Current()
	if !ok {
		return quiz.Feedback{}, fmt.Errorf("no question pending")
	}
	q, err := catalog.GetQuestion(qq.QuestionID)
	if err != nil {
		return quiz.Feedback{}, fmt.Errorf("answer: %w", err)
	}

	correct := choice == q.Answer
	fb, err := s.engine.Submit(correct)
	if err != nil {
		return quiz.Feedback{}, err
	}

	now := s.now()
	s.recorder.RecordAttempt(ctx, store.AttemptEventData{
		SessionID:  s.ID,
		LessonID:   s.Lesson.ID,
		ConceptID:  qq.ConceptID,
		QuestionID: qq.QuestionID,
		Domain:     string(s.Lesson.Domain),
		Difficulty: qq.Difficulty.Label(),
		Penalty:    qq.Penalty,
		Correct:    correct,
		TimeMs:     int(now.Sub(s.questionAt).Milliseconds()),
	})
	s.questionAt = now

	// Queue a prompt rewrite for the remediation work this failure added,
	// so the retry doesn't read as a verbatim repeat.
	if s.rewriter != nil && (fb.CascadeStarted || fb.Requeued) {
		if next, ok := s.engine.Current(); ok && next.ConceptID == qq.ConceptID {
			s.requestRewrite(ctx, next, choice, q)
		}
	}

	return fb, nil
}

func (s *Session) requestRewrite(ctx context.Context, next quiz.QueuedQuestion, choice int, failed catalog.Question) {
	nq, err := catalog.GetQuestion(next.QuestionID)
	if err != nil {
		return
	}
	wrong := ""
	if choice >= 0 && choice < len(failed.Choices) {
		wrong = failed.Choices[choice]
	}
	name := next.ConceptID
	for _, cv := range s.Lesson.Concepts {
		if cv.ConceptID == next.ConceptID {
			name = cv.Name
			break
		}
	}
	s.rewriter.RequestVariant(ctx, remgen.VariantInput{
		QuestionID:  nq.ID,
		ConceptName: name,
		Domain:      s.Lesson.Domain,
		Difficulty:  next.Difficulty,
		Prompt:      nq.Prompt,
		Choices:     nq.Choices,
		WrongAnswer: wrong,
	})
}

// Completed reports whether the question queue is exhausted.
func (s *Session) Completed() bool {
	return s.engine.Completed()
}

// Abandon finishes the session early, without completion credit.
func (s *Session) Abandon(ctx context.Context, ls LearnerState, rating int) (LearnerState, Result, error) {
	return s.finish(ctx, ls, rating, false)
}

// Finish closes a completed session: computes the reward, updates the
// skill profile and bandit parameters, applies XP, hearts, and streak
// bookkeeping, and records the end and reward events.
func (s *Session) Finish(ctx context.Context, ls LearnerState, rating int) (LearnerState, Result, error) {
	if !s.engine.Completed() {
		return ls, Result{}, fmt.Errorf("session still has pending questions")
	}
	return s.finish(ctx, ls, rating, true)
}

func (s *Session) finish(ctx context.Context, ls LearnerState, rating int, completed bool) (LearnerState, Result, error) {
	if s.finished {
		return ls, Result{}, fmt.Errorf("session already finished")
	}
	s.finished = true

	now := s.now()
	duration := now.Sub(s.startedAt)
	accuracy := s.engine.Accuracy()

	reward := bandit.ComputeReward(bandit.LessonOutcome{
		LessonID:       s.Lesson.ID,
		Accuracy:       accuracy,
		CompletionSecs: duration.Seconds(),
		ExpectedSecs:   float64(s.Lesson.EstimatedMins) * 60,
		Completed:      completed,
		Rating:         rating,
	})

	ls.Bandit = bandit.Apply(ls.Bandit, s.Lesson.ID, s.contextFeatures, reward, now)
	ls.Skills = skills.Update(ls.Skills, s.Lesson.Domain, accuracy, s.Lesson.Difficulty, now)

	xp := 0
	if completed && s.engine.AllMastered() {
		ls.Completed[s.Lesson.ID] = true
	}
	if completed && s.firstAttempt {
		xp = int(float64(s.Lesson.XPReward)*s.engine.CreditRatio() + 0.5)
		ls.XP += xp
		ls.Rewarded[s.Lesson.ID] = true
	}

	ls.TouchDay(now)
	ls.SessionsToday++
	ls.LastDifficulty = s.Lesson.Difficulty
	ls.LastAccuracy = accuracy

	wrongInitial := 0
	for _, r := range s.engine.Results() {
		if !r.MasteredOnFirstTry {
			wrongInitial++
		}
	}
	ls.Hearts -= wrongInitial
	if ls.Hearts < 0 {
		ls.Hearts = 0
	}

	s.recorder.RecordSessionEnd(ctx, store.SessionEventData{
		SessionID:        s.ID,
		LessonID:         s.Lesson.ID,
		Domain:           string(s.Lesson.Domain),
		QuestionsServed:  s.engine.Attempts(),
		CorrectAnswers:   s.engine.Correct(),
		MasteredConcepts: s.engine.NumMastered(),
		TotalConcepts:    s.engine.NumConcepts(),
		DurationSecs:     int(duration.Seconds()),
	})
	s.recorder.RecordReward(ctx, store.RewardEventData{
		SessionID:    s.ID,
		LessonID:     s.Lesson.ID,
		Reward:       reward,
		Accuracy:     accuracy,
		CreditRatio:  s.engine.CreditRatio(),
		XPAwarded:    xp,
		FirstAttempt: s.firstAttempt,
	})

	result := Result{
		SessionID:        s.ID,
		LessonID:         s.Lesson.ID,
		Completed:        completed,
		AllMastered:      s.engine.AllMastered(),
		MasteredConcepts: s.engine.NumMastered(),
		TotalConcepts:    s.engine.NumConcepts(),
		Attempts:         s.engine.Attempts(),
		Accuracy:         accuracy,
		Reward:           reward,
		XPAwarded:        xp,
		Duration:         duration,
		Concepts:         s.engine.Results(),
	}
	return ls, result, nil
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
