package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/feature"
	"github.com/abhisek/lingua/internal/store"
)

// captureRecorder collects telemetry events for assertions.
type captureRecorder struct {
	attempts []store.AttemptEventData
	starts   []store.SessionEventData
	ends     []store.SessionEventData
	rewards  []store.RewardEventData
}

func (r *captureRecorder) RecordAttempt(_ context.Context, d store.AttemptEventData) {
	r.attempts = append(r.attempts, d)
}
func (r *captureRecorder) RecordSessionStart(_ context.Context, d store.SessionEventData) {
	r.starts = append(r.starts, d)
}
func (r *captureRecorder) RecordSessionEnd(_ context.Context, d store.SessionEventData) {
	r.ends = append(r.ends, d)
}
func (r *captureRecorder) RecordReward(_ context.Context, d store.RewardEventData) {
	r.rewards = append(r.rewards, d)
}

func testLesson(t *testing.T) catalog.Lesson {
	t.Helper()
	l, err := catalog.GetLesson("es-vocab-greetings")
	if err != nil {
		t.Fatalf("load lesson: %v", err)
	}
	return l
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func startSession(t *testing.T, ls LearnerState, rec *captureRecorder, now time.Time) *Session {
	t.Helper()
	lesson := testLesson(t)
	feats := feature.ContextFeatures(ls.Context(now))
	s, err := Start(context.Background(), lesson, ls, feats, Config{
		Recorder: rec,
		Now:      fixedClock(now),
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

// answerAll submits the correct choice (always index 0 in the seed catalog)
// until the queue is exhausted.
func answerAll(t *testing.T, s *Session) {
	t.Helper()
	for !s.Completed() {
		if _, err := s.Answer(context.Background(), 0); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
}

func TestPerfectFirstSessionAwardsFullXP(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	ls := NewLearnerState()
	rec := &captureRecorder{}
	s := startSession(t, ls, rec, now)

	answerAll(t, s)

	ls, result, err := s.Finish(context.Background(), ls, 0)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	if !result.AllMastered {
		t.Error("expected all concepts mastered")
	}
	if result.XPAwarded != 20 {
		t.Errorf("xp = %d, want full reward 20", result.XPAwarded)
	}
	if ls.XP != 20 {
		t.Errorf("state xp = %d, want 20", ls.XP)
	}
	if !ls.Completed["es-vocab-greetings"] {
		t.Error("lesson not marked completed")
	}
	if !ls.Rewarded["es-vocab-greetings"] {
		t.Error("lesson not marked rewarded")
	}
	if ls.Bandit.TotalPulls != 1 {
		t.Errorf("total pulls = %d, want 1", ls.Bandit.TotalPulls)
	}
	if p := ls.Bandit.Params("es-vocab-greetings"); p.PullCount != 1 {
		t.Errorf("arm pulls = %d, want 1", p.PullCount)
	}
	if got := ls.Skills.Score(catalog.DomainVocabulary); got != 10 {
		t.Errorf("vocabulary skill = %v, want 10 after a perfect beginner lesson", got)
	}
	if ls.StreakDays != 1 || ls.SessionsToday != 1 {
		t.Errorf("streak/sessions = %d/%d, want 1/1", ls.StreakDays, ls.SessionsToday)
	}
	if ls.LastAccuracy != 1.0 {
		t.Errorf("last accuracy = %v, want 1.0", ls.LastAccuracy)
	}
	if ls.Hearts != MaxHearts {
		t.Errorf("hearts = %d, want untouched %d", ls.Hearts, MaxHearts)
	}
}

func TestRepeatSessionSkipsXPButStillLearns(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	ls := NewLearnerState()
	ls.Rewarded["es-vocab-greetings"] = true
	rec := &captureRecorder{}
	s := startSession(t, ls, rec, now)

	answerAll(t, s)

	ls, result, err := s.Finish(context.Background(), ls, 0)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.XPAwarded != 0 {
		t.Errorf("xp = %d, want 0 on repeat", result.XPAwarded)
	}
	if ls.Bandit.TotalPulls != 1 {
		t.Errorf("total pulls = %d, bandit should still learn from repeats", ls.Bandit.TotalPulls)
	}
	if len(rec.rewards) != 1 || rec.rewards[0].FirstAttempt {
		t.Errorf("reward event = %+v, want first_attempt=false", rec.rewards)
	}
}

func TestCascadeMasteryHalvesCredit(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	ls := NewLearnerState()
	rec := &captureRecorder{}
	s := startSession(t, ls, rec, now)

	// Fail the first hard question, then answer everything correctly.
	if _, err := s.Answer(context.Background(), 1); err != nil {
		t.Fatalf("answer: %v", err)
	}
	answerAll(t, s)

	ls, result, err := s.Finish(context.Background(), ls, 0)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !result.AllMastered {
		t.Fatal("expected mastery through the cascade")
	}
	// One concept at half credit, one at full: 20 * 0.75 = 15.
	if result.XPAwarded != 15 {
		t.Errorf("xp = %d, want 15", result.XPAwarded)
	}
	if ls.Hearts != MaxHearts-1 {
		t.Errorf("hearts = %d, want one lost", ls.Hearts)
	}
}

func TestAbandonForfeitsCompletion(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	ls := NewLearnerState()
	rec := &captureRecorder{}
	s := startSession(t, ls, rec, now)

	// Answer one question, then quit.
	if _, err := s.Answer(context.Background(), 0); err != nil {
		t.Fatalf("answer: %v", err)
	}

	ls, result, err := s.Abandon(context.Background(), ls, 0)
	if err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if result.Completed {
		t.Error("abandoned session reported as completed")
	}
	if result.XPAwarded != 0 {
		t.Errorf("xp = %d, want 0", result.XPAwarded)
	}
	if ls.Completed["es-vocab-greetings"] {
		t.Error("abandoned lesson marked completed")
	}
	// Accuracy 1.0, abandonment -0.2, fast-and-accurate +0.1.
	if diff := result.Reward - 0.9; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("reward = %v, want 0.9", result.Reward)
	}
	if ls.Bandit.TotalPulls != 1 {
		t.Error("abandonment should still update the bandit")
	}
}

func TestFinishRequiresExhaustedQueue(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	ls := NewLearnerState()
	s := startSession(t, ls, &captureRecorder{}, now)

	if _, _, err := s.Finish(context.Background(), ls, 0); err == nil {
		t.Error("finish should fail with questions pending")
	}
}

func TestSessionTelemetry(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	ls := NewLearnerState()
	rec := &captureRecorder{}
	s := startSession(t, ls, rec, now)

	answerAll(t, s)
	if _, _, err := s.Finish(context.Background(), ls, 4); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if len(rec.starts) != 1 {
		t.Fatalf("start events = %d, want 1", len(rec.starts))
	}
	if len(rec.attempts) != 2 {
		t.Fatalf("attempt events = %d, want 2", len(rec.attempts))
	}
	a := rec.attempts[0]
	if a.SessionID != s.ID || a.LessonID != "es-vocab-greetings" || a.Difficulty != "hard" {
		t.Errorf("attempt event = %+v", a)
	}
	if len(rec.ends) != 1 {
		t.Fatalf("end events = %d, want 1", len(rec.ends))
	}
	end := rec.ends[0]
	if end.QuestionsServed != 2 || end.CorrectAnswers != 2 || end.MasteredConcepts != 2 {
		t.Errorf("end event = %+v", end)
	}
	if len(rec.rewards) != 1 {
		t.Fatalf("reward events = %d, want 1", len(rec.rewards))
	}
	// Accuracy 1.0 + completion 0.1 + fast finish 0.1 + rating (4-3)*0.1,
	// clamped to 1.0.
	if rec.rewards[0].Reward != 1.0 {
		t.Errorf("reward = %v, want 1.0", rec.rewards[0].Reward)
	}
}
