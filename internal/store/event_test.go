package store

import (
	"context"
	"testing"
)

func TestAppendAndQueryAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", LessonID: "l1", ConceptID: "c1", QuestionID: "q1",
			Domain: "vocabulary", Difficulty: "hard", Correct: true, TimeMs: 4000},
		{SessionID: "s1", LessonID: "l1", ConceptID: "c2", QuestionID: "q2",
			Domain: "vocabulary", Difficulty: "hard", Correct: false, TimeMs: 9000},
		{SessionID: "s2", LessonID: "l2", ConceptID: "c3", QuestionID: "q3",
			Domain: "grammar", Difficulty: "easy", Penalty: true, Correct: true, TimeMs: 2500},
	}
	for i, a := range attempts {
		if err := repo.AppendAttemptEvent(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	stats, err := repo.DomainAccuracy(ctx)
	if err != nil {
		t.Fatalf("domain accuracy: %v", err)
	}
	byDomain := make(map[string]DomainStats)
	for _, st := range stats {
		byDomain[st.Domain] = st
	}
	if v := byDomain["vocabulary"]; v.Attempts != 2 || v.Correct != 1 {
		t.Errorf("vocabulary stats = %+v, want 2 attempts 1 correct", v)
	}
	if g := byDomain["grammar"]; g.Accuracy() != 1.0 {
		t.Errorf("grammar accuracy = %v, want 1.0", g.Accuracy())
	}

	acc, err := repo.LessonAccuracy(ctx, "l1")
	if err != nil {
		t.Fatalf("lesson accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("lesson l1 accuracy = %v, want 0.5", acc)
	}

	// Unknown lesson reads back as zero, not an error.
	acc, err = repo.LessonAccuracy(ctx, "nope")
	if err != nil {
		t.Fatalf("unknown lesson accuracy: %v", err)
	}
	if acc != 0 {
		t.Errorf("unknown lesson accuracy = %v, want 0", acc)
	}
}

func TestSessionLifecycleEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", LessonID: "l1", Domain: "reading",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", LessonID: "l1", Domain: "reading",
		QuestionsServed: 7, CorrectAnswers: 5,
		MasteredConcepts: 3, TotalConcepts: 3, DurationSecs: 180,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	sessions, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1 (start events excluded)", len(sessions))
	}
	got := sessions[0]
	if got.SessionID != "s1" || got.QuestionsServed != 7 || got.MasteredConcepts != 3 {
		t.Errorf("session summary = %+v", got)
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id, Action: "end", LessonID: "l-" + id, Domain: "vocabulary",
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	sessions, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].SessionID != "c" || sessions[1].SessionID != "b" {
		t.Errorf("order = %s, %s, want c, b", sessions[0].SessionID, sessions[1].SessionID)
	}
}

func TestRewardEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rewards := []RewardEventData{
		{SessionID: "s1", LessonID: "l1", Reward: 0.8, Accuracy: 0.9, CreditRatio: 1.0, XPAwarded: 20, FirstAttempt: true},
		{SessionID: "s2", LessonID: "l1", Reward: 0.6, Accuracy: 0.7, CreditRatio: 0.5, XPAwarded: 5},
	}
	for i, rw := range rewards {
		if err := repo.AppendRewardEvent(ctx, rw); err != nil {
			t.Fatalf("append reward %d: %v", i, err)
		}
	}

	total, err := repo.TotalReward(ctx, "l1")
	if err != nil {
		t.Fatalf("total reward: %v", err)
	}
	if total != 1.4 {
		t.Errorf("total reward = %v, want 1.4", total)
	}
}

func TestLLMRequestEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "remediation-gen",
			InputTokens: 420, OutputTokens: 180, LatencyMs: 950, Success: true,
			RequestBody: `{"prompt":"rephrase"}`, ResponseBody: `{"prompt":"done"}`},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "remediation-gen",
			InputTokens: 300, OutputTokens: 120, LatencyMs: 650, Success: false,
			ErrorMessage: "rate limited"},
	}
	for i, r := range requests {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].ErrorMessage != "rate limited" || events[0].Success {
		t.Errorf("newest event = %+v", events[0])
	}
	if events[1].RequestBody != `{"prompt":"rephrase"}` {
		t.Errorf("request body = %q", events[1].RequestBody)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get llm event: %v", err)
	}
	if got == nil || got.ResponseBody != `{"prompt":"done"}` {
		t.Errorf("event by id = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Errorf("missing event = %+v, want nil", missing)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d usage rows, want 1", len(usage))
	}
	u := usage[0]
	if u.Purpose != "remediation-gen" || u.Calls != 2 || u.InputTokens != 720 || u.OutputTokens != 300 {
		t.Errorf("usage = %+v", u)
	}
	if u.AvgLatencyMs != 800 {
		t.Errorf("avg latency = %d, want 800", u.AvgLatencyMs)
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start", LessonID: "l1", Domain: "grammar"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendAttemptEvent(ctx, AttemptEventData{SessionID: "s1", LessonID: "l1", ConceptID: "c1", QuestionID: "q1", Domain: "grammar", Difficulty: "hard", TimeMs: 1000}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendRewardEvent(ctx, RewardEventData{SessionID: "s1", LessonID: "l1", Reward: 0.5}); err != nil {
		t.Fatalf("append reward: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("session event: %v", err)
	}
	ae, err := s.Client().AttemptEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("attempt event: %v", err)
	}
	re, err := s.Client().RewardEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("reward event: %v", err)
	}

	if !(se.Sequence < ae.Sequence && ae.Sequence < re.Sequence) {
		t.Errorf("sequences not ordered across tables: %d, %d, %d",
			se.Sequence, ae.Sequence, re.Sequence)
	}
}
