package cmd

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/feature"
	"github.com/abhisek/lingua/internal/session"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/syncer"
)

// eagerTimer fires callbacks the moment they are scheduled, turning every
// Mark into an observable write.
type eagerTimer struct{}

func (eagerTimer) Schedule(_ time.Duration, fn func()) { fn() }
func (eagerTimer) Stop()                               {}

// idleTimer never fires, so nothing reaches disk before Flush.
type idleTimer struct{}

func (idleTimer) Schedule(time.Duration, func()) {}
func (idleTimer) Stop()                          {}

func startTestSession(t *testing.T, ls session.LearnerState) (*session.Session, catalog.Lesson) {
	t.Helper()
	lesson, err := catalog.GetLesson("es-vocab-greetings")
	if err != nil {
		t.Fatalf("GetLesson: %v", err)
	}
	feats := feature.ContextFeatures(ls.Context(time.Now()))
	sess, err := session.Start(context.Background(), lesson, ls, feats, session.Config{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return sess, lesson
}

// perfectRun scripts the correct choice for each concept's hard question
// plus a closing rating, so the session completes without remediation.
func perfectRun(t *testing.T, lesson catalog.Lesson) string {
	t.Helper()
	var b strings.Builder
	for _, cv := range lesson.Concepts {
		q, err := catalog.GetQuestion(cv.HardQuestionID)
		if err != nil {
			t.Fatalf("GetQuestion(%s): %v", cv.HardQuestionID, err)
		}
		b.WriteString(strconv.Itoa(q.Answer+1) + "\n")
	}
	b.WriteString("4\n")
	return b.String()
}

func TestPlaySessionMarksProgressPerAnswer(t *testing.T) {
	ls := session.NewLearnerState()
	sess, lesson := startTestSession(t, ls)

	var writes []store.SnapshotData
	sync := syncer.New(func(_ context.Context, data store.SnapshotData) error {
		writes = append(writes, data)
		return nil
	}, syncer.WithTimer(eagerTimer{}))

	in := bufio.NewScanner(strings.NewReader(perfectRun(t, lesson)))
	var out bytes.Buffer
	final, result, err := playSession(context.Background(), in, &out, sess, ls, sync)
	if err != nil {
		t.Fatalf("playSession: %v", err)
	}
	if !result.Completed {
		t.Fatal("session did not complete")
	}

	// One write per answered question, plus the post-finish state.
	want := result.Attempts + 1
	if len(writes) != want {
		t.Fatalf("got %d writes, want %d", len(writes), want)
	}
	last := writes[len(writes)-1]
	if final.XP == 0 || last.XP != final.XP {
		t.Errorf("last write XP = %d, want final XP %d (nonzero)", last.XP, final.XP)
	}

	// Everything is already persisted, so teardown has nothing to add.
	if err := sync.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(writes) != want {
		t.Errorf("Flush added a write, got %d want %d", len(writes), want)
	}
}

func TestPlaySessionCoalescesWithinWindowAndFlushes(t *testing.T) {
	ls := session.NewLearnerState()
	sess, lesson := startTestSession(t, ls)

	var writes []store.SnapshotData
	sync := syncer.New(func(_ context.Context, data store.SnapshotData) error {
		writes = append(writes, data)
		return nil
	}, syncer.WithTimer(idleTimer{}))

	in := bufio.NewScanner(strings.NewReader(perfectRun(t, lesson)))
	var out bytes.Buffer
	final, _, err := playSession(context.Background(), in, &out, sess, ls, sync)
	if err != nil {
		t.Fatalf("playSession: %v", err)
	}

	if len(writes) != 0 {
		t.Fatalf("window never elapsed but got %d writes", len(writes))
	}
	if err := sync.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(writes) != 1 {
		t.Fatalf("got %d writes after Flush, want the one coalesced state", len(writes))
	}
	if writes[0].XP != final.XP {
		t.Errorf("flushed XP = %d, want %d", writes[0].XP, final.XP)
	}
}

func TestPlaySessionAbandonStateReachesFlush(t *testing.T) {
	ls := session.NewLearnerState()
	sess, lesson := startTestSession(t, ls)

	// Answer the first question, then quit.
	q, err := catalog.GetQuestion(lesson.Concepts[0].HardQuestionID)
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	script := strconv.Itoa(q.Answer+1) + "\nq\n"

	var writes []store.SnapshotData
	sync := syncer.New(func(_ context.Context, data store.SnapshotData) error {
		writes = append(writes, data)
		return nil
	}, syncer.WithTimer(idleTimer{}))

	var out bytes.Buffer
	final, result, err := playSession(context.Background(), bufio.NewScanner(strings.NewReader(script)), &out, sess, ls, sync)
	if err != nil {
		t.Fatalf("playSession: %v", err)
	}
	if result.Completed {
		t.Fatal("abandoned session reported as completed")
	}

	if err := sync.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(writes) != 1 {
		t.Fatalf("got %d writes after Flush, want 1", len(writes))
	}
	if writes[0].SessionsToday != final.SessionsToday {
		t.Errorf("flushed SessionsToday = %d, want %d", writes[0].SessionsToday, final.SessionsToday)
	}
}
