package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/feature"
	"github.com/abhisek/lingua/internal/llm"
	"github.com/abhisek/lingua/internal/recommend"
	"github.com/abhisek/lingua/internal/remgen"
	"github.com/abhisek/lingua/internal/session"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/syncer"
	"github.com/abhisek/lingua/internal/telemetry"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// snapshotsToKeep bounds snapshot history; events carry the full record.
const snapshotsToKeep = 20

var quizCmd = &cobra.Command{
	Use:   "quiz [lesson-id]",
	Short: "Run a lesson quiz",
	Long:  "Run a quiz for the given lesson, or for the top recommendation when no lesson is named.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	ls, err := loadLearnerState(ctx, st)
	if err != nil {
		return err
	}

	feats := feature.ContextFeatures(ls.Context(time.Now()))
	lesson, err := chooseLesson(args, ls)
	if err != nil {
		return err
	}

	cfg := session.Config{Recorder: telemetry.NewRecorder(st.EventRepo())}
	if provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo()); err == nil {
		cfg.Rewriter = remgen.NewService(provider, remgen.DefaultConfig())
	} else {
		fmt.Fprintln(os.Stderr, theme.Hint.Render("LLM provider not configured; retry questions repeat verbatim."))
	}

	sess, err := session.Start(ctx, lesson, ls, feats, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(theme.Title.Render(lesson.Name), theme.Subtitle.Render(
		fmt.Sprintf("(%s, %s, ~%d min)",
			catalog.DomainDisplayName(lesson.Domain), lesson.Difficulty.Label(), lesson.EstimatedMins)))

	sync := syncer.New(snapshotWriter(st))
	ls, result, err := playSession(ctx, bufio.NewScanner(os.Stdin), os.Stdout, sess, ls, sync)
	if err != nil {
		return err
	}
	if err := sync.Flush(ctx); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	printSummary(os.Stdout, ls, result)
	return nil
}

// playSession runs the interactive answer loop. Every answered question
// marks the syncer so progress reaches disk during the session, not just at
// the end; the caller flushes whatever is still pending on teardown.
func playSession(ctx context.Context, in *bufio.Scanner, out io.Writer, sess *session.Session, ls session.LearnerState, sync *syncer.Syncer) (session.LearnerState, session.Result, error) {
	abandoned := false
	for {
		q, ok, err := sess.Current()
		if err != nil {
			return ls, session.Result{}, err
		}
		if !ok {
			break
		}

		fmt.Fprintln(out)
		if q.Penalty {
			fmt.Fprintln(out, theme.Hint.Render("retry "+q.Difficulty.Label()))
		}
		fmt.Fprintln(out, theme.Emph.Render(q.Prompt))
		for i, c := range q.Choices {
			fmt.Fprintf(out, "  %d) %s\n", i+1, c)
		}

		choice, quit := readChoice(in, out, len(q.Choices))
		if quit {
			abandoned = true
			break
		}

		fb, err := sess.Answer(ctx, choice)
		if err != nil {
			return ls, session.Result{}, err
		}
		sync.Mark(ls.ToSnapshot())

		switch {
		case fb.Correct && fb.Mastered:
			fmt.Fprintln(out, theme.Correct.Render("✓ Correct, concept mastered!"))
		case fb.Correct:
			fmt.Fprintln(out, theme.Correct.Render("✓ Correct!"))
		default:
			fmt.Fprintln(out, theme.Incorrect.Render("✗ Wrong.")+" Answer: "+q.Choices[q.Answer])
			if fb.CascadeStarted {
				fmt.Fprintln(out, theme.Hint.Render("We'll rebuild this one from an easier angle."))
			} else if fb.Requeued {
				fmt.Fprintln(out, theme.Hint.Render("That one comes back later."))
			}
		}
	}

	rating := 0
	if !abandoned {
		rating = readRating(in, out)
	}

	var result session.Result
	var err error
	if abandoned {
		ls, result, err = sess.Abandon(ctx, ls, rating)
	} else {
		ls, result, err = sess.Finish(ctx, ls, rating)
	}
	if err != nil {
		return ls, session.Result{}, err
	}

	sync.Mark(ls.ToSnapshot())
	return ls, result, nil
}

// readChoice prompts until it gets a valid 1-based choice; quit on "q" or EOF.
func readChoice(in *bufio.Scanner, out io.Writer, choices int) (int, bool) {
	for {
		fmt.Fprint(out, theme.Hint.Render("answer (q to quit): "))
		if !in.Scan() {
			fmt.Fprintln(out)
			return 0, true
		}
		text := strings.TrimSpace(in.Text())
		if strings.EqualFold(text, "q") {
			return 0, true
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > choices {
			fmt.Fprintf(out, "Enter a number between 1 and %d.\n", choices)
			continue
		}
		return n - 1, false
	}
}

// readRating reads an optional 1-5 lesson rating, 0 when skipped.
func readRating(in *bufio.Scanner, out io.Writer) int {
	fmt.Fprint(out, "\n"+theme.Hint.Render("Rate this lesson 1-5 (enter to skip): "))
	if !in.Scan() {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil || n < 1 || n > 5 {
		return 0
	}
	return n
}

func printSummary(out io.Writer, ls session.LearnerState, result session.Result) {
	fmt.Fprintln(out)
	if result.Completed && result.AllMastered {
		fmt.Fprintln(out, theme.Correct.Render("Lesson complete!"))
	} else if result.Completed {
		fmt.Fprintln(out, theme.Title.Render("Lesson finished."))
	} else {
		fmt.Fprintln(out, theme.Subtitle.Render("Session abandoned."))
	}

	fmt.Fprintf(out, "Mastered:  %d/%d concepts  %s\n",
		result.MasteredConcepts, result.TotalConcepts,
		theme.Bar(ratio(result.MasteredConcepts, result.TotalConcepts), 20))
	fmt.Fprintf(out, "Accuracy:  %.0f%% over %d questions\n", result.Accuracy*100, result.Attempts)
	if result.XPAwarded > 0 {
		fmt.Fprintf(out, "XP:        +%d (total %d)\n", result.XPAwarded, ls.XP)
	}
	fmt.Fprintf(out, "Streak:    %s   Hearts: %d/%d\n",
		theme.Streak.Render(fmt.Sprintf("%d days", ls.StreakDays)), ls.Hearts, session.MaxHearts)
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// loadLearnerState restores the learner from the latest snapshot, or starts
// a fresh profile when none exists.
func loadLearnerState(ctx context.Context, st *store.Store) (session.LearnerState, error) {
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return session.LearnerState{}, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return session.NewLearnerState(), nil
	}
	return session.FromSnapshot(snap.Data), nil
}

// snapshotWriter adapts the snapshot repository to the syncer's WriteFunc.
func snapshotWriter(st *store.Store) syncer.WriteFunc {
	return func(ctx context.Context, data store.SnapshotData) error {
		seq, err := st.NextSequence(ctx)
		if err != nil {
			return err
		}
		repo := st.SnapshotRepo()
		if err := repo.Save(ctx, &store.Snapshot{
			Sequence:  seq,
			Timestamp: time.Now(),
			Data:      data,
		}); err != nil {
			return err
		}
		return repo.Prune(ctx, snapshotsToKeep)
	}
}

// chooseLesson resolves the named lesson, or asks the recommender for the
// best next one.
func chooseLesson(args []string, ls session.LearnerState) (catalog.Lesson, error) {
	if len(args) == 1 {
		return catalog.GetLesson(args[0])
	}

	candidates := catalog.Candidates(ls.Completed)
	if len(candidates) == 0 {
		return catalog.Lesson{}, fmt.Errorf("all lessons completed; use 'lingua quiz <lesson-id>' to replay one")
	}
	recs := recommend.Recommend(ls.Context(time.Now()), ls.Bandit, candidates, 1)
	if len(recs) == 0 {
		return catalog.Lesson{}, fmt.Errorf("no recommendation available")
	}
	lesson, err := catalog.GetLesson(recs[0].LessonID)
	if err != nil {
		return catalog.Lesson{}, err
	}
	fmt.Println(theme.Subtitle.Render(recs[0].Reason))
	return lesson, nil
}
