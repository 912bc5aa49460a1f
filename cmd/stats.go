package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/session"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("sessions")

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

		fmt.Println(theme.Title.Render("Progress"))
		fmt.Printf("XP: %d   Streak: %s   Hearts: %d/%d   Lessons done: %d\n",
			ls.XP,
			theme.Streak.Render(fmt.Sprintf("%d days", ls.StreakDays)),
			ls.Hearts, session.MaxHearts,
			len(ls.Completed))

		fmt.Println()
		fmt.Println(theme.Title.Render("Skills"))
		for _, d := range catalog.AllDomains() {
			score := ls.Skills.Score(d)
			fmt.Printf("%-14s %s %3.0f\n",
				catalog.DomainDisplayName(d), theme.Bar(score/100, 20), score)
		}

		domains, err := st.EventRepo().DomainAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}
		if len(domains) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Answer Accuracy"))
			for _, d := range domains {
				fmt.Printf("%-14s %4.0f%%  (%d answers)\n",
					catalog.DomainDisplayName(catalog.Domain(d.Domain)),
					d.Accuracy()*100, d.Attempts)
			}
		}

		sessions, err := st.EventRepo().RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Recent Sessions"))
			fmt.Printf("%-16s  %-24s  %-9s  %-8s  %s\n",
				"When", "Lesson", "Mastered", "Correct", "Time")
			fmt.Println(strings.Repeat("─", 72))
			for _, s := range sessions {
				fmt.Printf("%-16s  %-24s  %4d/%-4d  %3d/%-4d  %ds\n",
					s.Timestamp.Local().Format("2006-01-02 15:04"),
					s.LessonID,
					s.MasteredConcepts, s.TotalConcepts,
					s.CorrectAnswers, s.QuestionsServed,
					s.DurationSecs)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to show")
}
