package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/recommend"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show the top recommended lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("top")

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

		candidates := catalog.Candidates(ls.Completed)
		if len(candidates) == 0 {
			fmt.Println("All lessons completed. ¡Enhorabuena!")
			return nil
		}

		recs := recommend.Recommend(ls.Context(time.Now()), ls.Bandit, candidates, n)

		fmt.Printf("%-24s  %-14s  %-12s  %6s  %s\n",
			"Lesson", "Domain", "Difficulty", "Score", "Why")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range recs {
			lesson, err := catalog.GetLesson(r.LessonID)
			if err != nil {
				return err
			}
			fmt.Printf("%-24s  %-14s  %-12s  %6.2f  %s\n",
				lesson.ID,
				catalog.DomainDisplayName(lesson.Domain),
				lesson.Difficulty.Label(),
				r.Score,
				theme.Subtitle.Render(r.Reason))
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntP("top", "n", 3, "Number of lessons to show")
}
