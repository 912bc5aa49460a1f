package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/session"
	"github.com/abhisek/lingua/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	Long:  "Write a fresh learner snapshot, discarding skills, XP, streak, and recommender state. The event history stays intact.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This resets all progress. Type 'reset' to confirm: ")
			in := bufio.NewScanner(os.Stdin)
			if !in.Scan() || strings.TrimSpace(in.Text()) != "reset" {
				fmt.Println("Aborted.")
				return nil
			}
		}

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

		if err := snapshotWriter(st)(ctx, session.NewLearnerState().ToSnapshot()); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
