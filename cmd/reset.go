package cmd

import (
	"fmt"

	"github.com/abhisek/prepcoach/internal/progress"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a user's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		user := resolveUser(cmd)

		if !yes {
			return fmt.Errorf("this erases all progress for %q; re-run with --yes to confirm", user)
		}

		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Profiles().Save(ctx, progress.NewProfile(user)); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}

		fmt.Printf("Progress for %q reset.\n", user)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
