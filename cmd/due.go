package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/prepcoach/internal/app"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List topics due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		a, err := app.New(ctx, app.Options{DBPath: dbPath})
		if err != nil {
			return err
		}
		defer a.Close()

		due, err := a.Orchestrator.ListDueTopics(ctx, resolveUser(cmd), time.Now())
		if err != nil {
			return err
		}

		if len(due) == 0 {
			fmt.Println("Nothing due for review. Nice.")
			return nil
		}

		fmt.Printf("%-14s  %-24s  %s\n", "Subject", "Topic", "Overdue")
		for _, d := range due {
			fmt.Printf("%-14s  %-24s  %s\n", d.Subject, d.Topic, formatOverdue(d.Overdue))
		}
		return nil
	},
}

func formatOverdue(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return "today"
}
