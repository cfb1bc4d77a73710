package cmd

import (
	"fmt"

	"github.com/abhisek/prepcoach/internal/app"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate personalized practice questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")

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

		questions, err := a.Orchestrator.GenerateBatch(ctx, resolveUser(cmd), subject, topic, count)
		if err != nil {
			return err
		}

		for i, q := range questions {
			fmt.Println(renderQuestion(i+1, q))
			fmt.Println()
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("subject", "s", "", "Pin the subject (e.g. physics)")
	generateCmd.Flags().StringP("topic", "t", "", "Pin the topic (requires --subject)")
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions to generate")
}
