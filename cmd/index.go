package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/prepcoach/internal/app"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index <subject> <file>",
	Short: "Build the content index for a subject from a reference file",
	Long:  "Splits the reference material into chunks, embeds them, and persists the index. Question generation for the subject is grounded in this corpus.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, path := args[0], args[1]

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

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

		n, err := a.Index.Build(ctx, subject, string(content))
		if err != nil {
			return fmt.Errorf("build index: %w", err)
		}
		if err := a.Index.Save(ctx, a.Store.Chunks(), subject); err != nil {
			return fmt.Errorf("persist index: %w", err)
		}

		fmt.Printf("Indexed %d chunks for %s.\n", n, subject)
		return nil
	},
}
