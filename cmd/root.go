package cmd

import (
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepcoach",
	Short: "Adaptive exam practice coach",
	Long:  "Prepcoach — terminal practice-question engine that tracks per-topic mastery, schedules spaced reviews, and generates questions grounded in your reference material.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPCOACH_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "default", "User id to track progress under")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveUser(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "default"
	}
	return u
}
