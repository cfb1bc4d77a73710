package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepcoach/internal/llm"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		usage, err := st.Events().LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(usage) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Printf("%-32s  %6s  %6s  %10s  %10s  %9s\n",
			"Model", "Calls", "Fails", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 82))

		var totalCost float64
		var unknownModels []string
		for _, u := range usage {
			cost := llm.LookupCost(u.Model)
			if cost == nil {
				unknownModels = append(unknownModels, u.Model)
				fmt.Printf("%-32s  %6d  %6d  %10d  %10d  %9s\n",
					truncate(u.Model, 32), u.Requests, u.Failures, u.InputTokens, u.OutputTokens, "?")
				continue
			}
			c := cost.Cost(u.InputTokens, u.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %6d  %10d  %10d  %9s\n",
				truncate(u.Model, 32), u.Requests, u.Failures, u.InputTokens, u.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 82))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %6s  %10s  %10s  %9s\n",
			label, "", "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
