package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/prepcoach/internal/spacedrep"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/abhisek/prepcoach/internal/weakness"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery, weak areas, and review status",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		user := resolveUser(cmd)
		p, err := st.Profiles().Load(ctx, user)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		fmt.Println(headerStyle.Render("Progress for " + user))
		fmt.Printf("Attempted: %d   Correct: %d\n\n", p.TotalAttempted, p.TotalCorrect)

		if len(p.Subjects) == 0 {
			fmt.Println("No topics attempted yet.")
			return nil
		}

		fmt.Printf("%-14s  %-24s  %-6s  %-9s  %s\n", "Subject", "Topic", "Level", "Accuracy", "Attempts")
		fmt.Println(strings.Repeat("─", 68))

		subjects := make([]string, 0, len(p.Subjects))
		for s := range p.Subjects {
			subjects = append(subjects, s)
		}
		sort.Strings(subjects)

		for _, subject := range subjects {
			topics := make([]string, 0, len(p.Subjects[subject]))
			for t := range p.Subjects[subject] {
				topics = append(topics, t)
			}
			sort.Strings(topics)

			for _, topic := range topics {
				tp := p.Subjects[subject][topic]
				fmt.Printf("%-14s  %-24s  %-6d  %8.0f%%  %d\n",
					subject, topic, tp.MasteryLevel, tp.Accuracy()*100, tp.TotalAttempts)
			}
		}

		areas := weakness.Analyze(p)
		if len(areas.Topics)+len(areas.QuestionTypes)+len(areas.Concepts) > 0 {
			fmt.Println()
			fmt.Println(headerStyle.Render("Weak areas"))
			if len(areas.Topics) > 0 {
				fmt.Println("Topics:   ", strings.Join(areas.Topics, ", "))
			}
			if len(areas.QuestionTypes) > 0 {
				fmt.Println("Types:    ", strings.Join(areas.QuestionTypes, ", "))
			}
			if len(areas.Concepts) > 0 {
				fmt.Println("Concepts: ", strings.Join(areas.Concepts, ", "))
			}
		}

		due := spacedrep.DueTopics(p, time.Now())
		fmt.Printf("\nTopics due for review: %d\n", len(due))
		return nil
	},
}
