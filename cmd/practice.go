package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/prepcoach/internal/app"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an interactive practice session",
	Long:  "Generates personalized questions, prompts for answers, and records each attempt against your mastery profile.",
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

		user := resolveUser(cmd)
		questions, err := a.Orchestrator.GenerateBatch(ctx, user, subject, topic, count)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		correct := 0

		for i, q := range questions {
			fmt.Println(renderQuestion(i+1, q))

			start := time.Now()
			answer, err := promptAnswer(reader)
			if err != nil {
				return err
			}
			taken := time.Since(start).Seconds()

			isCorrect := strings.EqualFold(answer, q.CorrectAnswer)
			if isCorrect {
				correct++
				fmt.Println(correctStyle.Render("Correct!"))
			} else {
				fmt.Println(wrongStyle.Render(fmt.Sprintf("Incorrect. The answer is %s.", q.CorrectAnswer)))
			}
			fmt.Println(dimStyle.Render("Solution: " + q.Solution))
			fmt.Println()

			res, err := a.Orchestrator.RecordAnswer(ctx, user, q.ID, isCorrect, taken, q.Concepts)
			if err != nil {
				return err
			}
			fmt.Println(dimStyle.Render(fmt.Sprintf("%s/%s: level %d, accuracy %.0f%%",
				res.Subject, res.Topic, res.MasteryLevel, res.Accuracy*100)))
			fmt.Println()
		}

		fmt.Printf("Session complete: %d/%d correct.\n", correct, len(questions))
		return nil
	},
}

// promptAnswer reads one answer line, e.g. "B" or "42".
func promptAnswer(reader *bufio.Reader) (string, error) {
	fmt.Print("\nYour answer: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	practiceCmd.Flags().StringP("subject", "s", "", "Pin the subject (e.g. physics)")
	practiceCmd.Flags().StringP("topic", "t", "", "Pin the topic (requires --subject)")
	practiceCmd.Flags().IntP("count", "n", 5, "Number of questions in the session")
}
