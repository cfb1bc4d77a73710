package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an exam coach creating practice questions for competitive-exam candidates.

Rules:
- Generate a single question strictly based on the provided reference material. Do not invent facts outside it.
- Use plain text for all math and chemistry. No LaTeX, no Unicode symbols.
- The question text should be clear, self-contained, and exam-realistic for the given subject and difficulty.
- The solution must be correct and show the working step by step.
- For "mcq" questions, provide exactly 4 options in order A through D where exactly one is correct, and set correct_answer to that option's label. Distractors should reflect plausible mistakes, not random values.
- For "numerical" questions, leave options empty and set correct_answer to the numeric answer as a string.
- List the concepts the question exercises as short bullet phrases.
- Include a short hint when one genuinely helps; otherwise leave it empty.`

// buildUserMessage constructs the user message for one synthesis request.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Question type: %s\n", input.Type)

	if len(input.ConceptReview) > 0 {
		b.WriteString("\nThe candidate is struggling with these concepts. The question should revisit at least one of them:\n")
		for i, c := range input.ConceptReview {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c)
		}
	}

	b.WriteString("\nReference material:\n")
	b.WriteString(input.GroundingText)

	return b.String()
}
