package questiongen

import (
	"fmt"

	"github.com/google/uuid"
)

// fallbackQuestion builds the deterministic placeholder returned when
// synthesis cannot produce a real question. Downstream code always
// receives a fully populated record regardless of the failure mode.
func fallbackQuestion(input Input, reason string) *GeneratedQuestion {
	return &GeneratedQuestion{
		ID:      uuid.NewString(),
		Subject: input.Subject,
		Topic:   input.Topic,
		Text: fmt.Sprintf("Review question for %s (%s): revisit your notes on %s and summarize the key result.",
			input.Topic, input.Subject, input.Topic),
		Type: TypeMCQ,
		Options: []string{
			"I have reviewed this topic",
			"I need to revisit the basics",
			"I need worked examples",
			"I will come back to this later",
		},
		CorrectAnswer:    OptionLabels[0],
		Solution:         fmt.Sprintf("A fresh question for %s could not be generated. Review the topic material and retry.", input.Topic),
		Concepts:         []string{input.Topic},
		Difficulty:       input.Difficulty,
		IsFallback:       true,
		GenerationStatus: reason,
	}
}
