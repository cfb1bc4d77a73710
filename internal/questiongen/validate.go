package questiongen

import "fmt"

// validateOutput checks a parsed response against the output contract for
// the requested question type. Failures are retried the same way parse
// failures are.
func validateOutput(raw *questionOutput, input Input, minQuestionLength int) error {
	if len(raw.Question) < minQuestionLength {
		return fmt.Errorf("question text shorter than %d characters", minQuestionLength)
	}
	if raw.CorrectAnswer == "" {
		return fmt.Errorf("correct_answer is empty")
	}
	if raw.Solution == "" {
		return fmt.Errorf("solution is empty")
	}

	switch input.Type {
	case TypeMCQ:
		if len(raw.Options) != len(OptionLabels) {
			return fmt.Errorf("expected %d options, got %d", len(OptionLabels), len(raw.Options))
		}
		for i, opt := range raw.Options {
			if opt == "" {
				return fmt.Errorf("option %s is empty", OptionLabels[i])
			}
		}
		if !validLabel(raw.CorrectAnswer) {
			return fmt.Errorf("correct_answer %q is not an option label", raw.CorrectAnswer)
		}
	case TypeNumerical:
		if len(raw.Options) != 0 {
			return fmt.Errorf("numerical question must not have options, got %d", len(raw.Options))
		}
	default:
		return fmt.Errorf("unknown question type: %q", input.Type)
	}

	return nil
}

func validLabel(answer string) bool {
	for _, l := range OptionLabels {
		if answer == l {
			return true
		}
	}
	return false
}
