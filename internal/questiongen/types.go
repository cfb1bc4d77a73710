package questiongen

// QuestionType describes how the candidate answers a question.
type QuestionType string

const (
	// TypeMCQ means the candidate picks from 4 labeled options.
	TypeMCQ QuestionType = "mcq"

	// TypeNumerical means the candidate types a numeric answer.
	TypeNumerical QuestionType = "numerical"
)

// Difficulty is a coarse question difficulty band.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// OptionLabels are the identifiers for multiple-choice options, in order.
var OptionLabels = [4]string{"A", "B", "C", "D"}

// Generation status reason codes recorded on fallback questions.
const (
	StatusNoGrounding     = "no_grounding_content"
	StatusTimeout         = "timeout"
	StatusGenerationError = "generation_error"
	StatusParseFailure    = "parse_failure"
)

// GeneratedQuestion is a synthesized practice question ready for delivery.
type GeneratedQuestion struct {
	// ID uniquely identifies this question instance.
	ID string

	Subject string
	Topic   string

	// Text is the question prompt shown to the candidate.
	Text string

	// Type selects the answer format.
	Type QuestionType

	// Options holds exactly 4 option texts for mcq questions, in label
	// order (A through D). Empty for numerical questions.
	Options []string

	// CorrectAnswer is the label ("A"-"D") of the correct option for mcq
	// questions, or the numeric answer as a string for numerical ones.
	CorrectAnswer string

	// Solution is the step-by-step worked solution.
	Solution string

	// Hint is an optional short hint. Empty when none was generated.
	Hint string

	// Concepts lists the short concept bullets this question exercises.
	Concepts []string

	Difficulty Difficulty

	// IsFallback is true when generation could not produce a real question
	// and a canned placeholder was substituted.
	IsFallback bool

	// GenerationStatus carries the fallback reason code. Empty for real
	// questions.
	GenerationStatus string

	// Duplicate is true when the question's normalized text matched a
	// known question. The caller decides whether to accept or regenerate.
	Duplicate bool
}

// Input holds all context needed to synthesize one question.
type Input struct {
	Subject    string
	Topic      string
	Difficulty Difficulty
	Type       QuestionType

	// GroundingText is the retrieved reference material the question must
	// be based on. Empty means no grounding content was found.
	GroundingText string

	// ConceptReview lists weak concepts to reinforce. When non-empty the
	// prompt asks for a question that revisits these concepts.
	ConceptReview []string
}
