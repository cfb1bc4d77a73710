package store

import (
	"context"

	"github.com/abhisek/prepcoach/internal/progress"
)

// ProfileRepo manages per-user progress documents.
// A user's document is loaded and saved as a whole; Update serializes
// concurrent mutations for the same user.
type ProfileRepo interface {
	// Load returns the user's profile, or a fresh empty profile if the
	// user has no saved state yet.
	Load(ctx context.Context, userID string) (*progress.Profile, error)

	// Save persists the full profile document.
	Save(ctx context.Context, p *progress.Profile) error

	// Update loads the profile, applies fn, and saves the result.
	// Calls for the same user are serialized; calls for different
	// users may proceed concurrently.
	Update(ctx context.Context, userID string, fn func(p *progress.Profile) error) (*progress.Profile, error)
}

// AnswerEventData captures a single answered question.
type AnswerEventData struct {
	UserID           string
	QuestionID       string
	Subject          string
	Topic            string
	QuestionType     string
	Correct          bool
	TimeTakenSeconds float64
	Concepts         []string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageRow is an aggregate of LLM requests for one model.
type LLMUsageRow struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendAnswer records an answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage aggregates recorded LLM requests per model.
	LLMUsage(ctx context.Context) ([]LLMUsageRow, error)
}

// ChunkData is a persisted content chunk with its embedding.
type ChunkData struct {
	Position  int
	Text      string
	Embedding []float32
}

// ChunkRepo manages the reference-material chunk corpus.
type ChunkRepo interface {
	// ReplaceSubject atomically replaces all chunks for a subject.
	// Called once per index build.
	ReplaceSubject(ctx context.Context, subject string, chunks []ChunkData) error

	// BySubject returns all chunks for a subject in document order.
	BySubject(ctx context.Context, subject string) ([]ChunkData, error)
}

// KnownQuestionData is an entry for the deduplication corpus.
type KnownQuestionData struct {
	Subject        string
	Topic          string
	Text           string
	NormalizedText string
}

// KnownQuestionRepo manages the deduplication corpus.
type KnownQuestionRepo interface {
	// AddBatch inserts entries, skipping writes that fail the schema.
	AddBatch(ctx context.Context, entries []KnownQuestionData) error

	// AllNormalized returns every normalized question text.
	AllNormalized(ctx context.Context) ([]string, error)
}
