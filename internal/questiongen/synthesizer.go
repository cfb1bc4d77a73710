package questiongen

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepcoach/internal/llm"
)

// Synthesizer produces practice questions through the LLM provider,
// absorbing every generation failure into a fallback question. Callers
// never receive an error from Synthesize; they can branch on IsFallback
// and GenerationStatus instead.
type Synthesizer struct {
	provider llm.Provider
	cache    *Cache
	config   Config
}

// New creates a Synthesizer with the given provider, shared cache, and config.
func New(provider llm.Provider, cache *Cache, cfg Config) *Synthesizer {
	return &Synthesizer{provider: provider, cache: cache, config: cfg}
}

// Synthesize produces one question for the given input.
//
// Without grounding text it short-circuits to a fallback before touching
// the provider. A timeout or transport error falls back immediately;
// malformed output is regenerated up to the configured attempt bound,
// each attempt with a fresh timeout window, before falling back.
func (s *Synthesizer) Synthesize(ctx context.Context, input Input) *GeneratedQuestion {
	if input.GroundingText == "" {
		return fallbackQuestion(input, StatusNoGrounding)
	}

	if cached := s.cache.Get(input.Subject, input.Topic, input.Difficulty); cached != nil {
		return cached
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	for attempt := 0; attempt < s.config.ParseAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.config.ParseBackoff):
			case <-ctx.Done():
				return fallbackQuestion(input, StatusTimeout)
			}
		}

		resp, err := s.generateOnce(ctx, req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fallbackQuestion(input, StatusTimeout)
			}
			return fallbackQuestion(input, StatusGenerationError)
		}

		raw, err := parseQuestion(resp.Content)
		if err != nil {
			continue
		}
		if err := validateOutput(raw, input, s.config.MinQuestionLength); err != nil {
			continue
		}

		return s.accept(raw, input)
	}

	return fallbackQuestion(input, StatusParseFailure)
}

// generateOnce runs one provider call under the hard timeout. The call
// runs off the calling goroutine so a hung provider cannot block the
// orchestrator past the deadline.
func (s *Synthesizer) generateOnce(ctx context.Context, req llm.Request) (*llm.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	type result struct {
		resp *llm.Response
		err  error
	}
	done := make(chan result, 1)

	go func() {
		resp, err := s.provider.Generate(ctx, req)
		done <- result{resp, err}
	}()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// accept turns a validated output into a GeneratedQuestion, flags
// duplicates against the known-question set, and records the result in
// the shared cache.
func (s *Synthesizer) accept(raw *questionOutput, input Input) *GeneratedQuestion {
	q := &GeneratedQuestion{
		ID:            uuid.NewString(),
		Subject:       input.Subject,
		Topic:         input.Topic,
		Text:          raw.Question,
		Type:          input.Type,
		Options:       raw.Options,
		CorrectAnswer: raw.CorrectAnswer,
		Solution:      raw.Solution,
		Hint:          raw.Hint,
		Concepts:      raw.Concepts,
		Difficulty:    input.Difficulty,
	}

	q.Duplicate = s.cache.IsKnown(q.Text)
	if !q.Duplicate {
		s.cache.AddKnown(q.Text)
	}
	s.cache.Put(q)

	return q
}
