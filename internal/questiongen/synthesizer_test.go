package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/prepcoach/internal/llm"
)

const validMCQJSON = `{"question":"A particle moves at 5 m/s for 10 s. What distance does it cover?","question_type":"mcq","options":["50 m","25 m","15 m","2 m"],"correct_answer":"A","solution":"distance = speed * time = 5 * 10 = 50 m","hint":"","concepts":["kinematics","uniform motion"]}`

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Timeout = 200 * time.Millisecond
	cfg.ParseBackoff = time.Millisecond
	return cfg
}

func testInput() Input {
	return Input{
		Subject:       "physics",
		Topic:         "kinematics",
		Difficulty:    DifficultyEasy,
		Type:          TypeMCQ,
		GroundingText: "An object in uniform motion covers distance = speed * time.",
	}
}

func TestSynthesize_NoGroundingShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(mock, NewCache(), testConfig())

	input := testInput()
	input.GroundingText = ""

	q := s.Synthesize(context.Background(), input)

	if !q.IsFallback {
		t.Fatal("expected fallback")
	}
	if q.GenerationStatus != StatusNoGrounding {
		t.Errorf("expected status %q, got %q", StatusNoGrounding, q.GenerationStatus)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 placeholder options, got %d", len(q.Options))
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no generative call, got %d", mock.CallCount())
	}
}

func TestSynthesize_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})
	s := New(mock, NewCache(), testConfig())

	q := s.Synthesize(context.Background(), testInput())

	if q.IsFallback {
		t.Fatalf("unexpected fallback: %s", q.GenerationStatus)
	}
	if q.ID == "" {
		t.Error("expected non-empty ID")
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("unexpected answer: %q", q.CorrectAnswer)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Duplicate {
		t.Error("fresh question flagged as duplicate")
	}
}

func TestSynthesize_TransportErrorFallsBackImmediately(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("connection refused")})
	s := New(mock, NewCache(), testConfig())

	q := s.Synthesize(context.Background(), testInput())

	if q.GenerationStatus != StatusGenerationError {
		t.Errorf("expected status %q, got %q", StatusGenerationError, q.GenerationStatus)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected no retry after transport error, got %d calls", mock.CallCount())
	}
}

func TestSynthesize_MalformedThenValid(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"sorry, I could not produce JSON"`)},
		llm.MockResponse{Content: json.RawMessage(validMCQJSON)},
	)
	s := New(mock, NewCache(), testConfig())

	q := s.Synthesize(context.Background(), testInput())

	if q.IsFallback {
		t.Fatalf("unexpected fallback: %s", q.GenerationStatus)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestSynthesize_ParseRetriesExhausted(t *testing.T) {
	bad := llm.MockResponse{Content: json.RawMessage(`"still not JSON"`)}
	mock := llm.NewMockProvider(bad, bad, bad)
	cfg := testConfig()
	s := New(mock, NewCache(), cfg)

	q := s.Synthesize(context.Background(), testInput())

	if q.GenerationStatus != StatusParseFailure {
		t.Errorf("expected status %q, got %q", StatusParseFailure, q.GenerationStatus)
	}
	if mock.CallCount() != cfg.ParseAttempts {
		t.Errorf("expected %d attempts, got %d", cfg.ParseAttempts, mock.CallCount())
	}
}

func TestSynthesize_ValidationFailureRetries(t *testing.T) {
	// Three options instead of four fails validation, same as a parse
	// failure.
	threeOptions := `{"question":"Pick the unit of force from the list below.","question_type":"mcq","options":["newton","joule","watt"],"correct_answer":"A","solution":"Force is measured in newtons.","hint":"","concepts":["units"]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(threeOptions)},
		llm.MockResponse{Content: json.RawMessage(validMCQJSON)},
	)
	s := New(mock, NewCache(), testConfig())

	q := s.Synthesize(context.Background(), testInput())

	if q.IsFallback {
		t.Fatalf("unexpected fallback: %s", q.GenerationStatus)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

// hangingProvider blocks until the context is cancelled.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingProvider) ModelID() string { return "hanging" }

func TestSynthesize_TimeoutFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = 20 * time.Millisecond
	s := New(hangingProvider{}, NewCache(), cfg)

	start := time.Now()
	q := s.Synthesize(context.Background(), testInput())
	elapsed := time.Since(start)

	if q.GenerationStatus != StatusTimeout {
		t.Errorf("expected status %q, got %q", StatusTimeout, q.GenerationStatus)
	}
	if elapsed > time.Second {
		t.Errorf("timeout fallback took too long: %v", elapsed)
	}
}

func TestSynthesize_DuplicateFlagged(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})
	cache := NewCache()
	cache.LoadKnown([]string{Normalize("A particle moves at 5 m/s for 10  s. What distance does it cover?")})
	s := New(mock, cache, testConfig())

	q := s.Synthesize(context.Background(), testInput())

	if q.IsFallback {
		t.Fatalf("unexpected fallback: %s", q.GenerationStatus)
	}
	if !q.Duplicate {
		t.Error("expected duplicate flag for known question text")
	}
}

func TestSynthesize_CacheServesRepeatCoordinate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validMCQJSON)})
	s := New(mock, NewCache(), testConfig())

	first := s.Synthesize(context.Background(), testInput())
	second := s.Synthesize(context.Background(), testInput())

	if mock.CallCount() != 1 {
		t.Fatalf("expected cache hit on second call, got %d provider calls", mock.CallCount())
	}
	if second.Text != first.Text {
		t.Error("cached question text differs")
	}
	if second.ID == first.ID {
		t.Error("expected a fresh ID for the cached copy")
	}
}
