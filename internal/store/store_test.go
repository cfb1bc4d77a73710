package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepcoach/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileLoadEmptyReturnsFresh(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Profiles().Load(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", p.UserID)
	require.NotNil(t, p.QuestionTypes[progress.TypeMCQ])
	require.Zero(t, p.TotalAttempted)
}

func TestProfileSaveAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := progress.NewProfile("u1")
	tp := p.Topic("physics", "optics")
	tp.MasteryLevel = 3
	tp.TotalAttempts = 12
	tp.CorrectAttempts = 10
	p.TotalAttempted = 12
	p.TotalCorrect = 10

	require.NoError(t, s.Profiles().Save(ctx, p))

	got, err := s.Profiles().Load(ctx, "u1")
	require.NoError(t, err)

	gotTP := got.Topic("physics", "optics")
	require.Equal(t, 3, gotTP.MasteryLevel)
	require.Equal(t, 12, gotTP.TotalAttempts)
	require.Equal(t, 10, gotTP.CorrectAttempts)
	require.Equal(t, 12, got.TotalAttempted)

	// Maps are re-seeded on load.
	require.NotNil(t, got.QuestionTypes[progress.TypeNumerical])
}

func TestProfileUpdateSerializesPerUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Profiles().Update(ctx, "u1", func(p *progress.Profile) error {
				p.TotalAttempted++
				return nil
			})
			if err != nil {
				t.Errorf("update: %v", err)
			}
		}()
	}
	wg.Wait()

	p, err := s.Profiles().Load(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, n, p.TotalAttempted)
}

func TestAppendAnswerEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendAnswer(ctx, AnswerEventData{
		UserID:           "u1",
		QuestionID:       "q-1",
		Subject:          "physics",
		Topic:            "mechanics",
		QuestionType:     "mcq",
		Correct:          true,
		TimeTakenSeconds: 42.5,
		Concepts:         []string{"kinematics"},
	})
	require.NoError(t, err)
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 200, OutputTokens: 80, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for _, e := range events {
		require.NoError(t, s.Events().AppendLLMRequest(ctx, e))
	}

	rows, err := s.Events().LLMUsage(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byModel := make(map[string]LLMUsageRow)
	for _, r := range rows {
		byModel[r.Model] = r
	}
	flash := byModel["gemini-2.0-flash"]
	require.Equal(t, 2, flash.Requests)
	require.Equal(t, 1, flash.Failures)
	require.Equal(t, 300, flash.InputTokens)
	require.Equal(t, 130, flash.OutputTokens)
}

func TestChunkReplaceAndLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := []ChunkData{
		{Position: 0, Text: "Newton's first law.", Embedding: []float32{1, 0}},
		{Position: 1, Text: "Newton's second law.", Embedding: []float32{0, 1}},
	}
	require.NoError(t, s.Chunks().ReplaceSubject(ctx, "physics", first))

	second := []ChunkData{
		{Position: 0, Text: "Work-energy theorem.", Embedding: []float32{1, 1}},
	}
	require.NoError(t, s.Chunks().ReplaceSubject(ctx, "physics", second))

	got, err := s.Chunks().BySubject(ctx, "physics")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Work-energy theorem.", got[0].Text)
	require.Equal(t, []float32{1, 1}, got[0].Embedding)
}

func TestKnownQuestions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.KnownQuestions().AddBatch(ctx, []KnownQuestionData{
		{Subject: "physics", Topic: "optics", Text: "What Is  Snell's law?", NormalizedText: "what is snell's law?"},
		{Subject: "maths", Topic: "algebra", Text: "", NormalizedText: ""},
	})
	require.NoError(t, err)

	normalized, err := s.KnownQuestions().AllNormalized(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"what is snell's law?"}, normalized)
}
