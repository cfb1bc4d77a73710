package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/prepcoach/internal/progress"
	"github.com/abhisek/prepcoach/internal/questiongen"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/abhisek/prepcoach/internal/weakness"
)

// fakeProfiles is an in-memory ProfileRepo.
type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*progress.Profile
	loadErr  error
	saveErr  error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[string]*progress.Profile)}
}

func (f *fakeProfiles) Load(_ context.Context, userID string) (*progress.Profile, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return progress.NewProfile(userID), nil
}

func (f *fakeProfiles) Save(_ context.Context, p *progress.Profile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeProfiles) Update(_ context.Context, userID string, fn func(p *progress.Profile) error) (*progress.Profile, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	// Serialized per store, which subsumes per-user serialization.
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		p = progress.NewProfile(userID)
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.profiles[userID] = p
	return p, nil
}

// fakeEvents records appended events.
type fakeEvents struct {
	mu      sync.Mutex
	answers []store.AnswerEventData
}

func (f *fakeEvents) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, data)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEvents) LLMUsage(_ context.Context) ([]store.LLMUsageRow, error) {
	return nil, nil
}

// fakeKnown records added known questions.
type fakeKnown struct {
	mu      sync.Mutex
	entries []store.KnownQuestionData
}

func (f *fakeKnown) AddBatch(_ context.Context, entries []store.KnownQuestionData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeKnown) AllNormalized(_ context.Context) ([]string, error) {
	return nil, nil
}

// fakeGrounding always returns the same reference text.
type fakeGrounding struct{}

func (fakeGrounding) GroundingText(_ context.Context, subject, topic string) (string, error) {
	return "reference material for " + subject + "/" + topic, nil
}

// echoSynth returns a question echoing its input, with an optional delay
// varied per call to force out-of-order completion.
type echoSynth struct {
	mu    sync.Mutex
	seq   int
	delay func(seq int) time.Duration
}

func (s *echoSynth) Synthesize(_ context.Context, input questiongen.Input) *questiongen.GeneratedQuestion {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	if s.delay != nil {
		time.Sleep(s.delay(seq))
	}

	return &questiongen.GeneratedQuestion{
		ID:         fmt.Sprintf("q-%d", seq),
		Subject:    input.Subject,
		Topic:      input.Topic,
		Text:       fmt.Sprintf("Practice question %d on %s covering the core ideas.", seq, input.Topic),
		Type:       input.Type,
		Difficulty: input.Difficulty,
		Concepts:   []string{input.Topic},
	}
}

func newTestOrchestrator(cfg Config, seed uint64) (*Orchestrator, *fakeProfiles, *fakeEvents, *fakeKnown) {
	profiles := newFakeProfiles()
	events := &fakeEvents{}
	known := &fakeKnown{}
	o := New(Deps{
		Profiles:  profiles,
		Events:    events,
		Known:     known,
		Grounding: fakeGrounding{},
		Synth:     &echoSynth{},
		Rand:      rand.New(rand.NewPCG(seed, 0)),
	}, cfg)
	return o, profiles, events, known
}

func TestGenerateBatch_CountAndOrder(t *testing.T) {
	const count = 8
	cfg := DefaultConfig()
	cfg.Workers = 3

	// Two orchestrators with identically seeded sources plan identical
	// batches; one plans only, one generates with staggered completion.
	planner, _, _, _ := newTestOrchestrator(cfg, 42)
	profile := progress.NewProfile("u1")
	expected := planner.planBatch(profile, weakness.Analyze(profile), "", "", count)

	o, _, _, _ := newTestOrchestrator(cfg, 42)
	o.synth = &echoSynth{delay: func(seq int) time.Duration {
		// Later requests finish sooner.
		return time.Duration(10-seq) * time.Millisecond
	}}

	results, err := o.GenerateBatch(context.Background(), "u1", "", "", count)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != count {
		t.Fatalf("expected %d results, got %d", count, len(results))
	}
	for i, q := range results {
		if q == nil {
			t.Fatalf("result %d is nil", i)
		}
		if q.Subject != expected[i].Subject || q.Topic != expected[i].Topic {
			t.Errorf("result %d: got %s/%s, want %s/%s",
				i, q.Subject, q.Topic, expected[i].Subject, expected[i].Topic)
		}
	}
}

func TestGenerateBatch_WeakTopicBias(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeakTopicBias = 1.0

	o, profiles, _, _ := newTestOrchestrator(cfg, 7)

	// 5 attempts, 1 correct on mechanics: weak.
	p := progress.NewProfile("u1")
	ts := p.TopicStats("physics", "mechanics")
	ts.TotalAttempts = 5
	ts.CorrectAttempts = 1
	profiles.profiles["u1"] = p

	results, err := o.GenerateBatch(context.Background(), "u1", "", "", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range results {
		if q.Subject != "physics" || q.Topic != "mechanics" {
			t.Errorf("result %d: expected weak topic physics/mechanics, got %s/%s", i, q.Subject, q.Topic)
		}
	}
}

func TestGenerateBatch_PinnedCoordinate(t *testing.T) {
	o, _, _, _ := newTestOrchestrator(DefaultConfig(), 1)

	results, err := o.GenerateBatch(context.Background(), "u1", "chemistry", "organic chemistry", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range results {
		if q.Subject != "chemistry" || q.Topic != "organic chemistry" {
			t.Errorf("result %d: pin ignored, got %s/%s", i, q.Subject, q.Topic)
		}
	}
}

func TestGenerateBatch_TypeSplit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MCQProbability = 1.0
	o, _, _, _ := newTestOrchestrator(cfg, 3)

	results, err := o.GenerateBatch(context.Background(), "u1", "", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range results {
		if q.Type != questiongen.TypeMCQ {
			t.Errorf("result %d: expected mcq, got %s", i, q.Type)
		}
	}

	cfg.MCQProbability = 0.0
	o, _, _, _ = newTestOrchestrator(cfg, 3)
	results, err = o.GenerateBatch(context.Background(), "u1", "", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range results {
		if q.Type != questiongen.TypeNumerical {
			t.Errorf("result %d: expected numerical, got %s", i, q.Type)
		}
	}
}

func TestGenerateBatch_PersistsKnownQuestions(t *testing.T) {
	o, _, _, known := newTestOrchestrator(DefaultConfig(), 5)

	results, err := o.GenerateBatch(context.Background(), "u1", "physics", "optics", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(known.entries) != len(results) {
		t.Errorf("expected %d known entries, got %d", len(results), len(known.entries))
	}
	for _, e := range known.entries {
		if e.NormalizedText != questiongen.Normalize(e.Text) {
			t.Errorf("entry not normalized: %q", e.NormalizedText)
		}
	}
}

func TestGenerateBatch_LoadErrorPropagates(t *testing.T) {
	o, profiles, _, _ := newTestOrchestrator(DefaultConfig(), 1)
	profiles.loadErr = errors.New("disk gone")

	if _, err := o.GenerateBatch(context.Background(), "u1", "", "", 2); err == nil {
		t.Fatal("expected persistence error to propagate")
	}
}

func TestRecordAnswer_UpdatesMasteryAndAppendsEvent(t *testing.T) {
	o, profiles, events, _ := newTestOrchestrator(DefaultConfig(), 9)

	results, err := o.GenerateBatch(context.Background(), "u1", "mathematics", "calculus", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := results[0]

	res, err := o.RecordAnswer(context.Background(), "u1", q.ID, true, 42.0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Subject != "mathematics" || res.Topic != "calculus" {
		t.Errorf("unexpected coordinate: %s/%s", res.Subject, res.Topic)
	}
	if res.Accuracy != 1.0 {
		t.Errorf("expected accuracy 1.0, got %v", res.Accuracy)
	}
	if res.NextReviewAt == nil {
		t.Error("expected a scheduled review")
	}

	p := profiles.profiles["u1"]
	tp := p.Topic("mathematics", "calculus")
	if tp.TotalAttempts != 1 || tp.CorrectAttempts != 1 {
		t.Errorf("counters not advanced: %+v", tp)
	}
	if p.TotalAttempted != 1 || p.TotalCorrect != 1 {
		t.Errorf("profile totals not advanced: %d/%d", p.TotalCorrect, p.TotalAttempted)
	}

	if len(events.answers) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(events.answers))
	}
	ev := events.answers[0]
	if ev.QuestionID != q.ID || !ev.Correct || ev.TimeTakenSeconds != 42.0 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	o, _, _, _ := newTestOrchestrator(DefaultConfig(), 1)

	_, err := o.RecordAnswer(context.Background(), "u1", "nope", true, 10, nil)
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestRecordAnswer_ConcurrentSameUser(t *testing.T) {
	o, profiles, _, _ := newTestOrchestrator(DefaultConfig(), 2)

	results, err := o.GenerateBatch(context.Background(), "u1", "physics", "mechanics", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := results[0]

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := o.RecordAnswer(context.Background(), "u1", q.ID, true, 30, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	tp := profiles.profiles["u1"].Topic("physics", "mechanics")
	if tp.TotalAttempts != n {
		t.Errorf("expected %d attempts, got %d", n, tp.TotalAttempts)
	}
}

func TestListDueTopics(t *testing.T) {
	o, profiles, _, _ := newTestOrchestrator(DefaultConfig(), 1)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := progress.NewProfile("u1")
	past := now.AddDate(0, 0, -2)
	tp := p.Topic("physics", "optics")
	tp.NextReviewAt = &past
	future := now.AddDate(0, 0, 3)
	tp2 := p.Topic("physics", "mechanics")
	tp2.NextReviewAt = &future
	profiles.profiles["u1"] = p

	due, err := o.ListDueTopics(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected 1 due topic, got %d", len(due))
	}
	if due[0].Subject != "physics" || due[0].Topic != "optics" {
		t.Errorf("unexpected due topic: %+v", due[0])
	}
}
