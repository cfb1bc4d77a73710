package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/abhisek/prepcoach/internal/contentindex"
	"github.com/abhisek/prepcoach/internal/progress"
	"github.com/abhisek/prepcoach/internal/questiongen"
	"github.com/abhisek/prepcoach/internal/spacedrep"
	"github.com/abhisek/prepcoach/internal/store"
	"github.com/abhisek/prepcoach/internal/weakness"
)

// ErrUnknownQuestion is returned by RecordAnswer when the question id was
// not issued by this process.
var ErrUnknownQuestion = errors.New("unknown question id")

// Synthesizer produces one question per input. Failures are absorbed into
// fallback questions, never returned as errors.
type Synthesizer interface {
	Synthesize(ctx context.Context, input questiongen.Input) *questiongen.GeneratedQuestion
}

// Deps are the collaborators the orchestrator composes.
type Deps struct {
	Profiles  store.ProfileRepo
	Events    store.EventRepo
	Known     store.KnownQuestionRepo
	Grounding contentindex.Provider
	Synth     Synthesizer

	// Rand is the randomness source for topic/type selection. Nil selects
	// a time-seeded source; tests inject a seeded one.
	Rand *rand.Rand
}

// Orchestrator composes progress state, weakness analysis, grounding
// retrieval, and question synthesis into the batch-generation and
// answer-recording operations.
type Orchestrator struct {
	profiles  store.ProfileRepo
	events    store.EventRepo
	known     store.KnownQuestionRepo
	grounding contentindex.Provider
	synth     Synthesizer
	config    Config

	rngMu sync.Mutex
	rng   *rand.Rand

	issuedMu sync.Mutex
	issued   map[string]issuedQuestion
}

// issuedQuestion remembers the coordinate a question was generated for,
// so a later RecordAnswer can attribute the attempt.
type issuedQuestion struct {
	Subject  string
	Topic    string
	Type     questiongen.QuestionType
	Concepts []string
}

// New creates an Orchestrator.
func New(deps Deps, cfg Config) *Orchestrator {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Orchestrator{
		profiles:  deps.Profiles,
		events:    deps.Events,
		known:     deps.Known,
		grounding: deps.Grounding,
		synth:     deps.Synth,
		config:    cfg,
		rng:       rng,
		issued:    make(map[string]issuedQuestion),
	}
}

// GenerateBatch produces count personalized questions for the user.
// subject and topic are optional pins; empty strings leave the choice to
// the weak-topic-biased draw. Results preserve request order even though
// generation runs concurrently, and one question's failure never affects
// its siblings. Batch generation does not touch mastery state; that
// happens in RecordAnswer.
func (o *Orchestrator) GenerateBatch(ctx context.Context, userID, subject, topic string, count int) ([]*questiongen.GeneratedQuestion, error) {
	if count <= 0 {
		return nil, nil
	}

	profile, err := o.profiles.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading profile for %s: %w", userID, err)
	}

	areas := weakness.Analyze(profile)
	inputs := o.planBatch(profile, areas, subject, topic, count)

	results := make([]*questiongen.GeneratedQuestion, count)
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < o.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = o.generateOne(ctx, inputs[i])
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	o.remember(results)
	o.persistKnown(ctx, results)

	return results, nil
}

// planBatch selects the coordinate, question type, difficulty, and
// concept-review set for each requested question.
func (o *Orchestrator) planBatch(profile *progress.Profile, areas weakness.Areas, pinSubject, pinTopic string, count int) []questiongen.Input {
	o.rngMu.Lock()
	defer o.rngMu.Unlock()

	inputs := make([]questiongen.Input, count)
	for i := range inputs {
		subject, topic := o.pickTopic(o.rng, areas, pinSubject, pinTopic)

		input := questiongen.Input{
			Subject:    subject,
			Topic:      topic,
			Type:       o.pickType(o.rng, areas),
			Difficulty: difficultyFor(profile, subject, topic),
		}
		if weakness.NeedsReinforcement(profile, subject, topic) {
			input.ConceptReview = areas.Concepts
		}
		inputs[i] = input
	}
	return inputs
}

// generateOne retrieves grounding text and synthesizes a question.
// Grounding retrieval errors are treated as absent content so the
// synthesizer's fallback path handles them.
func (o *Orchestrator) generateOne(ctx context.Context, input questiongen.Input) *questiongen.GeneratedQuestion {
	text, err := o.grounding.GroundingText(ctx, input.Subject, input.Topic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: grounding retrieval failed for %s/%s: %v\n", input.Subject, input.Topic, err)
		text = ""
	}
	input.GroundingText = text

	return o.synth.Synthesize(ctx, input)
}

// remember records issued questions so RecordAnswer can attribute answers.
func (o *Orchestrator) remember(questions []*questiongen.GeneratedQuestion) {
	o.issuedMu.Lock()
	defer o.issuedMu.Unlock()
	for _, q := range questions {
		o.issued[q.ID] = issuedQuestion{
			Subject:  q.Subject,
			Topic:    q.Topic,
			Type:     q.Type,
			Concepts: q.Concepts,
		}
	}
}

// persistKnown adds fresh, real questions to the durable deduplication
// corpus. Best effort; a write failure does not fail the batch.
func (o *Orchestrator) persistKnown(ctx context.Context, questions []*questiongen.GeneratedQuestion) {
	var entries []store.KnownQuestionData
	for _, q := range questions {
		if q.IsFallback || q.Duplicate {
			continue
		}
		entries = append(entries, store.KnownQuestionData{
			Subject:        q.Subject,
			Topic:          q.Topic,
			Text:           q.Text,
			NormalizedText: questiongen.Normalize(q.Text),
		})
	}
	if len(entries) == 0 {
		return
	}
	if err := o.known.AddBatch(ctx, entries); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist known questions: %v\n", err)
	}
}

// AnswerResult summarizes a topic's mastery state after an answer.
type AnswerResult struct {
	Subject            string
	Topic              string
	MasteryLevel       int
	Accuracy           float64
	ConsecutiveCorrect int
	NextReviewAt       *time.Time
}

// RecordAnswer applies one answered question to the user's progress:
// mastery advancement, review scheduling, performance counters, and the
// audit event, in that order. Updates for the same user are serialized by
// the profile store. The returned summary reflects the saved state; on a
// persistence error the caller must treat its view as possibly stale.
func (o *Orchestrator) RecordAnswer(ctx context.Context, userID, questionID string, correct bool, timeTakenSeconds float64, concepts []string) (*AnswerResult, error) {
	o.issuedMu.Lock()
	iq, ok := o.issued[questionID]
	o.issuedMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	if len(concepts) == 0 {
		concepts = iq.Concepts
	}
	now := time.Now()

	updated, err := o.profiles.Update(ctx, userID, func(p *progress.Profile) error {
		tp := p.Topic(iq.Subject, iq.Topic)
		progress.Advance(tp, correct, timeTakenSeconds)
		spacedrep.Schedule(tp, now)
		p.RecordPerformance(iq.Subject, iq.Topic, string(iq.Type), correct, timeTakenSeconds, concepts, now)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating profile for %s: %w", userID, err)
	}

	if err := o.events.AppendAnswer(ctx, store.AnswerEventData{
		UserID:           userID,
		QuestionID:       questionID,
		Subject:          iq.Subject,
		Topic:            iq.Topic,
		QuestionType:     string(iq.Type),
		Correct:          correct,
		TimeTakenSeconds: timeTakenSeconds,
		Concepts:         concepts,
	}); err != nil {
		return nil, fmt.Errorf("recording answer event: %w", err)
	}

	tp := updated.Topic(iq.Subject, iq.Topic)
	return &AnswerResult{
		Subject:            iq.Subject,
		Topic:              iq.Topic,
		MasteryLevel:       tp.MasteryLevel,
		Accuracy:           tp.Accuracy(),
		ConsecutiveCorrect: tp.ConsecutiveCorrect,
		NextReviewAt:       tp.NextReviewAt,
	}, nil
}

// ListDueTopics returns the user's topics due for review at the given
// time, most overdue first.
func (o *Orchestrator) ListDueTopics(ctx context.Context, userID string, now time.Time) ([]spacedrep.DueTopic, error) {
	profile, err := o.profiles.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading profile for %s: %w", userID, err)
	}
	return spacedrep.DueTopics(profile, now), nil
}
