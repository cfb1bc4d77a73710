package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepcoach/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetSubject(data.Subject).
		SetTopic(data.Topic).
		SetQuestionType(data.QuestionType).
		SetCorrect(data.Correct).
		SetTimeTakenSeconds(data.TimeTakenSeconds)

	if len(data.Concepts) > 0 {
		builder = builder.SetConcepts(data.Concepts)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
