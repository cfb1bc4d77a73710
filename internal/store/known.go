package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepcoach/ent"
	"github.com/abhisek/prepcoach/ent/knownquestion"
)

// knownQuestionRepo implements KnownQuestionRepo using the ent client.
type knownQuestionRepo struct {
	client *ent.Client
}

func (r *knownQuestionRepo) AddBatch(ctx context.Context, entries []KnownQuestionData) error {
	if len(entries) == 0 {
		return nil
	}

	builders := make([]*ent.KnownQuestionCreate, 0, len(entries))
	for _, e := range entries {
		if e.NormalizedText == "" {
			continue
		}
		builders = append(builders, r.client.KnownQuestion.Create().
			SetSubject(e.Subject).
			SetTopic(e.Topic).
			SetText(e.Text).
			SetNormalizedText(e.NormalizedText))
	}
	if len(builders) == 0 {
		return nil
	}

	if _, err := r.client.KnownQuestion.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("insert known questions: %w", err)
	}
	return nil
}

func (r *knownQuestionRepo) AllNormalized(ctx context.Context) ([]string, error) {
	texts, err := r.client.KnownQuestion.Query().
		Select(knownquestion.FieldNormalizedText).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query known questions: %w", err)
	}
	return texts, nil
}
