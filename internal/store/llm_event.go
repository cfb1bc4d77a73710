package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepcoach/ent"
	"github.com/abhisek/prepcoach/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageRow, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldModel)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byModel := make(map[string]*LLMUsageRow)
	var order []string
	for _, e := range events {
		row, ok := byModel[e.Model]
		if !ok {
			row = &LLMUsageRow{Model: e.Model}
			byModel[e.Model] = row
			order = append(order, e.Model)
		}
		row.Requests++
		if !e.Success {
			row.Failures++
		}
		row.InputTokens += e.InputTokens
		row.OutputTokens += e.OutputTokens
	}

	rows := make([]LLMUsageRow, 0, len(order))
	for _, m := range order {
		rows = append(rows, *byModel[m])
	}
	return rows, nil
}
