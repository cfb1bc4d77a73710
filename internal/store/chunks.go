package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepcoach/ent"
	"github.com/abhisek/prepcoach/ent/contentchunk"
)

// chunkRepo implements ChunkRepo using the ent client.
type chunkRepo struct {
	client *ent.Client
}

func (r *chunkRepo) ReplaceSubject(ctx context.Context, subject string, chunks []ChunkData) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.ContentChunk.Delete().
		Where(contentchunk.Subject(subject)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete old chunks for %q: %w", subject, err)
	}

	builders := make([]*ent.ContentChunkCreate, len(chunks))
	for i, c := range chunks {
		builders[i] = tx.ContentChunk.Create().
			SetSubject(subject).
			SetPosition(c.Position).
			SetText(c.Text).
			SetEmbedding(c.Embedding)
	}
	if _, err := tx.ContentChunk.CreateBulk(builders...).Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert chunks for %q: %w", subject, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit chunks for %q: %w", subject, err)
	}
	return nil
}

func (r *chunkRepo) BySubject(ctx context.Context, subject string) ([]ChunkData, error) {
	rows, err := r.client.ContentChunk.Query().
		Where(contentchunk.Subject(subject)).
		Order(ent.Asc(contentchunk.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chunks for %q: %w", subject, err)
	}

	chunks := make([]ChunkData, len(rows))
	for i, row := range rows {
		chunks[i] = ChunkData{
			Position:  row.Position,
			Text:      row.Text,
			Embedding: row.Embedding,
		}
	}
	return chunks, nil
}
