package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentChunk is one unit of reference material with its embedding vector.
// Chunks are written once at index-build time and read-only afterwards.
type ContentChunk struct {
	ent.Schema
}

func (ContentChunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			NotEmpty().
			Comment("Subject this chunk belongs to"),
		field.Int("position").
			Comment("Order of the chunk within the source document"),
		field.Text("text").
			NotEmpty().
			Comment("The chunk text"),
		field.JSON("embedding", []float32{}).
			Optional().
			Comment("Embedding vector for similarity search"),
	}
}

func (ContentChunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("subject", "position").Unique(),
	}
}
