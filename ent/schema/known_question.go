package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnownQuestion is an entry in the deduplication corpus: the normalized text
// of a question that already exists, from the seed bank or prior generations.
type KnownQuestion struct {
	ent.Schema
}

func (KnownQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			NotEmpty(),
		field.String("topic").
			Default(""),
		field.Text("text").
			NotEmpty().
			Comment("Original question text"),
		field.Text("normalized_text").
			NotEmpty().
			Comment("Lowercased, whitespace-collapsed text used for matching"),
	}
}

func (KnownQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("normalized_text"),
	}
}
