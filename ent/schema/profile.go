package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the per-user progress document: topic mastery records and the
// performance profile, stored as one JSON blob keyed by user ID.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Owning candidate"),
		field.JSON("data", map[string]any{}).
			Comment("Full progress and performance state as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
