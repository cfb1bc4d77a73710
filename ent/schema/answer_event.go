package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question for audit and analytics.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Candidate this answer belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("ID of the generated question"),
		field.String("subject").
			NotEmpty().
			Comment("mathematics, physics, or chemistry"),
		field.String("topic").
			NotEmpty().
			Comment("Topic within the subject"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq or numerical"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Float("time_taken_seconds").
			Comment("Seconds spent on the question"),
		field.JSON("concepts", []string{}).
			Optional().
			Comment("Concepts tested by the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("subject", "topic"),
		index.Fields("correct"),
	}
}
