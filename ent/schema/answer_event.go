package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer submission within an attempt.
// One row per (attempt, question); re-answering the same question
// overwrites the row (last write wins), matching the attempt ledger.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("option_id").
			NotEmpty().
			Comment("The selected option"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("attempt_id", "question_id").
			Unique(),
	}
}
