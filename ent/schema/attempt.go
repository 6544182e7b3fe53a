package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one run through a quiz by a single user, from start
// to a terminal status. Rows are append-only; only status, completion
// time and score change after insert.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID assigned when the attempt starts"),
		field.String("quiz_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.Int("attempt_number").
			Min(1).
			Immutable().
			Comment("1-based, monotonically increasing per user+quiz"),
		field.String("status").
			NotEmpty().
			Comment("in_progress, completed, timed_out or abandoned"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("score").
			Default(0).
			Comment("0-100, set when the attempt is scored"),
		field.Bool("passed").
			Default(false),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id", "user_id"),
		index.Fields("status"),
	}
}
