package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Certificate is the proof-of-completion artifact for a finished course.
// The unique (user_id, course_id) index is what makes issuance idempotent
// at the database level.
type Certificate struct {
	ent.Schema
}

func (Certificate) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("course_id").
			NotEmpty(),
		field.String("certificate_number").
			Unique().
			Immutable().
			NotEmpty(),
		field.Time("issued_at").
			Default(time.Now).
			Immutable(),
		field.Int("final_score").
			Default(0).
			Comment("Course-level score, 0-100"),
		field.Int("quiz_score").
			Default(0).
			Comment("Best quiz attempt score, 0-100"),
		field.String("status").
			Default("issued"),
	}
}

func (Certificate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id").
			Unique(),
	}
}
