package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonProgress marks a lesson as completed within an enrollment.
// Rows are created the first time a lesson is completed and never deleted.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Bool("completed").
			Default(true),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enrollment_id"),
		index.Fields("enrollment_id", "lesson_id").
			Unique(),
	}
}
