package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Enrollment links a user to a course, including payment status.
// At most one enrollment exists per (user, course).
type Enrollment struct {
	ent.Schema
}

func (Enrollment) Fields() []ent.Field {
	return []ent.Field{
		field.String("enrollment_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("course_id").
			NotEmpty(),
		field.Bool("paid").
			Default(false),
		field.Time("enrolled_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Enrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id").
			Unique(),
	}
}
