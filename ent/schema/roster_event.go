package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RosterEvent records a change to the user roster.
type RosterEvent struct {
	ent.Schema
}

func (RosterEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RosterEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("User the change applies to"),
		field.String("username").
			NotEmpty(),
		field.String("role").
			NotEmpty().
			Comment("student, teacher, or admin"),
		field.String("action").
			NotEmpty().
			Comment("created or progress_reset"),
	}
}

func (RosterEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
