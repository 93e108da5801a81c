package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records one progress update: a completion report,
// time spent, and optionally a quiz score.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("User the progress belongs to"),
		field.String("module_id").
			NotEmpty().
			Comment("Module the progress is against"),
		field.Float("completion_pct").
			Comment("Completion percentage reported by the caller, after clamping"),
		field.Int("time_spent_mins").
			Comment("Minutes added to the record by this event"),
		field.Float("quiz_score").
			Optional().
			Nillable().
			Comment("Quiz score appended by this event, if any"),
		field.Bool("created").
			Comment("Whether this event created the progress record"),
		field.Bool("completion_advanced").
			Comment("Whether stored completion increased"),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("module_id"),
	}
}
