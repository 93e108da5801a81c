package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent records the classification of a single answered
// question: correctness, performance tier, and the difficulty signal.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Optional().
			Comment("Groups the answers of one assessment run"),
		field.String("user_id").
			NotEmpty().
			Comment("User who answered"),
		field.String("module_id").
			NotEmpty().
			Comment("Module the question belongs to"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.Int("chosen").
			Comment("Option index the user picked"),
		field.Bool("correct").
			Comment("Whether the chosen option was the key"),
		field.String("tier").
			NotEmpty().
			Comment("struggling, progressing, or proficient"),
		field.String("class").
			NotEmpty().
			Comment("Feedback message class, correctness x tier"),
		field.String("adjustment").
			NotEmpty().
			Comment("decrease, hold, or increase"),
		field.Bool("rushed").
			Comment("Incorrect and answered implausibly fast"),
		field.Int64("elapsed_ms").
			Comment("Milliseconds spent on the question"),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("module_id"),
		index.Fields("correct"),
	}
}
