package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is imported reference data. Rows are read-only during a session.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("qtype").
			NotEmpty().
			Comment("numerical, single_choice or multiple_choice"),
		field.Text("prompt").
			NotEmpty(),
		field.JSON("options", []string{}).
			Optional().
			Comment("Option texts; empty for numerical questions"),
		field.String("correct_value").
			Default("").
			Comment("Correct answer for numerical questions"),
		field.JSON("correct_options", []int{}).
			Optional().
			Comment("Correct option indices for choice questions"),
		field.Float("marks").
			Default(0).
			Comment("0 means unset; grading applies the type default"),
		field.String("subject").
			Default(""),
		field.String("topic").
			Default(""),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("subject"),
	}
}
