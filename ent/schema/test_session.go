package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestSession is one timed test attempt. The question order is fixed at
// generation time and immutable afterwards.
type TestSession struct {
	ent.Schema
}

func (TestSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID identifying the attempt"),
		field.String("title").
			Default("").
			Comment("Display name shown in session lists"),
		field.JSON("questions", []string{}).
			Comment("Ordered question ids, fixed at generation"),
		field.Int("duration_secs").
			Comment("Allotted time at generation"),
		field.Int("remaining_secs").
			Comment("Last checkpointed remaining time"),
		field.String("status").
			Default("ready").
			Comment("ready or completed"),
		field.Float("total_score").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Int("attempted_count").
			Default(0),
		field.Float("accuracy").
			Default(0),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TestSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
