package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerData is the serialized form of a learner answer. Value carries the
// typed response for numerical questions; Options the selected indices for
// choice questions.
type AnswerData struct {
	Value   string `json:"value,omitempty"`
	Options []int  `json:"options,omitempty"`
}

// Attempt is one row per question per session, the unit of persistence and
// remote sync. (session_id, question_id) is the natural key; writes are
// idempotent upserts on it.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.Int("attempt_order").
			Comment("Stable 1-based position within the session"),
		field.JSON("answer", &AnswerData{}).
			Optional().
			Comment("Null until the question is answered"),
		field.Bool("marked_for_review").
			Default(false),
		field.String("status").
			Default("unvisited"),
		field.Bool("is_correct").
			Optional().
			Nillable().
			Comment("Null until graded"),
		field.Float("score").
			Default(0),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Cumulative across visits; only ever increases"),
		field.Bool("synced").
			Default(false).
			Comment("True once the remote store acknowledged this version"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id").
			Unique(),
		index.Fields("synced"),
	}
}
