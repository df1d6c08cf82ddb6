// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "attempt_order", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeJSON, Nullable: true},
		{Name: "marked_for_review", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeString, Default: "unvisited"},
		{Name: "is_correct", Type: field.TypeBool, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "synced", Type: field.TypeBool, Default: false},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
			{
				Name:    "attempt_synced",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[10]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "qtype", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_value", Type: field.TypeString, Default: ""},
		{Name: "correct_options", Type: field.TypeJSON, Nullable: true},
		{Name: "marks", Type: field.TypeFloat64, Default: 0},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_subject",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8]},
			},
		},
	}
	// TestSessionsColumns holds the columns for the "test_sessions" table.
	TestSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "remaining_secs", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "ready"},
		{Name: "total_score", Type: field.TypeFloat64, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "attempted_count", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TestSessionsTable holds the schema information for the "test_sessions" table.
	TestSessionsTable = &schema.Table{
		Name:       "test_sessions",
		Columns:    TestSessionsColumns,
		PrimaryKey: []*schema.Column{TestSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testsession_session_id",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[1]},
			},
			{
				Name:    "testsession_status",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[6]},
			},
			{
				Name:    "testsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		QuestionsTable,
		TestSessionsTable,
	}
)

func init() {
}
