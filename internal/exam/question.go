package exam

// QuestionType identifies how a question is answered and graded.
type QuestionType string

const (
	// Numerical questions are answered by typing a value.
	Numerical QuestionType = "numerical"

	// SingleChoice questions have exactly one correct option.
	SingleChoice QuestionType = "single_choice"

	// MultipleChoice questions may have several correct options, all of
	// which must be selected.
	MultipleChoice QuestionType = "multiple_choice"
)

// Question is immutable reference data for the session's duration.
// The grading-relevant fields are Type, CorrectValue/CorrectOptions and
// Marks; everything else is display metadata.
type Question struct {
	ID             string
	Type           QuestionType
	Prompt         string
	Options        []string // empty for numerical questions
	CorrectValue   string   // numerical questions only
	CorrectOptions []int    // choice questions only; single choice has one entry
	Marks          float64  // 0 = unset, grading applies the type default
	Subject        string
	Topic          string
}

// IsChoice reports whether the question is answered by selecting options.
func (q *Question) IsChoice() bool {
	return q.Type == SingleChoice || q.Type == MultipleChoice
}
