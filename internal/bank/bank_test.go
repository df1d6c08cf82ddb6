package bank

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/store"
)

type fakeBankRepo struct {
	questions map[string]exam.Question
	order     []string
}

func newFakeBankRepo() *fakeBankRepo {
	return &fakeBankRepo{questions: make(map[string]exam.Question)}
}

func (r *fakeBankRepo) SaveQuestions(ctx context.Context, qs []exam.Question) error {
	for _, q := range qs {
		if _, ok := r.questions[q.ID]; !ok {
			r.order = append(r.order, q.ID)
		}
		r.questions[q.ID] = q
	}
	return nil
}

func (r *fakeBankRepo) GetQuestions(ctx context.Context, ids []string) ([]exam.Question, error) {
	var out []exam.Question
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeBankRepo) ListQuestions(ctx context.Context) ([]exam.Question, error) {
	out := make([]exam.Question, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.questions[id])
	}
	return out, nil
}

func (r *fakeBankRepo) CountQuestions(ctx context.Context) (int, error) {
	return len(r.questions), nil
}

func (r *fakeBankRepo) Wipe(ctx context.Context) error {
	r.questions = make(map[string]exam.Question)
	r.order = nil
	return nil
}

var _ store.BankRepo = (*fakeBankRepo)(nil)

type fakeSessionRepo struct {
	store.SessionRepo
	created []*exam.TestSession
}

func (r *fakeSessionRepo) CreateSession(ctx context.Context, s *exam.TestSession) error {
	r.created = append(r.created, s)
	return nil
}

const validBank = `{
  "title": "Physics Mock 1",
  "questions": [
    {"id": "q1", "type": "numerical", "prompt": "g on Earth in m/s^2?", "correct_value": "9.8", "marks": 1, "subject": "physics"},
    {"id": "q2", "type": "single_choice", "prompt": "Unit of force?", "options": ["watt", "newton", "joule"], "correct_options": [1], "subject": "physics"},
    {"id": "q3", "type": "multiple_choice", "prompt": "Vector quantities?", "options": ["speed", "velocity", "force", "mass"], "correct_options": [1, 2], "subject": "math"}
  ]
}`

func TestImportValidBank(t *testing.T) {
	repo := newFakeBankRepo()
	im := NewImporter(repo)

	n, err := im.Import(context.Background(), []byte(validBank))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	qs, err := repo.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 3)
	require.Equal(t, exam.SingleChoice, qs[1].Type)
	require.Equal(t, []int{1}, qs[1].CorrectOptions)
}

func TestImportRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `{{{`, "invalid JSON"},
		{"no questions", `{"questions": []}`, "schema validation"},
		{"unknown type", `{"questions": [{"id": "q1", "type": "essay", "prompt": "x"}]}`, "schema validation"},
		{"missing prompt", `{"questions": [{"id": "q1", "type": "numerical"}]}`, "schema validation"},
		{"numerical without answer",
			`{"questions": [{"id": "q1", "type": "numerical", "prompt": "x"}]}`,
			"requires correct_value"},
		{"choice with one option",
			`{"questions": [{"id": "q1", "type": "single_choice", "prompt": "x", "options": ["a"], "correct_options": [0]}]}`,
			"at least 2 options"},
		{"choice without correct options",
			`{"questions": [{"id": "q1", "type": "multiple_choice", "prompt": "x", "options": ["a", "b"]}]}`,
			"requires correct_options"},
		{"single choice with two answers",
			`{"questions": [{"id": "q1", "type": "single_choice", "prompt": "x", "options": ["a", "b"], "correct_options": [0, 1]}]}`,
			"exactly one correct option"},
		{"correct option out of range",
			`{"questions": [{"id": "q1", "type": "single_choice", "prompt": "x", "options": ["a", "b"], "correct_options": [5]}]}`,
			"out of range"},
		{"duplicate ids",
			`{"questions": [
				{"id": "q1", "type": "numerical", "prompt": "x", "correct_value": "1"},
				{"id": "q1", "type": "numerical", "prompt": "y", "correct_value": "2"}
			]}`,
			"duplicate id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewImporter(newFakeBankRepo())
			_, err := im.Import(context.Background(), []byte(tt.body))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestImportIsUpsert(t *testing.T) {
	repo := newFakeBankRepo()
	im := NewImporter(repo)

	_, err := im.Import(context.Background(), []byte(validBank))
	require.NoError(t, err)
	_, err = im.Import(context.Background(), []byte(validBank))
	require.NoError(t, err)

	n, _ := repo.CountQuestions(context.Background())
	require.Equal(t, 3, n)
}

func seedBank(t *testing.T) *fakeBankRepo {
	t.Helper()
	repo := newFakeBankRepo()
	im := NewImporter(repo)
	_, err := im.Import(context.Background(), []byte(validBank))
	require.NoError(t, err)
	return repo
}

func TestGenerateCreatesReadySession(t *testing.T) {
	bankRepo := seedBank(t)
	sessions := &fakeSessionRepo{}
	gen := NewGenerator(bankRepo, sessions)

	s, err := gen.Generate(context.Background(), GenerateInput{
		Title:        "Evening drill",
		Count:        2,
		DurationSecs: 600,
	})
	require.NoError(t, err)

	require.NotEmpty(t, s.ID)
	require.Equal(t, "Evening drill", s.Title)
	require.Equal(t, exam.SessionReady, s.Status)
	require.Equal(t, 600, s.DurationSecs)
	require.Equal(t, 600, s.RemainingSecs)
	require.Len(t, s.QuestionIDs, 2)
	require.Len(t, sessions.created, 1)
}

func TestGenerateSubjectFilter(t *testing.T) {
	bankRepo := seedBank(t)
	gen := NewGenerator(bankRepo, &fakeSessionRepo{})

	s, err := gen.Generate(context.Background(), GenerateInput{
		Count:        2,
		DurationSecs: 300,
		Subject:      "physics",
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"q1", "q2"}, s.QuestionIDs)

	_, err = gen.Generate(context.Background(), GenerateInput{
		Count:        2,
		DurationSecs: 300,
		Subject:      "math",
	})
	require.Error(t, err, "only one math question in the bank")
}

func TestGenerateValidatesInput(t *testing.T) {
	gen := NewGenerator(seedBank(t), &fakeSessionRepo{})

	_, err := gen.Generate(context.Background(), GenerateInput{Count: 0, DurationSecs: 60})
	require.Error(t, err)

	_, err = gen.Generate(context.Background(), GenerateInput{Count: 1, DurationSecs: 0})
	require.Error(t, err)

	_, err = gen.Generate(context.Background(), GenerateInput{Count: 99, DurationSecs: 60})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "need 99"))
}

func TestGenerateDefaultTitle(t *testing.T) {
	gen := NewGenerator(seedBank(t), &fakeSessionRepo{})

	s, err := gen.Generate(context.Background(), GenerateInput{Count: 3, DurationSecs: 60})
	require.NoError(t, err)
	require.Contains(t, s.Title, "3 questions")
}
