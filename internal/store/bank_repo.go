package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examdeck/ent"
	"github.com/abhisek/examdeck/ent/question"
	"github.com/abhisek/examdeck/internal/exam"
)

// bankRepo implements BankRepo using the ent client.
type bankRepo struct {
	client *ent.Client
}

func (r *bankRepo) SaveQuestions(ctx context.Context, qs []exam.Question) error {
	for i := range qs {
		if err := r.upsertQuestion(ctx, &qs[i]); err != nil {
			return fmt.Errorf("save question %s: %w", qs[i].ID, err)
		}
	}
	return nil
}

func (r *bankRepo) upsertQuestion(ctx context.Context, q *exam.Question) error {
	existing, err := r.client.Question.Query().
		Where(question.QuestionID(q.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query existing: %w", err)
	}

	if existing == nil {
		_, err = r.client.Question.Create().
			SetQuestionID(q.ID).
			SetQtype(string(q.Type)).
			SetPrompt(q.Prompt).
			SetOptions(q.Options).
			SetCorrectValue(q.CorrectValue).
			SetCorrectOptions(q.CorrectOptions).
			SetMarks(q.Marks).
			SetSubject(q.Subject).
			SetTopic(q.Topic).
			Save(ctx)
		return err
	}

	_, err = r.client.Question.UpdateOne(existing).
		SetQtype(string(q.Type)).
		SetPrompt(q.Prompt).
		SetOptions(q.Options).
		SetCorrectValue(q.CorrectValue).
		SetCorrectOptions(q.CorrectOptions).
		SetMarks(q.Marks).
		SetSubject(q.Subject).
		SetTopic(q.Topic).
		Save(ctx)
	return err
}

func (r *bankRepo) GetQuestions(ctx context.Context, ids []string) ([]exam.Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.QuestionIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	byID := make(map[string]*ent.Question, len(rows))
	for _, row := range rows {
		byID[row.QuestionID] = row
	}
	out := make([]exam.Question, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			out = append(out, entQuestionToExam(row))
		}
	}
	return out, nil
}

func (r *bankRepo) ListQuestions(ctx context.Context) ([]exam.Question, error) {
	rows, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	out := make([]exam.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, entQuestionToExam(row))
	}
	return out, nil
}

func (r *bankRepo) CountQuestions(ctx context.Context) (int, error) {
	n, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (r *bankRepo) Wipe(ctx context.Context) error {
	if _, err := r.client.Attempt.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("wipe attempts: %w", err)
	}
	if _, err := r.client.TestSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("wipe sessions: %w", err)
	}
	if _, err := r.client.Question.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("wipe questions: %w", err)
	}
	return nil
}
