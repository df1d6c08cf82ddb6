package store

import (
	"github.com/abhisek/examdeck/ent"
	entschema "github.com/abhisek/examdeck/ent/schema"
	"github.com/abhisek/examdeck/internal/exam"
)

func entSessionToExam(s *ent.TestSession) *exam.TestSession {
	return &exam.TestSession{
		ID:             s.SessionID,
		Title:          s.Title,
		QuestionIDs:    append([]string(nil), s.Questions...),
		DurationSecs:   s.DurationSecs,
		RemainingSecs:  s.RemainingSecs,
		Status:         exam.SessionStatus(s.Status),
		TotalScore:     s.TotalScore,
		CorrectCount:   s.CorrectCount,
		AttemptedCount: s.AttemptedCount,
		Accuracy:       s.Accuracy,
		CompletedAt:    s.CompletedAt,
		CreatedAt:      s.CreatedAt,
	}
}

func entQuestionToExam(q *ent.Question) exam.Question {
	return exam.Question{
		ID:             q.QuestionID,
		Type:           exam.QuestionType(q.Qtype),
		Prompt:         q.Prompt,
		Options:        append([]string(nil), q.Options...),
		CorrectValue:   q.CorrectValue,
		CorrectOptions: append([]int(nil), q.CorrectOptions...),
		Marks:          q.Marks,
		Subject:        q.Subject,
		Topic:          q.Topic,
	}
}

func entAttemptToExam(a *ent.Attempt) *exam.Attempt {
	out := &exam.Attempt{
		SessionID:       a.SessionID,
		QuestionID:      a.QuestionID,
		Order:           a.AttemptOrder,
		Answer:          dataToAnswer(a.Answer),
		MarkedForReview: a.MarkedForReview,
		Status:          exam.AttemptStatus(a.Status),
		Score:           a.Score,
		TimeSpentSecs:   a.TimeSpentSecs,
		Synced:          a.Synced,
	}
	if a.IsCorrect != nil {
		v := *a.IsCorrect
		out.IsCorrect = &v
	}
	return out
}

func answerToData(a *exam.Answer) *entschema.AnswerData {
	if a == nil {
		return nil
	}
	return &entschema.AnswerData{
		Value:   a.Value,
		Options: append([]int(nil), a.Options...),
	}
}

func dataToAnswer(d *entschema.AnswerData) *exam.Answer {
	if d == nil {
		return nil
	}
	return &exam.Answer{
		Value:   d.Value,
		Options: append([]int(nil), d.Options...),
	}
}
