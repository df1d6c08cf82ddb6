package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/examdeck/ent"
	"github.com/abhisek/examdeck/ent/attempt"
	"github.com/abhisek/examdeck/ent/question"
	"github.com/abhisek/examdeck/ent/testsession"
	"github.com/abhisek/examdeck/internal/exam"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) CreateSession(ctx context.Context, s *exam.TestSession) error {
	_, err := r.client.TestSession.Create().
		SetSessionID(s.ID).
		SetTitle(s.Title).
		SetQuestions(s.QuestionIDs).
		SetDurationSecs(s.DurationSecs).
		SetRemainingSecs(s.RemainingSecs).
		SetStatus(string(s.Status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetSession(ctx context.Context, sessionID string) (*SessionBundle, error) {
	s, err := r.client.TestSession.Query().
		Where(testsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	session := entSessionToExam(s)

	qs, err := r.client.Question.Query().
		Where(question.QuestionIDIn(session.QuestionIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session questions: %w", err)
	}

	// Preserve the session's question ordering, not the query's.
	byID := make(map[string]*ent.Question, len(qs))
	for _, q := range qs {
		byID[q.QuestionID] = q
	}
	questions := make([]exam.Question, 0, len(session.QuestionIDs))
	for _, id := range session.QuestionIDs {
		if q, ok := byID[id]; ok {
			questions = append(questions, entQuestionToExam(q))
		}
	}

	rows, err := r.client.Attempt.Query().
		Where(attempt.SessionID(sessionID)).
		Order(ent.Asc(attempt.FieldAttemptOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}
	attempts := make([]*exam.Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, entAttemptToExam(row))
	}

	return &SessionBundle{
		Session:   session,
		Questions: questions,
		Attempts:  attempts,
	}, nil
}

func (r *sessionRepo) ListSessions(ctx context.Context) ([]*exam.TestSession, error) {
	rows, err := r.client.TestSession.Query().
		Order(ent.Desc(testsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]*exam.TestSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, entSessionToExam(row))
	}
	return out, nil
}

func (r *sessionRepo) SaveAttempt(ctx context.Context, a *exam.Attempt) error {
	if err := upsertAttempt(ctx, r.client.Attempt, a); err != nil {
		return fmt.Errorf("save attempt %s/%s: %w", a.SessionID, a.QuestionID, err)
	}
	return nil
}

func (r *sessionRepo) UpdateAttempts(ctx context.Context, sessionID string, attempts []*exam.Attempt, totals SessionTotals) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin finalize tx: %w", err)
	}

	for _, a := range attempts {
		if err := upsertAttempt(ctx, tx.Attempt, a); err != nil {
			tx.Rollback()
			return fmt.Errorf("finalize attempt %s/%s: %w", a.SessionID, a.QuestionID, err)
		}
	}

	_, err = tx.TestSession.Update().
		Where(testsession.SessionID(sessionID)).
		SetStatus(string(exam.SessionCompleted)).
		SetTotalScore(totals.TotalScore).
		SetCorrectCount(totals.CorrectCount).
		SetAttemptedCount(totals.AttemptedCount).
		SetAccuracy(totals.Accuracy).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("finalize session %s: %w", sessionID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit finalize tx: %w", err)
	}
	return nil
}

func (r *sessionRepo) UpdateSessionTimeAndStatus(ctx context.Context, sessionID string, remainingSecs int, status exam.SessionStatus) error {
	n, err := r.client.TestSession.Update().
		Where(testsession.SessionID(sessionID)).
		SetRemainingSecs(remainingSecs).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("checkpoint session %s: %w", sessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("checkpoint session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}

func (r *sessionRepo) GetPendingAttempts(ctx context.Context) ([]*exam.Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.Synced(false)).
		Order(ent.Asc(attempt.FieldSessionID), ent.Asc(attempt.FieldAttemptOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending attempts: %w", err)
	}
	out := make([]*exam.Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, entAttemptToExam(row))
	}
	return out, nil
}

func (r *sessionRepo) MarkAttemptsSynced(ctx context.Context, attempts []*exam.Attempt) error {
	for _, a := range attempts {
		row, err := r.client.Attempt.Query().
			Where(
				attempt.SessionID(a.SessionID),
				attempt.QuestionID(a.QuestionID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return fmt.Errorf("mark synced %s/%s: %w", a.SessionID, a.QuestionID, err)
		}
		// A save that landed after this snapshot was pushed produced a
		// newer version; leave it dirty for the next push.
		if !attemptMatches(row, a) {
			continue
		}
		if _, err := r.client.Attempt.UpdateOne(row).SetSynced(true).Save(ctx); err != nil {
			return fmt.Errorf("mark synced %s/%s: %w", a.SessionID, a.QuestionID, err)
		}
	}
	return nil
}

// attemptMatches reports whether the stored row still holds the same
// content as the pushed snapshot.
func attemptMatches(row *ent.Attempt, a *exam.Attempt) bool {
	if row.AttemptOrder != a.Order ||
		row.Status != string(a.Status) ||
		row.MarkedForReview != a.MarkedForReview ||
		row.Score != a.Score ||
		row.TimeSpentSecs != a.TimeSpentSecs {
		return false
	}
	if (row.IsCorrect == nil) != (a.IsCorrect == nil) {
		return false
	}
	if row.IsCorrect != nil && *row.IsCorrect != *a.IsCorrect {
		return false
	}
	return dataToAnswer(row.Answer).Equal(a.Answer)
}

// upsertAttempt creates or updates the row keyed by (session id, question
// id). The store is single-writer per session, so read-then-write is safe.
func upsertAttempt(ctx context.Context, c *ent.AttemptClient, a *exam.Attempt) error {
	existing, err := c.Query().
		Where(
			attempt.SessionID(a.SessionID),
			attempt.QuestionID(a.QuestionID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query existing: %w", err)
	}

	if existing == nil {
		builder := c.Create().
			SetSessionID(a.SessionID).
			SetQuestionID(a.QuestionID).
			SetAttemptOrder(a.Order).
			SetMarkedForReview(a.MarkedForReview).
			SetStatus(string(a.Status)).
			SetScore(a.Score).
			SetTimeSpentSecs(a.TimeSpentSecs).
			SetSynced(a.Synced)
		if data := answerToData(a.Answer); data != nil {
			builder = builder.SetAnswer(data)
		}
		if a.IsCorrect != nil {
			builder = builder.SetIsCorrect(*a.IsCorrect)
		}
		_, err = builder.Save(ctx)
		return err
	}

	upd := c.UpdateOne(existing).
		SetAttemptOrder(a.Order).
		SetMarkedForReview(a.MarkedForReview).
		SetStatus(string(a.Status)).
		SetScore(a.Score).
		SetTimeSpentSecs(a.TimeSpentSecs).
		SetSynced(a.Synced)
	if data := answerToData(a.Answer); data != nil {
		upd = upd.SetAnswer(data)
	} else {
		upd = upd.ClearAnswer()
	}
	if a.IsCorrect != nil {
		upd = upd.SetIsCorrect(*a.IsCorrect)
	} else {
		upd = upd.ClearIsCorrect()
	}
	_, err = upd.Save(ctx)
	return err
}
