package bank

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/store"
)

// GenerateInput controls session creation.
type GenerateInput struct {
	Title        string
	Count        int
	DurationSecs int
	Shuffle      bool
	Subject      string // optional filter
}

// Generator builds new test sessions from the imported question bank.
type Generator struct {
	bank     store.BankRepo
	sessions store.SessionRepo
}

func NewGenerator(bank store.BankRepo, sessions store.SessionRepo) *Generator {
	return &Generator{bank: bank, sessions: sessions}
}

// Generate picks questions from the bank and creates a ready session.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (exam.TestSession, error) {
	if in.Count <= 0 {
		return exam.TestSession{}, fmt.Errorf("question count must be positive, got %d", in.Count)
	}
	if in.DurationSecs <= 0 {
		return exam.TestSession{}, fmt.Errorf("duration must be positive, got %d", in.DurationSecs)
	}

	all, err := g.bank.ListQuestions(ctx)
	if err != nil {
		return exam.TestSession{}, fmt.Errorf("list questions: %w", err)
	}
	if in.Subject != "" {
		filtered := all[:0]
		for _, q := range all {
			if q.Subject == in.Subject {
				filtered = append(filtered, q)
			}
		}
		all = filtered
	}
	if len(all) < in.Count {
		return exam.TestSession{}, fmt.Errorf("bank has %d questions, need %d", len(all), in.Count)
	}

	if in.Shuffle {
		rand.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
	}
	picked := all[:in.Count]

	ids := make([]string, len(picked))
	for i, q := range picked {
		ids[i] = q.ID
	}

	title := in.Title
	if title == "" {
		title = fmt.Sprintf("Practice Test (%d questions)", in.Count)
	}

	session := exam.TestSession{
		ID:            uuid.New().String(),
		Title:         title,
		QuestionIDs:   ids,
		DurationSecs:  in.DurationSecs,
		RemainingSecs: in.DurationSecs,
		Status:        exam.SessionReady,
	}
	if err := g.sessions.CreateSession(ctx, &session); err != nil {
		return exam.TestSession{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}
