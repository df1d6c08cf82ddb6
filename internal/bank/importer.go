package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/store"
)

// Bank is the on-disk question bank format.
type Bank struct {
	Title     string          `json:"title,omitempty"`
	Questions []QuestionEntry `json:"questions"`
}

// QuestionEntry mirrors exam.Question with JSON tags for the bank file.
type QuestionEntry struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options,omitempty"`
	CorrectValue   string   `json:"correct_value,omitempty"`
	CorrectOptions []int    `json:"correct_options,omitempty"`
	Marks          float64  `json:"marks,omitempty"`
	Subject        string   `json:"subject,omitempty"`
	Topic          string   `json:"topic,omitempty"`
}

// Importer validates and persists question banks.
type Importer struct {
	repo store.BankRepo
}

func NewImporter(repo store.BankRepo) *Importer {
	return &Importer{repo: repo}
}

// ImportFile reads, validates and persists a bank file. Returns the number
// of questions imported.
func (im *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read bank file: %w", err)
	}
	return im.Import(ctx, raw)
}

// Import validates raw bank JSON and upserts its questions.
func (im *Importer) Import(ctx context.Context, raw []byte) (int, error) {
	if err := validateBankJSON(raw); err != nil {
		return 0, err
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return 0, fmt.Errorf("decode bank: %w", err)
	}

	questions := make([]exam.Question, 0, len(bank.Questions))
	seen := make(map[string]bool, len(bank.Questions))
	for i, entry := range bank.Questions {
		q, err := entry.toQuestion()
		if err != nil {
			return 0, fmt.Errorf("question %d (%s): %w", i+1, entry.ID, err)
		}
		if seen[q.ID] {
			return 0, fmt.Errorf("question %d: duplicate id %q", i+1, q.ID)
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}

	if err := im.repo.SaveQuestions(ctx, questions); err != nil {
		return 0, fmt.Errorf("save questions: %w", err)
	}

	log.Info().Int("count", len(questions)).Msg("imported question bank")
	return len(questions), nil
}

func (e QuestionEntry) toQuestion() (exam.Question, error) {
	q := exam.Question{
		ID:             e.ID,
		Type:           exam.QuestionType(e.Type),
		Prompt:         e.Prompt,
		Options:        e.Options,
		CorrectValue:   e.CorrectValue,
		CorrectOptions: e.CorrectOptions,
		Marks:          e.Marks,
		Subject:        e.Subject,
		Topic:          e.Topic,
	}
	if err := validateQuestion(q); err != nil {
		return exam.Question{}, err
	}
	return q, nil
}

// validateQuestion enforces the agreement between question type and answer
// fields that the JSON schema cannot express.
func validateQuestion(q exam.Question) error {
	switch q.Type {
	case exam.Numerical:
		if q.CorrectValue == "" {
			return fmt.Errorf("numerical question requires correct_value")
		}
	case exam.SingleChoice, exam.MultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("choice question requires at least 2 options")
		}
		if len(q.CorrectOptions) == 0 {
			return fmt.Errorf("choice question requires correct_options")
		}
		if q.Type == exam.SingleChoice && len(q.CorrectOptions) != 1 {
			return fmt.Errorf("single_choice question requires exactly one correct option")
		}
		for _, idx := range q.CorrectOptions {
			if idx < 0 || idx >= len(q.Options) {
				return fmt.Errorf("correct option index %d out of range [0, %d)", idx, len(q.Options))
			}
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	return nil
}
