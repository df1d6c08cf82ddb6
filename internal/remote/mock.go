package remote

import (
	"context"
	"sync"
)

// Mock is a deterministic Client for testing. It records all calls and
// returns queued errors in FIFO order (nil queue entries succeed).
type Mock struct {
	mu sync.Mutex

	SessionCalls []SessionUpdate
	AttemptCalls []MockAttemptCall

	sessionErrs []error
	attemptErrs []error
}

// MockAttemptCall records one UpsertAttempts invocation.
type MockAttemptCall struct {
	SessionID string
	Attempts  []AttemptUpsert
}

// NewMock creates an empty Mock; all calls succeed until errors are queued.
func NewMock() *Mock {
	return &Mock{}
}

// QueueSessionErr appends errors returned by subsequent UpdateSession calls.
func (m *Mock) QueueSessionErr(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionErrs = append(m.sessionErrs, errs...)
}

// QueueAttemptErr appends errors returned by subsequent UpsertAttempts calls.
func (m *Mock) QueueAttemptErr(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attemptErrs = append(m.attemptErrs, errs...)
}

func (m *Mock) UpdateSession(_ context.Context, upd SessionUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionCalls = append(m.SessionCalls, upd)
	return m.nextErr(&m.sessionErrs)
}

func (m *Mock) UpsertAttempts(_ context.Context, sessionID string, attempts []AttemptUpsert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AttemptCalls = append(m.AttemptCalls, MockAttemptCall{
		SessionID: sessionID,
		Attempts:  append([]AttemptUpsert(nil), attempts...),
	})
	return m.nextErr(&m.attemptErrs)
}

func (m *Mock) nextErr(queue *[]error) error {
	if len(*queue) == 0 {
		return nil
	}
	err := (*queue)[0]
	*queue = (*queue)[1:]
	return err
}
