package remote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	mock := NewMock()
	mock.QueueSessionErr(&ErrUnavailable{Status: 503}, &ErrRateLimit{})

	c := WithRetry(mock, fastRetryConfig(3))
	err := c.UpdateSession(context.Background(), SessionUpdate{SessionID: "s1"})

	require.NoError(t, err)
	require.Len(t, mock.SessionCalls, 3)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMock()
	mock.QueueSessionErr(
		&ErrUnavailable{Status: 502},
		&ErrUnavailable{Status: 502},
		&ErrUnavailable{Status: 502},
	)

	c := WithRetry(mock, fastRetryConfig(3))
	err := c.UpdateSession(context.Background(), SessionUpdate{SessionID: "s1"})

	var ua *ErrUnavailable
	require.ErrorAs(t, err, &ua)
	require.Len(t, mock.SessionCalls, 3)
}

func TestRejectedPayloadNotRetried(t *testing.T) {
	mock := NewMock()
	mock.QueueAttemptErr(&ErrRejected{Status: 422, Body: "unknown question"})

	c := WithRetry(mock, fastRetryConfig(3))
	err := c.UpsertAttempts(context.Background(), "s1", []AttemptUpsert{{QuestionID: "q1"}})

	var rej *ErrRejected
	require.ErrorAs(t, err, &rej)
	require.Len(t, mock.AttemptCalls, 1, "rejected payloads must not be retried")
}

func TestCanceledContextNotRetried(t *testing.T) {
	mock := NewMock()
	mock.QueueSessionErr(context.Canceled)

	c := WithRetry(mock, fastRetryConfig(3))
	err := c.UpdateSession(context.Background(), SessionUpdate{SessionID: "s1"})

	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, mock.SessionCalls, 1)
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMock()
	mock.QueueSessionErr(&ErrRateLimit{RetryAfter: 30 * time.Millisecond})

	c := WithRetry(mock, fastRetryConfig(2))
	start := time.Now()
	err := c.UpdateSession(context.Background(), SessionUpdate{SessionID: "s1"})

	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	require.Len(t, mock.SessionCalls, 2)
}
