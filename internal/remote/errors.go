package remote

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the service returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s)", e.RetryAfter)
}

// ErrUnavailable indicates the service is down or unreachable (network
// error or 5xx).
type ErrUnavailable struct {
	Status int
	Err    error
}

func (e *ErrUnavailable) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("results service unavailable (status %d)", e.Status)
	}
	return fmt.Sprintf("results service unreachable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRejected indicates the service rejected the payload (4xx other than
// 429). Retrying the same payload cannot succeed.
type ErrRejected struct {
	Status int
	Body   string
}

func (e *ErrRejected) Error() string {
	return fmt.Sprintf("results service rejected request (status %d): %s", e.Status, e.Body)
}
