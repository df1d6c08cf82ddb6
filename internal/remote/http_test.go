package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/examdeck/internal/exam"
)

func TestUpdateSessionRequestShape(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotBody SessionUpdate

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "secret", time.Second)
	upd := SessionUpdate{
		SessionID:     "s1",
		RemainingSecs: 120,
		Status:        "completed",
		Result:        &SessionResult{TotalScore: 4.5, CorrectCount: 3, AttemptedCount: 5, Accuracy: 0.6},
	}
	require.NoError(t, c.UpdateSession(context.Background(), upd))

	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/v1/sessions/s1", gotPath)
	require.Equal(t, "Bearer secret", gotAuth)
	require.Equal(t, upd, gotBody)
}

func TestUpsertAttemptsRequestShape(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Attempts []AttemptUpsert `json:"attempts"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	attempts := []AttemptUpsert{{
		QuestionID: "q1",
		Order:      1,
		Answer:     &exam.Answer{Options: []int{0, 2}},
		Status:     "answered",
	}}
	require.NoError(t, c.UpsertAttempts(context.Background(), "s1", attempts))

	require.Equal(t, "/v1/sessions/s1/attempts", gotPath)
	require.Len(t, gotBody.Attempts, 1)
	require.Equal(t, "q1", gotBody.Attempts[0].QuestionID)
	require.Equal(t, []int{0, 2}, gotBody.Attempts[0].Answer.Options)
}

func TestUpsertAttemptsEmptyIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", time.Second)
	require.NoError(t, c.UpsertAttempts(context.Background(), "s1", nil))
	require.False(t, called)
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		retryAfter string
		check      func(t *testing.T, err error)
	}{
		{
			name:   "429 maps to rate limit",
			status: http.StatusTooManyRequests, retryAfter: "7",
			check: func(t *testing.T, err error) {
				var rl *ErrRateLimit
				require.ErrorAs(t, err, &rl)
				require.Equal(t, 7*time.Second, rl.RetryAfter)
			},
		},
		{
			name:   "500 maps to unavailable",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var ua *ErrUnavailable
				require.ErrorAs(t, err, &ua)
				require.Equal(t, http.StatusInternalServerError, ua.Status)
			},
		},
		{
			name:   "400 maps to rejected",
			status: http.StatusBadRequest,
			check: func(t *testing.T, err error) {
				var rej *ErrRejected
				require.ErrorAs(t, err, &rej)
				require.Equal(t, http.StatusBadRequest, rej.Status)
				require.Equal(t, "bad payload", rej.Body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte("bad payload"))
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, "", time.Second)
			err := c.UpdateSession(context.Background(), SessionUpdate{SessionID: "s1"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestNetworkErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := NewHTTPClient(srv.URL, "", time.Second)
	err := c.UpdateSession(context.Background(), SessionUpdate{SessionID: "s1"})

	var ua *ErrUnavailable
	require.ErrorAs(t, err, &ua)
	require.Zero(t, ua.Status)
	require.Error(t, errors.Unwrap(err))
}
