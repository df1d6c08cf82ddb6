package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/examdeck/internal/app"
	"github.com/abhisek/examdeck/internal/engine"
	"github.com/abhisek/examdeck/internal/remote"
	"github.com/abhisek/examdeck/internal/screens/examroom"
	"github.com/abhisek/examdeck/internal/screens/home"
	"github.com/abhisek/examdeck/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI. A
// non-empty sessionID drops straight into the exam room for that session.
func runApp(cmd *cobra.Command, sessionID string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	rc := buildRemote()

	opts := app.Options{
		SessionRepo:       st.SessionRepo(),
		BankRepo:          st.BankRepo(),
		Remote:            rc,
		Defaults:          testDefaults(cmd),
		HeartbeatInterval: cfg.Heartbeat.Interval,
	}

	if sessionID != "" {
		opts.Initial = examroom.New(st.SessionRepo(), rc, sessionID,
			engine.DefaultOptions(), cfg.Heartbeat.Interval)
	}

	return app.Run(opts)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildRemote returns the results-service client, or nil when none is
// configured so the app runs offline.
func buildRemote() remote.Client {
	if !cfg.Remote.Configured() {
		return nil
	}
	hc := remote.NewHTTPClient(cfg.Remote.BaseURL, cfg.Remote.APIKey, cfg.Remote.Timeout)
	return remote.WithRetry(hc, remote.DefaultRetryConfig())
}

func testDefaults(cmd *cobra.Command) home.TestDefaults {
	count, _ := cmd.Flags().GetInt("questions")
	dur, _ := cmd.Flags().GetDuration("duration")
	shuffle, _ := cmd.Flags().GetBool("shuffle")
	if dur <= 0 {
		dur = 30 * time.Minute
	}
	return home.TestDefaults{
		QuestionCount: count,
		DurationSecs:  int(dur.Seconds()),
		Shuffle:       shuffle,
	}
}
