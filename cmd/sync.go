package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examdeck/internal/exam"
	"github.com/abhisek/examdeck/internal/remote"
	"github.com/abhisek/examdeck/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push unsynced attempts to the results service",
	Long: "Uploads every attempt the heartbeat could not deliver, for example\n" +
		"after taking tests offline. Requires EXAMDECK_REMOTE_URL to be set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc := buildRemote()
		if rc == nil {
			return fmt.Errorf("no results service configured; set EXAMDECK_REMOTE_URL")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := pushPendingAttempts(cmd.Context(), st.SessionRepo(), rc)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Println("Everything already synced.")
			return nil
		}
		fmt.Printf("Synced %d attempts.\n", n)
		return nil
	},
}

// pushPendingAttempts uploads dirty attempts session by session, marking
// each acknowledged batch synced. Returns how many attempts were pushed.
func pushPendingAttempts(ctx context.Context, repo store.SessionRepo, rc remote.Client) (int, error) {
	pending, err := repo.GetPendingAttempts(ctx)
	if err != nil {
		return 0, fmt.Errorf("read pending attempts: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	bySession := make(map[string][]*exam.Attempt)
	order := make([]string, 0)
	for _, a := range pending {
		if _, seen := bySession[a.SessionID]; !seen {
			order = append(order, a.SessionID)
		}
		bySession[a.SessionID] = append(bySession[a.SessionID], a)
	}

	pushed := 0
	for _, sid := range order {
		batch := bySession[sid]
		payload := make([]remote.AttemptUpsert, 0, len(batch))
		for _, a := range batch {
			payload = append(payload, remote.AttemptPayload(a))
		}
		if err := rc.UpsertAttempts(ctx, sid, payload); err != nil {
			return pushed, fmt.Errorf("push attempts for %s: %w", sid, err)
		}
		if err := repo.MarkAttemptsSynced(ctx, batch); err != nil {
			return pushed, fmt.Errorf("mark attempts synced: %w", err)
		}
		pushed += len(batch)
	}
	return pushed, nil
}
