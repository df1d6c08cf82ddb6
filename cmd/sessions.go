package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List test sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.SessionRepo().ListSessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tSCORE\tACCURACY\tCREATED")
		for _, s := range sessions {
			score, accuracy := "-", "-"
			if s.Completed() {
				score = fmt.Sprintf("%.2f", s.TotalScore)
				accuracy = fmt.Sprintf("%.0f%%", s.Accuracy*100)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.Title, s.Status, score, accuracy,
				s.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
