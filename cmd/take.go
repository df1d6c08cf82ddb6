package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examdeck/internal/bank"
)

var takeCmd = &cobra.Command{
	Use:   "take [session-id]",
	Short: "Start or resume a test",
	Long: "Without arguments, generates a new test from the question bank and\n" +
		"starts it. With a session id, resumes that session.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runApp(cmd, args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}

		defaults := testDefaults(cmd)
		title, _ := cmd.Flags().GetString("title")
		subject, _ := cmd.Flags().GetString("subject")

		gen := bank.NewGenerator(st.BankRepo(), st.SessionRepo())
		session, err := gen.Generate(cmd.Context(), bank.GenerateInput{
			Title:        title,
			Count:        defaults.QuestionCount,
			DurationSecs: defaults.DurationSecs,
			Shuffle:      defaults.Shuffle,
			Subject:      subject,
		})
		st.Close()
		if err != nil {
			return fmt.Errorf("generate test: %w", err)
		}

		return runApp(cmd, session.ID)
	},
}

func init() {
	takeCmd.Flags().String("title", "", "Title for the generated test")
	takeCmd.Flags().String("subject", "", "Only pick questions from this subject")
}
