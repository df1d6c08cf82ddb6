package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examdeck/internal/bank"
)

var importCmd = &cobra.Command{
	Use:   "import <bank.json>",
	Short: "Import a question bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		im := bank.NewImporter(st.BankRepo())
		n, err := im.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		total, err := st.BankRepo().CountQuestions(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d questions (%d in bank)\n", n, total)
		return nil
	},
}
