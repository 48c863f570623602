package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a flashcard dataset from a JSON file",
	Long: `Import a dataset file. Re-importing a dataset with the same id replaces
its cards and clears its review history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		summary, err := st.ImportDataset(cmd.Context(), raw)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %q (%s): %d cards\n", summary.Title, summary.DatasetID, summary.CardCount)
		return nil
	},
}
