package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file.json>",
	Short: "Replace the entire store with a backup file",
	Long: `Restore from a backup created by "kioku export". Everything currently in
the store is replaced; an unreadable or wrong-version backup leaves the
store untouched.`,
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

		if err := st.ImportAll(cmd.Context(), raw); err != nil {
			return err
		}
		fmt.Println("Restore complete.")
		return nil
	},
}
