package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.json>",
	Short: "Export all datasets, progress and settings to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		backup, err := st.ExportAll(cmd.Context())
		if err != nil {
			return err
		}
		raw, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}
		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Printf("Exported %d datasets, %d cards, %d reviews to %s\n",
			len(backup.Datasets), len(backup.Cards), len(backup.Reviews), args[0])
		return nil
	},
}
