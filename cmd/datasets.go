package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage imported datasets",
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		summaries, err := st.ListDatasets(ctx)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No datasets. Import one with: kioku import <file.json>")
			return nil
		}

		now := time.Now().UnixMilli()
		for _, s := range summaries {
			due, err := st.CountDue(ctx, s.DatasetID, now)
			if err != nil {
				return err
			}
			fmt.Printf("%-20s  %-30s  %4d cards  %4d due\n",
				s.DatasetID, s.Title, s.CardCount, due.Overdue)
		}
		return nil
	},
}

var datasetsDeleteCmd = &cobra.Command{
	Use:   "delete <dataset>",
	Short: "Delete a dataset and all its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.DeleteDataset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsDeleteCmd)
}
