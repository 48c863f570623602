package cmd

import (
	"fmt"
	"time"

	"github.com/hkawai/kioku/internal/dashboard"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [dataset]",
	Short: "Show due counts, retention and frequent confusions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		datasetID := ""
		if len(args) == 1 {
			datasetID = args[0]
			if _, err := st.GetDataset(cmd.Context(), datasetID); err != nil {
				return err
			}
		}

		ov, err := dashboard.Load(cmd.Context(), st, datasetID, time.Now().UnixMilli())
		if err != nil {
			return err
		}

		fmt.Printf("Due now:    %d\n", ov.Due.Overdue)
		fmt.Printf("Due today:  %d\n", ov.Due.Today)
		if ov.Retention != nil {
			fmt.Printf("Retention:  %.0f%%\n", *ov.Retention*100)
		} else {
			fmt.Println("Retention:  no reviews yet")
		}
		if len(ov.Confusions) > 0 {
			fmt.Println("\nOften mixed up:")
			for _, c := range ov.Confusions {
				fmt.Printf("  %2d×  %s ↔ %s\n", c.Count, c.LabelA, c.LabelB)
			}
		}
		return nil
	},
}
