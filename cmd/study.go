package cmd

import (
	"fmt"

	"github.com/hkawai/kioku/internal/app"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study [dataset]",
	Short: "Jump straight into a study run",
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
		return app.RunStudy(st, datasetID)
	},
}
