package cmd

import (
	"fmt"

	"github.com/hkawai/kioku/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI on the home screen.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(st)
}
