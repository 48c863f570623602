package cmd

import (
	"fmt"
	"time"

	"github.com/hkawai/kioku/internal/store"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change app settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		settings, err := st.Settings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("target-retention: %.2f\n", settings.TargetRetention)
		if settings.ExamDate != nil {
			fmt.Printf("exam-date:        %s\n", *settings.ExamDate)
		} else {
			fmt.Println("exam-date:        not set")
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch store.SettingsPatch

		if cmd.Flags().Changed("target-retention") {
			v, _ := cmd.Flags().GetFloat64("target-retention")
			if v < 0.70 || v > 0.97 {
				return fmt.Errorf("target-retention must be between 0.70 and 0.97")
			}
			patch.TargetRetention = &v
		}
		if cmd.Flags().Changed("exam-date") {
			v, _ := cmd.Flags().GetString("exam-date")
			if _, err := time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
				return fmt.Errorf("exam-date must be YYYY-MM-DD")
			}
			patch.ExamDate = &v
		}
		if ok, _ := cmd.Flags().GetBool("clear-exam-date"); ok {
			patch.ClearExamDate = true
		}
		if patch.TargetRetention == nil && patch.ExamDate == nil && !patch.ClearExamDate {
			return fmt.Errorf("nothing to change, see --help")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		settings, err := st.UpdateSettings(cmd.Context(), patch)
		if err != nil {
			return err
		}
		fmt.Printf("target-retention: %.2f\n", settings.TargetRetention)
		if settings.ExamDate != nil {
			fmt.Printf("exam-date:        %s\n", *settings.ExamDate)
		} else {
			fmt.Println("exam-date:        not set")
		}
		return nil
	},
}

func init() {
	settingsSetCmd.Flags().Float64("target-retention", 0, "Target recall probability (0.70-0.97)")
	settingsSetCmd.Flags().String("exam-date", "", "Exam date (YYYY-MM-DD); reviews are never scheduled past it")
	settingsSetCmd.Flags().Bool("clear-exam-date", false, "Remove the exam date")

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
