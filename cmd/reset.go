package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all tasks, stats, and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this erases all progress; re-run with --yes to confirm")
		}

		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		a.Reset(cmd.Context())
		fmt.Println("All progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
