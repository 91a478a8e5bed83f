package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusdeck/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to the deck",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		category, _ := cmd.Flags().GetString("category")
		notes, _ := cmd.Flags().GetString("notes")

		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		task, err := a.AddTask(cmd.Context(), strings.Join(args, " "), duration, category, notes)
		if err != nil {
			return err
		}

		fmt.Printf("%s Added #%d %s (%d min)\n", ui.IconCheck, task.ID, task.Title, task.Duration)
		return nil
	},
}

func init() {
	addCmd.Flags().IntP("duration", "d", 25, "Planned duration in minutes")
	addCmd.Flags().StringP("category", "c", "", "Task category")
	addCmd.Flags().StringP("notes", "n", "", "Free-form notes")
}
