package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"focusdeck/internal/ui"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Complete a task and collect XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		focus, _ := cmd.Flags().GetInt("focus")

		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := a.CompleteTask(cmd.Context(), id, focus)
		if err != nil {
			return err
		}
		if res == nil {
			fmt.Println(ui.Muted.Render(fmt.Sprintf("No task with id %d; nothing completed.", id)))
			return nil
		}

		fmt.Printf("%s Completed #%d %s\n", ui.IconCheck, res.Task.ID, res.Task.Title)
		fmt.Println(ui.LabelValue("XP", fmt.Sprintf("+%d %s", res.XPGained, ui.IconBolt)))
		for _, ach := range res.Unlocked {
			fmt.Printf("%s %s %s\n", ui.IconTrophy, ui.Prize.Render(ach.Name), ui.Muted.Render(fmt.Sprintf("+%d XP", ach.Points)))
		}
		if res.BonusXP > 0 {
			fmt.Println(ui.LabelValue("Total", fmt.Sprintf("%d XP, level %d", res.Stats.XP, res.Stats.Level)))
		}
		return nil
	},
}

func init() {
	doneCmd.Flags().IntP("focus", "f", 100, "Focus score for the session (0-100)")
}
