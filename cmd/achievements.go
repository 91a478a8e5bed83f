package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"focusdeck/internal/ui"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and unlock progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s := a.Stats()
		unlocked := 0

		fmt.Println(ui.Heading(ui.IconTrophy, "Achievements"))
		fmt.Println()

		for _, ach := range a.Achievements() {
			if ach.Unlocked() {
				unlocked++
				fmt.Printf("%s %s %s\n", ui.IconCheck, ui.Prize.Render(ach.Name),
					ui.Muted.Render(fmt.Sprintf("+%d XP, %s", ach.Points, ach.UnlockedAt.Format("Jan 2"))))
			} else {
				fmt.Printf("%s %s %s\n", ui.IconLock, ach.Name, ui.Muted.Render(fmt.Sprintf("+%d XP", ach.Points)))
			}
			fmt.Println("   " + ui.Hint.Render(ach.Description))
			if !ach.Unlocked() && ach.HasProgress && ach.Condition != nil {
				p := ach.Progress(s)
				fmt.Printf("   %s %s\n", ui.Bar(p, 20), ui.Muted.Render(fmt.Sprintf("%d%%", int(p*100))))
			}
		}

		fmt.Println()
		fmt.Println(ui.Muted.Render(fmt.Sprintf("%d of %d unlocked", unlocked, len(a.Achievements()))))
		return nil
	},
}
