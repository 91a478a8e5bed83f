package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"focusdeck/internal/timer"
	"focusdeck/internal/ui"
)

var startCmd = &cobra.Command{
	Use:   "start [id]",
	Short: "Run a focus session with a live countdown",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()

		minutes, _ := cmd.Flags().GetInt("minutes")
		var taskID int64
		if len(args) == 1 {
			taskID, err = strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			if err := a.SetCurrentTask(ctx, taskID); err != nil {
				return err
			}
			if !cmd.Flags().Changed("minutes") {
				if t, ok := a.Task(taskID); ok {
					minutes = t.Duration
				}
			}
		} else if !cmd.Flags().Changed("minutes") {
			minutes = a.Settings().FocusMinutes
		}

		total := time.Duration(minutes) * time.Minute

		if cur, ok := a.CurrentTask(); ok {
			fmt.Printf("%s Focusing on #%d %s\n", ui.IconTomato, cur.ID, cur.Title)
		} else {
			fmt.Printf("%s Focus session\n", ui.IconTomato)
		}

		a.ToggleTimer(ctx)

		done := make(chan struct{})
		eng := timer.NewEngine()
		eng.OnTick(func(remaining time.Duration) {
			fmt.Printf("\r  %s  ", ui.Title.Render(timer.FormatRemaining(remaining)))
		})
		eng.OnComplete(func() { close(done) })

		if err := eng.Start(total); err != nil {
			return err
		}

		finished := false
		select {
		case <-done:
			finished = true
		case <-ctx.Done():
		}

		elapsed := eng.Elapsed()
		eng.Stop()
		a.ToggleTimer(cmd.Context())
		fmt.Println()

		if !finished {
			fmt.Printf("%s Session stopped after %s.\n", ui.IconCoffee, timer.FormatRemaining(elapsed))
			if taskID != 0 {
				focus := timer.Efficiency(elapsed, total)
				fmt.Println(ui.Hint.Render(fmt.Sprintf("Finish later with `focusdeck done %d --focus %d`", taskID, focus)))
			}
			return nil
		}

		fmt.Printf("%s Session complete!\n", ui.IconCheck)
		if taskID == 0 {
			return nil
		}

		res, err := a.CompleteTask(cmd.Context(), taskID, timer.Efficiency(total, total))
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}
		fmt.Println(ui.LabelValue("XP", fmt.Sprintf("+%d %s", res.XPGained, ui.IconBolt)))
		for _, ach := range res.Unlocked {
			fmt.Printf("%s %s %s\n", ui.IconTrophy, ui.Prize.Render(ach.Name), ui.Muted.Render(fmt.Sprintf("+%d XP", ach.Points)))
		}
		return nil
	},
}

func init() {
	startCmd.Flags().IntP("minutes", "m", 25, "Session length in minutes")
}
