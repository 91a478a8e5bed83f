package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"focusdeck/internal/stats"
	"focusdeck/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show productivity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s := a.Stats()

		fmt.Println(ui.Heading(ui.IconBolt, "Statistics"))
		fmt.Println()

		into := stats.XPIntoLevel(s.XP)
		fmt.Println(ui.LabelValue("Level", fmt.Sprintf("%d  %s  %d/%d XP",
			s.Level, ui.Bar(float64(into)/float64(stats.XPPerLevel), 20), into, stats.XPPerLevel)))
		fmt.Println(ui.LabelValue("Total XP", s.XP))
		fmt.Println(ui.LabelValue("Streak", fmt.Sprintf("%d days", s.StudyStreak)))
		fmt.Println(ui.LabelValue("Study time", fmt.Sprintf("%dh %dm", s.TotalStudyTime/60, s.TotalStudyTime%60)))
		fmt.Println(ui.LabelValue("Tasks completed", s.TasksCompleted))
		fmt.Println(ui.LabelValue("Sessions", fmt.Sprintf("%d total, %d today", s.TotalPomodoroSessions, s.DailyPomodoroSessions)))
		fmt.Println(ui.LabelValue("Breaks earned", s.TotalBreaks))
		fmt.Println(ui.LabelValue("Focus score", fmt.Sprintf("%d (best %d)", s.FocusScore, s.BestFocusScore)))
		fmt.Println(ui.LabelValue("Efficiency", fmt.Sprintf("%d%% average, %.1f%% weekly", s.AverageEfficiency, s.WeeklyAverageEfficiency)))
		fmt.Println(ui.LabelValue("Special sessions", fmt.Sprintf("%d early bird, %d night owl, %d deep work",
			s.EarlyBirdSessions, s.NightOwlSessions, s.DeepWorkSessions)))

		fmt.Println()
		fmt.Println(ui.H2.Render("This week"))
		printWeek(s)
		return nil
	},
}

// printWeek renders per-weekday study minutes as a bar chart.
func printWeek(s stats.UserStats) {
	max := 0
	for _, m := range s.WeeklyStudyTime {
		if m > max {
			max = m
		}
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		minutes := s.WeeklyStudyTime[int(wd)]
		ratio := 0.0
		if max > 0 {
			ratio = float64(minutes) / float64(max)
		}
		fmt.Printf("  %-3s %s %s\n",
			wd.String()[:3], ui.Bar(ratio, 24), ui.Muted.Render(fmt.Sprintf("%d min", minutes)))
	}
}
