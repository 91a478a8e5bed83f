package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"focusdeck/internal/app"
	"focusdeck/internal/coach"
	"focusdeck/internal/llm"
	"focusdeck/internal/stats"
	"focusdeck/internal/store"
	"focusdeck/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "focusdeck",
	Short: "Pomodoro productivity dashboard with an AI study coach",
	Long:  "FocusDeck — terminal Pomodoro tracker with tasks, XP, achievements, and an AI study coach.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		printDashboard(a)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FOCUSDECK_DB env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FOCUSDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store at path.
func openStore(path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// openApp opens the store and restores application state. A failed
// restore is reported as a warning; the app starts fresh.
func openApp(cmd *cobra.Command) (*app.App, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := openStore(dbPath)
	if err != nil {
		return nil, nil, err
	}

	a := app.New(st.SnapshotRepo(), st.EventRepo())
	if err := a.Load(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: starting fresh: %v\n", err)
	}
	return a, st, nil
}

// openCoach builds the study coach. Without a configured provider the
// coach runs in offline mode and degrades to canned replies.
func openCoach(ctx context.Context, st *store.Store) *coach.Service {
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI coaching will use offline fallbacks.")
		return coach.NewService(nil, coach.DefaultConfig())
	}
	return coach.NewService(provider, coach.DefaultConfig())
}

func printDashboard(a *app.App) {
	s := a.Stats()

	fmt.Println(ui.Heading(ui.IconTomato, "FocusDeck"))
	fmt.Println()

	into := stats.XPIntoLevel(s.XP)
	fmt.Println(ui.LabelValue("Level", fmt.Sprintf("%d  %s  %d/%d XP",
		s.Level, ui.Bar(float64(into)/float64(stats.XPPerLevel), 20), into, stats.XPPerLevel)))
	fmt.Println(ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, s.StudyStreak)))
	fmt.Println(ui.LabelValue("Today", fmt.Sprintf("%d sessions", s.DailyPomodoroSessions)))
	fmt.Println(ui.LabelValue("Focus", fmt.Sprintf("%d (best %d)", s.FocusScore, s.BestFocusScore)))

	if cur, ok := a.CurrentTask(); ok {
		fmt.Println()
		fmt.Println(ui.H2.Render("Current task"))
		fmt.Printf("  #%d %s (%d min)\n", cur.ID, cur.Title, cur.Duration)
	}

	open := 0
	for _, t := range a.Tasks() {
		if !t.Completed {
			open++
		}
	}
	fmt.Println()
	fmt.Println(ui.Muted.Render(fmt.Sprintf("%d open tasks — run `focusdeck list` to see them", open)))
}
