package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusdeck/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent focus sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.EventRepo().QuerySessions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println(ui.Muted.Render("No sessions recorded yet."))
			return nil
		}

		fmt.Printf("%-19s  %-30s  %-6s  %-6s  %s\n", "Completed", "Task", "Min", "Focus", "XP")
		fmt.Println(strings.Repeat("─", 74))
		for _, r := range recs {
			title := r.TaskTitle
			if len(title) > 30 {
				title = title[:30]
			}
			fmt.Printf("%-19s  %-30s  %-6d  %-6d  +%d\n",
				r.CompletedAt.Local().Format("2006-01-02 15:04"),
				title, r.ActualMinutes, r.FocusScore, r.XPGained)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
