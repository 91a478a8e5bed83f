package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusdeck/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tasks := a.Tasks()
		cur, hasCur := a.CurrentTask()

		shown := 0
		fmt.Printf("%-5s  %-40s  %-10s  %-6s  %s\n", "ID", "Title", "Category", "Min", "Status")
		fmt.Println(strings.Repeat("─", 78))
		for _, t := range tasks {
			if t.Completed && !all {
				continue
			}
			shown++

			status := ui.Muted.Render("open")
			switch {
			case t.Completed:
				status = ui.Good.Render(fmt.Sprintf("done (%d%%)", t.Efficiency))
			case hasCur && cur.ID == t.ID:
				status = ui.Warn.Render("current")
			}

			title := t.Title
			if len(title) > 40 {
				title = title[:40]
			}
			fmt.Printf("%-5d  %-40s  %-10s  %-6d  %s\n", t.ID, title, t.Category, t.Duration, status)
		}

		if shown == 0 {
			fmt.Println(ui.Muted.Render("Nothing here. Add a task with `focusdeck add`."))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include completed tasks")
}
