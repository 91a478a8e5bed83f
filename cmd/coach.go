package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"focusdeck/internal/tasks"
	"focusdeck/internal/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the study coach",
	Long:  "Sends one message when given as arguments, otherwise starts an interactive chat. End the interactive chat with Ctrl+D or /quit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		c := openCoach(cmd.Context(), st)

		if len(args) > 0 {
			fmt.Println(c.Chat(cmd.Context(), strings.Join(args, " ")))
			return nil
		}

		fmt.Println(ui.Heading(ui.IconBrain, "Study Coach"))
		fmt.Println(ui.Hint.Render("Ask anything about your studies. Ctrl+D or /quit to leave."))

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(ui.Key.Render("you> "))
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "/quit" {
				break
			}
			fmt.Println(ui.H2.Render("coach>"), c.Chat(cmd.Context(), line))
		}
		fmt.Println()
		return scanner.Err()
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain <subject> <concept...>",
	Short: "Have the coach explain a concept",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		c := openCoach(cmd.Context(), st)
		fmt.Println(c.ExplainConcept(cmd.Context(), args[0], strings.Join(args[1:], " ")))
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [id]",
	Short: "Analyze a completed session",
	Long:  "Analyzes the given completed task, or the most recently completed one.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var task tasks.Task
		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			t, ok := a.Task(id)
			if !ok {
				return fmt.Errorf("task %d not found", id)
			}
			if !t.Completed {
				return fmt.Errorf("task %d is not completed yet", id)
			}
			task = t
		} else {
			found := false
			for _, t := range a.Tasks() {
				if !t.Completed {
					continue
				}
				if !found || t.CompletedAt.After(*task.CompletedAt) {
					task = t
					found = true
				}
			}
			if !found {
				return fmt.Errorf("no completed tasks to analyze")
			}
		}

		c := openCoach(cmd.Context(), st)
		fmt.Println(c.AnalyzePerformance(cmd.Context(), task, a.Stats()))
		return nil
	},
}

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Get a break activity suggestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")

		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c := openCoach(cmd.Context(), st)
		fmt.Printf("%s %s\n", ui.IconCoffee, c.SuggestBreak(cmd.Context(), minutes, a.Stats().FocusScore))
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <subject>",
	Short: "Generate a study plan",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")

		a, st, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c := openCoach(cmd.Context(), st)
		plan, err := c.GenerateStudyPlan(cmd.Context(), strings.Join(args, " "), minutes, a.Stats())
		if err != nil {
			return err
		}

		fmt.Println(ui.Heading(ui.IconBrain, "Study Plan: "+plan.Subject))
		fmt.Println()
		for i, sess := range plan.Sessions {
			fmt.Printf("%s Session %d (%d min): %s\n", ui.IconTomato, i+1, sess.WorkMinutes, sess.Objective)
			if sess.BreakMinutes > 0 {
				fmt.Printf("   %s %d min break\n", ui.IconCoffee, sess.BreakMinutes)
			}
		}
		fmt.Println()
		fmt.Println(ui.H2.Render("Tips"))
		for _, tip := range plan.Tips {
			fmt.Println("  - " + tip)
		}
		fmt.Println()
		fmt.Println(ui.Muted.Render(fmt.Sprintf("Total: %d minutes", plan.TotalMinutes())))
		return nil
	},
}

func init() {
	breakCmd.Flags().IntP("minutes", "m", 5, "Break length in minutes")
	planCmd.Flags().IntP("minutes", "m", 60, "Available study time in minutes")
}
