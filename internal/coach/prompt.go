package coach

import (
	"fmt"
	"strings"

	"focusdeck/internal/stats"
	"focusdeck/internal/tasks"
)

const coachSystemPrompt = `You are an experienced educational tutor and study coach integrated into a Pomodoro Timer app. Your expertise lies in the Pomodoro Technique and effective learning strategies. You communicate in a supportive, encouraging, and pedagogical manner.

Your teaching approach:
1. Provide clear, structured explanations with relevant examples
2. Break down complex concepts into manageable steps
3. Offer constructive feedback and positive reinforcement
4. Adapt teaching style to user's learning pace and preferences
5. Use proven educational techniques and metacognitive strategies
6. Foster a growth mindset and learning autonomy

Your core responsibilities:
1. Guide users through effective Pomodoro sessions with clear learning objectives
2. Analyze study patterns and explain the reasoning behind recommended work/break ratios
3. Create personalized study plans with detailed learning strategies
4. Provide research-backed focus and productivity techniques
5. Help maintain study momentum through positive reinforcement
6. Teach time management and self-regulation skills

You understand and teach that:
- Short breaks (5 mins) enhance learning through spaced repetition
- Longer breaks (15-30 mins) consolidate learning and prevent cognitive fatigue
- Different subjects benefit from tailored Pomodoro strategies
- Regular reflection and adjustment optimize learning efficiency
- Building sustainable study habits requires consistent practice and support`

func buildExplainUserMessage(subject, concept string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Subject: %s\n", subject))
	b.WriteString(fmt.Sprintf("Concept: %s\n", concept))

	b.WriteString(`
Instructions:
Explain this concept clearly:
1. Start with a one-sentence summary of what the concept is.
2. Break the explanation into manageable steps with a concrete example.
3. Mention one common misconception or pitfall to watch for.
4. End with a short suggestion for how to practice it during a Pomodoro session.
Keep the whole explanation under 300 words.`)

	return b.String()
}

func buildAnalyzeUserMessage(task tasks.Task, s stats.UserStats) string {
	var b strings.Builder

	b.WriteString("Completed Task:\n")
	b.WriteString(fmt.Sprintf("- Title: %s\n", task.Title))
	if task.Category != "" {
		b.WriteString(fmt.Sprintf("- Category: %s\n", task.Category))
	}
	b.WriteString(fmt.Sprintf("- Planned duration: %d minutes\n", task.Duration))
	b.WriteString(fmt.Sprintf("- Actual duration: %d minutes\n", task.ActualDuration))
	b.WriteString(fmt.Sprintf("- Efficiency: %d%%\n", task.Efficiency))
	b.WriteString(fmt.Sprintf("- Focus score: %d\n", task.FocusScore))

	writeStatsSummary(&b, s)

	b.WriteString(`
Instructions:
Analyze this session:
1. Comment on how the session went relative to the user's recent averages.
2. Point out one concrete thing that went well.
3. Suggest one specific adjustment for the next session (timing, duration, or environment).
Keep the analysis under 150 words and stay encouraging.`)

	return b.String()
}

func buildBreakUserMessage(breakMinutes, focusScore int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Break duration: %d minutes\n", breakMinutes))
	b.WriteString(fmt.Sprintf("Focus score from the last session: %d\n", focusScore))

	b.WriteString(`
Instructions:
Suggest one break activity suited to this break length and focus level. A low
focus score suggests mental fatigue, so favor restorative activities; a high
score means a light activity is enough. Explain in one sentence why the
activity helps, then describe it in 2-3 sentences. Keep it under 80 words.`)

	return b.String()
}

func buildPlanUserMessage(subject string, durationMinutes int, s stats.UserStats) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Subject: %s\n", subject))
	b.WriteString(fmt.Sprintf("Available time: %d minutes\n", durationMinutes))

	writeStatsSummary(&b, s)

	b.WriteString(`
Instructions:
Create a personalized study plan that fits the available time:
1. Split the time into Pomodoro work sessions with breaks between them.
2. Give each session a clear learning objective for the subject.
3. Size the sessions to the user's demonstrated focus level.
4. Include 2-4 concrete study tips tailored to the subject.`)

	return b.String()
}

func writeStatsSummary(b *strings.Builder, s stats.UserStats) {
	b.WriteString("\nUser Stats:\n")
	b.WriteString(fmt.Sprintf("- Level: %d (XP: %d)\n", s.Level, s.XP))
	b.WriteString(fmt.Sprintf("- Study streak: %d days\n", s.StudyStreak))
	b.WriteString(fmt.Sprintf("- Total study time: %d minutes\n", s.TotalStudyTime))
	b.WriteString(fmt.Sprintf("- Tasks completed: %d\n", s.TasksCompleted))
	b.WriteString(fmt.Sprintf("- Average efficiency: %d%%\n", s.AverageEfficiency))
	b.WriteString(fmt.Sprintf("- Best focus score: %d\n", s.BestFocusScore))
	b.WriteString(fmt.Sprintf("- Pomodoro sessions today: %d\n", s.DailyPomodoroSessions))
}
