package achievements

// cond is a catalog-building shorthand.
func cond(m Metric, threshold float64) *Condition {
	return &Condition{Metric: m, Threshold: threshold}
}

// Catalog returns a fresh copy of the fixed achievement catalog with
// every entry locked. The catalog is defined at build time; only the
// unlock timestamps change at runtime.
//
// Note: "efficiency_master" appears twice with different conditions.
// Both entries are evaluated and can unlock independently, but id-based
// lookup only ever reaches the later one. Preserved as-is pending
// product clarification.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first_pomodoro",
			Name:        "First Pomodoro",
			Description: "Complete your very first 25-minute session.",
			Points:      10,
			Condition:   cond(MetricTotalStudyTime, 25),
		},
		{
			ID:          "pomodoro_rookie",
			Name:        "Pomodoro Rookie",
			Description: "Complete 5 study sessions.",
			Points:      20,
			Condition:   cond(MetricTasksCompleted, 5),
			HasProgress: true,
		},
		{
			ID:          "pomodoro_pro",
			Name:        "Pomodoro Pro",
			Description: "Complete 10 study sessions.",
			Points:      30,
			Condition:   cond(MetricTasksCompleted, 10),
			HasProgress: true,
		},
		{
			ID:          "focus_guru",
			Name:        "Focus Guru",
			Description: "Achieve a focus score of 90% or higher.",
			Points:      25,
			Condition:   cond(MetricBestFocusScore, 90),
			HasProgress: true,
		},
		{
			ID:          "xp_collector",
			Name:        "XP Collector",
			Description: "Earn 500 XP points.",
			Points:      40,
			Condition:   cond(MetricXP, 500),
			HasProgress: true,
		},
		{
			ID:          "consistency_champion",
			Name:        "Consistency Champion",
			Description: "Maintain a study streak for 7 consecutive days.",
			Points:      50,
			Condition:   cond(MetricStudyStreak, 7),
			HasProgress: true,
		},
		{
			ID:          "efficiency_master",
			Name:        "Efficiency Master",
			Description: "Maintain an average efficiency of 85% or higher.",
			Points:      35,
			Condition:   cond(MetricAverageEfficiency, 85),
			HasProgress: true,
		},
		{
			ID:          "level_up",
			Name:        "Night Owl",
			Description: "Complete 5 Pomodoro sessions between 11 PM and 5 AM in one day.",
			Points:      20,
			Condition:   cond(MetricNightOwlSessions, 5),
			HasProgress: true,
		},
		{
			ID:          "task_tamer",
			Name:        "Task Tamer",
			Description: "Finish a task that requires 4 or more Pomodoros.",
			Points:      30,
			Condition:   cond(MetricLongestTask, 4),
			HasProgress: true,
		},
		{
			ID:          "deep_work",
			Name:        "Deep Work",
			Description: "Complete a session with 100% focus for the full 25 minutes.",
			Points:      40,
			Condition:   cond(MetricDeepWorkSessions, 1),
		},
		{
			ID:          "efficiency_master",
			Name:        "Efficiency Master",
			Description: "Maintain an average session efficiency of 95% or higher over an entire week.",
			Points:      50,
			Condition:   cond(MetricWeeklyAverageEfficiency, 95),
			HasProgress: true,
		},
		{
			ID:          "marathoner",
			Name:        "Marathoner",
			Description: "Accumulate 100 hours of focused work (tracked over sessions).",
			Points:      100,
			Condition:   cond(MetricTotalStudyTime, 100*60),
			HasProgress: true,
		},
		{
			ID:          "productivity_legend",
			Name:        "Productivity Legend",
			Description: "Reach 1,000 total Pomodoro sessions.",
			Points:      200,
			Condition:   cond(MetricTotalPomodoroSessions, 1000),
			HasProgress: true,
		},
		// The last two entries have no automatic unlock condition yet:
		// monthly achievement tracking and peer challenges are not part
		// of the stats model. They stay locked.
		{
			ID:          "achievement_collector",
			Name:        "Achievement Collector",
			Description: "Unlock every achievement available in a single month.",
			Points:      300,
		},
		{
			ID:          "pomodoro_champion",
			Name:        "Pomodoro Champion",
			Description: "Earn the highest monthly productivity score in a peer challenge.",
			Points:      250,
		},
	}
}

// ByID returns the catalog entry with the given id, or false if absent.
// When an id is duplicated, the later entry wins.
func ByID(achs []Achievement, id string) (Achievement, bool) {
	var found Achievement
	ok := false
	for _, a := range achs {
		if a.ID == id {
			found = a
			ok = true
		}
	}
	return found, ok
}
