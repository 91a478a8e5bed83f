package stats

import "time"

// UserStats is the singleton aggregate of derived productivity metrics.
// It is created once with zeroed defaults, mutated only by Update, and
// persisted across runs as part of the state snapshot.
type UserStats struct {
	Level                   int       `json:"level"`
	XP                      int       `json:"xp"`
	FocusScore              int       `json:"focusScore"`
	StudyStreak             int       `json:"studyStreak"`
	LastStudyDate           time.Time `json:"lastStudyDate"`
	TotalStudyTime          int       `json:"totalStudyTime"`
	TasksCompleted          int       `json:"tasksCompleted"`
	AverageEfficiency       int       `json:"averageEfficiency"`
	TotalBreaks             int       `json:"totalBreaks"`
	BestFocusScore          int       `json:"bestFocusScore"`
	WeeklyStudyTime         [7]int    `json:"weeklyStudyTime"`
	TotalPomodoroSessions   int       `json:"totalPomodoroSessions"`
	DailyPomodoroSessions   int       `json:"dailyPomodoroSessions"`
	WeeklyAverageEfficiency float64   `json:"weeklyAverageEfficiency"`
	EarlyBirdSessions       int       `json:"earlyBirdSessions"`
	NightOwlSessions        int       `json:"nightOwlSessions"`
	DeepWorkSessions        int       `json:"deepWorkSessions"`
	LongestTask             int       `json:"longestTask"`
}

// New returns the all-zero starting stats (level 1).
func New() UserStats {
	return UserStats{Level: 1}
}

// XPPerLevel is the flat XP cost of each level.
const XPPerLevel = 1000

// LevelForXP returns the level for a cumulative XP total.
// Level is always floor(xp/1000)+1.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// XPIntoLevel returns how far into the current level the XP total is,
// for progress display.
func XPIntoLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % XPPerLevel
}
