package achievements

import (
	"fmt"
	"time"

	"focusdeck/internal/stats"
)

// Metric names a UserStats field a condition can test. Conditions are
// plain data rather than closures so the catalog can be persisted,
// inspected, and evaluated by one interpreter.
type Metric string

const (
	MetricTotalStudyTime          Metric = "totalStudyTime"
	MetricTasksCompleted          Metric = "tasksCompleted"
	MetricBestFocusScore          Metric = "bestFocusScore"
	MetricXP                      Metric = "xp"
	MetricStudyStreak             Metric = "studyStreak"
	MetricAverageEfficiency       Metric = "averageEfficiency"
	MetricNightOwlSessions        Metric = "nightOwlSessions"
	MetricLongestTask             Metric = "longestTask"
	MetricDeepWorkSessions        Metric = "deepWorkSessions"
	MetricWeeklyAverageEfficiency Metric = "weeklyAverageEfficiency"
	MetricTotalPomodoroSessions   Metric = "totalPomodoroSessions"
)

// Condition unlocks when the named metric reaches Threshold.
type Condition struct {
	Metric    Metric  `json:"metric"`
	Threshold float64 `json:"threshold"`
}

// Met evaluates the condition against a stats snapshot. An unknown
// metric is an evaluation error, not a panic; the evaluator treats it
// as "not met".
func (c Condition) Met(s stats.UserStats) (bool, error) {
	v, err := metricValue(s, c.Metric)
	if err != nil {
		return false, err
	}
	return v >= c.Threshold, nil
}

// Achievement is one catalog entry: an immutable definition plus the
// mutable unlock timestamp. UnlockedAt is set exactly once and never
// cleared.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Points      int        `json:"points"`
	Condition   *Condition `json:"condition,omitempty"`
	HasProgress bool       `json:"hasProgress"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// Unlocked reports whether the achievement has been earned.
func (a Achievement) Unlocked() bool {
	return a.UnlockedAt != nil
}

// Progress returns a [0,1] completion ratio for UI display, clamped
// to 1. Entries without a progress projection (and the placeholder
// entries with no condition) report 0 until unlocked, then 1.
func (a Achievement) Progress(s stats.UserStats) float64 {
	if a.Unlocked() {
		return 1
	}
	if !a.HasProgress || a.Condition == nil || a.Condition.Threshold <= 0 {
		return 0
	}
	v, err := metricValue(s, a.Condition.Metric)
	if err != nil {
		return 0
	}
	p := v / a.Condition.Threshold
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

func metricValue(s stats.UserStats, m Metric) (float64, error) {
	switch m {
	case MetricTotalStudyTime:
		return float64(s.TotalStudyTime), nil
	case MetricTasksCompleted:
		return float64(s.TasksCompleted), nil
	case MetricBestFocusScore:
		return float64(s.BestFocusScore), nil
	case MetricXP:
		return float64(s.XP), nil
	case MetricStudyStreak:
		return float64(s.StudyStreak), nil
	case MetricAverageEfficiency:
		return float64(s.AverageEfficiency), nil
	case MetricNightOwlSessions:
		return float64(s.NightOwlSessions), nil
	case MetricLongestTask:
		return float64(s.LongestTask), nil
	case MetricDeepWorkSessions:
		return float64(s.DeepWorkSessions), nil
	case MetricWeeklyAverageEfficiency:
		return s.WeeklyAverageEfficiency, nil
	case MetricTotalPomodoroSessions:
		return float64(s.TotalPomodoroSessions), nil
	default:
		return 0, fmt.Errorf("unknown metric: %q", m)
	}
}
