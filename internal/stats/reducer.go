package stats

import (
	"math"
	"time"
)

// Session is a completed focus session as seen by the reducer:
// the task's planned duration in whole minutes and the observed
// focus score (0-100).
type Session struct {
	Duration   int
	FocusScore int
}

// breakInterval is the minutes of focus that earn one break.
const breakInterval = 25

// Update derives the next UserStats from a completed session. It is a
// pure function of its inputs: the receiver snapshot is read once, never
// mutated, and the wall clock is injected for testability.
//
// currentTaskDuration is the planned duration of whatever task is in
// progress when the reducer runs (0 if none). The facade clears the
// current task before invoking the reducer, so on the normal completion
// path this is 0 and LongestTask keeps its prior value.
func Update(s UserStats, sess Session, now time.Time, currentTaskDuration int) UserStats {
	// Efficiency and focus score share a scale today; kept distinct so
	// they can diverge once true elapsed time is captured.
	efficiency := sess.FocusScore

	out := s

	xpGained := roundHalf(float64(sess.Duration) * float64(sess.FocusScore) / 100)
	out.XP = s.XP + xpGained
	out.Level = LevelForXP(out.XP)

	// A session on the same calendar day or the day after the last one
	// extends the streak; anything else restarts it at 1. Same-day
	// completions extend the streak on every call, not once per day.
	if sameDay(now, s.LastStudyDate) || sameDay(now.AddDate(0, 0, -1), s.LastStudyDate) {
		out.StudyStreak = s.StudyStreak + 1
	} else {
		out.StudyStreak = 1
	}
	out.LastStudyDate = now

	out.WeeklyStudyTime[int(now.Weekday())] += sess.Duration

	hour := now.Hour()
	earlyBird := hour >= 5 && hour < 9
	nightOwl := hour >= 23 || hour < 5

	out.FocusScore = roundHalf(float64(s.FocusScore+sess.FocusScore) / 2)
	out.TotalStudyTime = s.TotalStudyTime + sess.Duration
	out.TasksCompleted = s.TasksCompleted + 1
	out.AverageEfficiency = roundHalf(
		float64(s.AverageEfficiency*s.TasksCompleted+efficiency) / float64(s.TasksCompleted+1))
	out.TotalBreaks = s.TotalBreaks + sess.Duration/breakInterval
	if sess.FocusScore > s.BestFocusScore {
		out.BestFocusScore = sess.FocusScore
	}
	out.TotalPomodoroSessions = s.TotalPomodoroSessions + 1
	out.DailyPomodoroSessions = s.DailyPomodoroSessions + 1
	out.WeeklyAverageEfficiency = (s.WeeklyAverageEfficiency*6 + float64(efficiency)) / 7
	if earlyBird {
		out.EarlyBirdSessions = s.EarlyBirdSessions + 1
	}
	if nightOwl {
		out.NightOwlSessions = s.NightOwlSessions + 1
	}
	if sess.FocusScore == 100 {
		out.DeepWorkSessions = s.DeepWorkSessions + 1
	}
	if currentTaskDuration > s.LongestTask {
		out.LongestTask = currentTaskDuration
	}

	return out
}

// sameDay reports whether a and b fall on the same calendar date,
// ignoring time of day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// roundHalf rounds half away from zero. All reducer inputs are
// non-negative, so this matches round-half-up.
func roundHalf(v float64) int {
	return int(math.Round(v))
}
