package stats

import (
	"testing"
	"time"
)

// A Tuesday at 10:00 local time.
var tuesdayMorning = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

func TestUpdateFirstSession(t *testing.T) {
	s := New()
	out := Update(s, Session{Duration: 25, FocusScore: 100}, tuesdayMorning, 0)

	if out.XP != 25 {
		t.Errorf("XP = %d, want 25", out.XP)
	}
	if out.Level != 1 {
		t.Errorf("Level = %d, want 1", out.Level)
	}
	if out.TasksCompleted != 1 {
		t.Errorf("TasksCompleted = %d, want 1", out.TasksCompleted)
	}
	if out.AverageEfficiency != 100 {
		t.Errorf("AverageEfficiency = %d, want 100", out.AverageEfficiency)
	}
	if out.BestFocusScore != 100 {
		t.Errorf("BestFocusScore = %d, want 100", out.BestFocusScore)
	}
	if out.DeepWorkSessions != 1 {
		t.Errorf("DeepWorkSessions = %d, want 1", out.DeepWorkSessions)
	}
	if out.WeeklyStudyTime[2] != 25 {
		t.Errorf("WeeklyStudyTime[2] = %d, want 25", out.WeeklyStudyTime[2])
	}
	if out.TotalStudyTime != 25 {
		t.Errorf("TotalStudyTime = %d, want 25", out.TotalStudyTime)
	}
	if out.StudyStreak != 1 {
		t.Errorf("StudyStreak = %d, want 1", out.StudyStreak)
	}
	if out.TotalBreaks != 1 {
		t.Errorf("TotalBreaks = %d, want 1", out.TotalBreaks)
	}
}

func TestUpdateIsPure(t *testing.T) {
	s := New()
	s.XP = 440
	s.FocusScore = 70
	s.TasksCompleted = 3
	s.AverageEfficiency = 80
	before := s

	a := Update(s, Session{Duration: 50, FocusScore: 85}, tuesdayMorning, 30)
	b := Update(s, Session{Duration: 50, FocusScore: 85}, tuesdayMorning, 30)

	if s != before {
		t.Fatal("Update mutated its input")
	}
	if a != b {
		t.Errorf("identical inputs produced different outputs:\n%+v\n%+v", a, b)
	}
}

func TestUpdateLevelInvariant(t *testing.T) {
	s := New()
	now := tuesdayMorning
	for i := 0; i < 50; i++ {
		s = Update(s, Session{Duration: 45, FocusScore: 90}, now, 0)
		if want := s.XP/XPPerLevel + 1; s.Level != want {
			t.Fatalf("after %d sessions: Level = %d, want %d (XP=%d)", i+1, s.Level, want, s.XP)
		}
		now = now.Add(3 * time.Hour)
	}
}

func TestUpdateBoundedAverages(t *testing.T) {
	s := New()
	now := tuesdayMorning
	scores := []int{0, 100, 37, 100, 92, 5, 61, 100, 88}
	for _, score := range scores {
		s = Update(s, Session{Duration: 25, FocusScore: score}, now, 0)
		if s.AverageEfficiency < 0 || s.AverageEfficiency > 100 {
			t.Fatalf("AverageEfficiency out of range: %d", s.AverageEfficiency)
		}
		if s.FocusScore < 0 || s.FocusScore > 100 {
			t.Fatalf("FocusScore out of range: %d", s.FocusScore)
		}
		if s.WeeklyAverageEfficiency < 0 || s.WeeklyAverageEfficiency > 100 {
			t.Fatalf("WeeklyAverageEfficiency out of range: %f", s.WeeklyAverageEfficiency)
		}
		now = now.Add(time.Hour)
	}
}

func TestStreak(t *testing.T) {
	day := func(d, hour int) time.Time {
		return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
	}

	s := New()

	// First ever session starts the streak at 1.
	s = Update(s, Session{Duration: 25, FocusScore: 80}, day(10, 9), 0)
	if s.StudyStreak != 1 {
		t.Fatalf("streak after first session = %d, want 1", s.StudyStreak)
	}

	// Same calendar day extends the streak on every completion.
	s = Update(s, Session{Duration: 25, FocusScore: 80}, day(10, 15), 0)
	if s.StudyStreak != 2 {
		t.Fatalf("streak after same-day repeat = %d, want 2", s.StudyStreak)
	}

	// Next day extends.
	s = Update(s, Session{Duration: 25, FocusScore: 80}, day(11, 8), 0)
	if s.StudyStreak != 3 {
		t.Fatalf("streak after next-day session = %d, want 3", s.StudyStreak)
	}

	// A two-day gap restarts at 1.
	s = Update(s, Session{Duration: 25, FocusScore: 80}, day(14, 8), 0)
	if s.StudyStreak != 1 {
		t.Fatalf("streak after gap = %d, want 1", s.StudyStreak)
	}
}

func TestTimeOfDayClassification(t *testing.T) {
	tests := []struct {
		hour      string
		now       time.Time
		earlyBird int
		nightOwl  int
	}{
		{"04:30", time.Date(2025, 6, 10, 4, 30, 0, 0, time.UTC), 0, 1},
		{"05:00", time.Date(2025, 6, 10, 5, 0, 0, 0, time.UTC), 1, 0},
		{"08:59", time.Date(2025, 6, 10, 8, 59, 0, 0, time.UTC), 1, 0},
		{"09:00", time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), 0, 0},
		{"22:59", time.Date(2025, 6, 10, 22, 59, 0, 0, time.UTC), 0, 0},
		{"23:00", time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC), 0, 1},
	}

	for _, tt := range tests {
		out := Update(New(), Session{Duration: 25, FocusScore: 80}, tt.now, 0)
		if out.EarlyBirdSessions != tt.earlyBird {
			t.Errorf("%s: EarlyBirdSessions = %d, want %d", tt.hour, out.EarlyBirdSessions, tt.earlyBird)
		}
		if out.NightOwlSessions != tt.nightOwl {
			t.Errorf("%s: NightOwlSessions = %d, want %d", tt.hour, out.NightOwlSessions, tt.nightOwl)
		}
	}
}

func TestXPRounding(t *testing.T) {
	tests := []struct {
		duration int
		score    int
		want     int
	}{
		{25, 100, 25},
		{25, 90, 23},  // 22.5 rounds up
		{25, 0, 0},
		{50, 85, 43},  // 42.5 rounds up
		{1, 49, 0},    // 0.49 rounds down
		{1, 50, 1},    // 0.5 rounds up
	}

	for _, tt := range tests {
		out := Update(New(), Session{Duration: tt.duration, FocusScore: tt.score}, tuesdayMorning, 0)
		if out.XP != tt.want {
			t.Errorf("Update(%d min, score %d): XP = %d, want %d", tt.duration, tt.score, out.XP, tt.want)
		}
	}
}

func TestBreaksAndWeeklySmoothing(t *testing.T) {
	s := New()
	s.WeeklyAverageEfficiency = 70
	out := Update(s, Session{Duration: 55, FocusScore: 84}, tuesdayMorning, 0)

	if out.TotalBreaks != 2 {
		t.Errorf("TotalBreaks = %d, want 2", out.TotalBreaks)
	}
	want := (70.0*6 + 84) / 7
	if out.WeeklyAverageEfficiency != want {
		t.Errorf("WeeklyAverageEfficiency = %f, want %f", out.WeeklyAverageEfficiency, want)
	}
}

func TestDailySessionsNeverReset(t *testing.T) {
	s := New()
	s = Update(s, Session{Duration: 25, FocusScore: 80}, tuesdayMorning, 0)
	// A week later the daily counter still carries over; there is no
	// day-boundary reset in the current design.
	s = Update(s, Session{Duration: 25, FocusScore: 80}, tuesdayMorning.AddDate(0, 0, 7), 0)
	if s.DailyPomodoroSessions != 2 {
		t.Errorf("DailyPomodoroSessions = %d, want 2", s.DailyPomodoroSessions)
	}
}

func TestLongestTaskUsesInProgressDuration(t *testing.T) {
	s := New()
	out := Update(s, Session{Duration: 25, FocusScore: 80}, tuesdayMorning, 90)
	if out.LongestTask != 90 {
		t.Errorf("LongestTask = %d, want 90", out.LongestTask)
	}

	// With no task in progress the prior value is kept.
	out = Update(out, Session{Duration: 120, FocusScore: 80}, tuesdayMorning, 0)
	if out.LongestTask != 90 {
		t.Errorf("LongestTask = %d, want 90 (unchanged)", out.LongestTask)
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1001, 2},
		{4999, 5},
		{5000, 6},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}
