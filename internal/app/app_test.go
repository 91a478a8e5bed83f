package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"focusdeck/internal/store"
	"focusdeck/internal/tasks"
)

type fakeSnapshotRepo struct {
	snaps   []*store.Snapshot
	saveErr error
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *snap
	cp.ID = len(f.snaps) + 1
	f.snaps = append(f.snaps, &cp)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.snaps) == 0 {
		return nil, nil
	}
	return f.snaps[len(f.snaps)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	if len(f.snaps) > keep {
		f.snaps = f.snaps[len(f.snaps)-keep:]
	}
	return nil
}

type fakeEventRepo struct {
	sessions []store.SessionEventData
	llm      []store.LLMRequestEventData
}

func (f *fakeEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEventRepo) QuerySessions(_ context.Context, limit int) ([]store.SessionRecord, error) {
	var out []store.SessionRecord
	for i := len(f.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, store.SessionRecord{ID: int64(i + 1), SessionEventData: f.sessions[i]})
	}
	return out, nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llm = append(f.llm, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, limit int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// tuesdayMorning is a fixed Tuesday 10:00 for deterministic reducers.
var tuesdayMorning = time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestApp() (*App, *fakeSnapshotRepo, *fakeEventRepo) {
	snaps := &fakeSnapshotRepo{}
	events := &fakeEventRepo{}
	a := New(snaps, events)
	a.now = func() time.Time { return tuesdayMorning }
	return a, snaps, events
}

func TestAddTaskPersists(t *testing.T) {
	a, snaps, _ := newTestApp()

	task, err := a.AddTask(t.Context(), "Read chapter 4", 25, "reading", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("task id = %d, want 1", task.ID)
	}

	if len(snaps.snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps.snaps))
	}
	if got := snaps.snaps[0].Data.Tasks; len(got) != 1 || got[0].Title != "Read chapter 4" {
		t.Fatalf("unexpected persisted tasks: %+v", got)
	}
}

func TestAddTaskValidation(t *testing.T) {
	a, snaps, _ := newTestApp()

	if _, err := a.AddTask(t.Context(), "", 25, "", ""); !errors.Is(err, tasks.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := a.AddTask(t.Context(), "x", 0, "", ""); !errors.Is(err, tasks.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if len(snaps.snaps) != 0 {
		t.Fatalf("rejected adds must not persist, got %d snapshots", len(snaps.snaps))
	}
}

func TestCompleteTaskEndToEnd(t *testing.T) {
	a, _, events := newTestApp()

	task, err := a.AddTask(t.Context(), "Read chapter 4", 25, "reading", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := a.CompleteTask(t.Context(), task.ID, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 25 min at focus 80 earns round(25*80/100) = 20 XP, and the first
	// session unlocks First Pomodoro for a 10 XP bonus.
	if res.XPGained != 20 {
		t.Errorf("XPGained = %d, want 20", res.XPGained)
	}
	if res.BonusXP != 10 {
		t.Errorf("BonusXP = %d, want 10", res.BonusXP)
	}
	if res.Stats.XP != 30 {
		t.Errorf("XP = %d, want 30", res.Stats.XP)
	}
	if res.Stats.Level != 1 {
		t.Errorf("Level = %d, want 1", res.Stats.Level)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "first_pomodoro" {
		t.Fatalf("unexpected unlocks: %+v", res.Unlocked)
	}

	if !res.Task.Completed || res.Task.Efficiency != 80 {
		t.Errorf("unexpected completed task: %+v", res.Task)
	}

	if len(events.sessions) != 1 {
		t.Fatalf("expected 1 session event, got %d", len(events.sessions))
	}
	ev := events.sessions[0]
	if ev.TaskID != task.ID || ev.PlannedMinutes != 25 || ev.FocusScore != 80 {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.XPGained != 30 {
		t.Errorf("event XPGained = %d, want 30", ev.XPGained)
	}
	if ev.SessionID == "" {
		t.Error("expected non-empty session id")
	}
}

func TestCompleteTaskUnknownIDIsNoOp(t *testing.T) {
	a, snaps, events := newTestApp()

	res, err := a.CompleteTask(t.Context(), 99, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result for unknown id, got %+v", res)
	}
	if got := a.Stats(); got.XP != 0 || got.TasksCompleted != 0 {
		t.Errorf("stats mutated by no-op completion: %+v", got)
	}
	if len(snaps.snaps) != 0 || len(events.sessions) != 0 {
		t.Error("no-op completion must not persist or record events")
	}
}

func TestCompleteTaskFocusValidation(t *testing.T) {
	a, _, _ := newTestApp()

	if _, err := a.CompleteTask(t.Context(), 1, 101); err == nil {
		t.Fatal("expected error for out-of-range focus score")
	}
	if _, err := a.CompleteTask(t.Context(), 1, -1); err == nil {
		t.Fatal("expected error for negative focus score")
	}
}

func TestCompleteCurrentTaskClearsSelection(t *testing.T) {
	a, _, _ := newTestApp()

	task, _ := a.AddTask(t.Context(), "Deep focus", 120, "", "")
	if err := a.SetCurrentTask(t.Context(), task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := a.CompleteTask(t.Context(), task.ID, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := a.CurrentTask(); ok {
		t.Error("expected current task cleared after completion")
	}
	// The selection is cleared before the reducer runs, so the session
	// never counts toward the longest-task metric.
	if res.Stats.LongestTask != 0 {
		t.Errorf("LongestTask = %d, want 0", res.Stats.LongestTask)
	}
}

func TestCompleteAnyTaskClearsSelection(t *testing.T) {
	a, _, _ := newTestApp()

	long, _ := a.AddTask(t.Context(), "Thesis draft", 120, "", "")
	quick, _ := a.AddTask(t.Context(), "Flashcards", 10, "", "")
	if err := a.SetCurrentTask(t.Context(), long.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := a.CompleteTask(t.Context(), quick.ID, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Completing any task ends the session, so the selection never
	// feeds the longest-task metric.
	if res.Stats.LongestTask != 0 {
		t.Errorf("LongestTask = %d, want 0", res.Stats.LongestTask)
	}
	if _, ok := a.CurrentTask(); ok {
		t.Error("expected selection cleared after completing any task")
	}
}

func TestSetCurrentTaskUnknown(t *testing.T) {
	a, _, _ := newTestApp()
	if err := a.SetCurrentTask(t.Context(), 42); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteCurrentTaskClearsSelection(t *testing.T) {
	a, _, _ := newTestApp()

	task, _ := a.AddTask(t.Context(), "x", 25, "", "")
	if err := a.SetCurrentTask(t.Context(), task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.DeleteTask(t.Context(), task.ID)
	if _, ok := a.CurrentTask(); ok {
		t.Error("expected selection cleared after deleting current task")
	}
}

func TestToggleTimer(t *testing.T) {
	a, _, _ := newTestApp()

	if !a.ToggleTimer(t.Context()) {
		t.Fatal("expected timer active after first toggle")
	}
	if a.ToggleTimer(t.Context()) {
		t.Fatal("expected timer inactive after second toggle")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	events := &fakeEventRepo{}

	a := New(snaps, events)
	a.now = func() time.Time { return tuesdayMorning }

	task, _ := a.AddTask(t.Context(), "Read chapter 4", 25, "reading", "notes")
	if _, err := a.CompleteTask(t.Context(), task.ID, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.UpdateSettings(t.Context(), store.Settings{SoundEnabled: false, Notifications: true, Theme: "dark", FocusMinutes: 50})

	b := New(snaps, events)
	if err := b.Load(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := b.Stats(); got.XP != 30 || got.TasksCompleted != 1 {
		t.Errorf("restored stats = %+v", got)
	}
	if got := b.Tasks(); len(got) != 1 || !got[0].Completed {
		t.Errorf("restored tasks = %+v", got)
	}
	if got := b.Settings(); got.Theme != "dark" || got.FocusMinutes != 50 {
		t.Errorf("restored settings = %+v", got)
	}

	var unlocked int
	for _, ach := range b.Achievements() {
		if ach.Unlocked() {
			unlocked++
			if ach.ID != "first_pomodoro" {
				t.Errorf("unexpected unlock: %s", ach.ID)
			}
		}
	}
	if unlocked != 1 {
		t.Errorf("expected 1 unlocked achievement, got %d", unlocked)
	}

	// New ids continue past restored ones.
	next, err := b.AddTask(t.Context(), "y", 10, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.ID != task.ID+1 {
		t.Errorf("next id = %d, want %d", next.ID, task.ID+1)
	}
}

func TestLoadWithoutSnapshotKeepsFreshState(t *testing.T) {
	a, _, _ := newTestApp()
	if err := a.Load(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := a.Stats(); got.Level != 1 || got.XP != 0 {
		t.Errorf("fresh stats = %+v", got)
	}
}

func TestReset(t *testing.T) {
	a, _, _ := newTestApp()

	task, _ := a.AddTask(t.Context(), "x", 25, "", "")
	if _, err := a.CompleteTask(t.Context(), task.ID, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.Reset(t.Context())

	if got := a.Stats(); got.XP != 0 || got.TasksCompleted != 0 {
		t.Errorf("stats after reset = %+v", got)
	}
	if got := a.Tasks(); len(got) != 0 {
		t.Errorf("tasks after reset = %+v", got)
	}
	for _, ach := range a.Achievements() {
		if ach.Unlocked() {
			t.Errorf("achievement %s still unlocked after reset", ach.ID)
		}
	}
}

func TestPersistFailureDoesNotBlockActions(t *testing.T) {
	snaps := &fakeSnapshotRepo{saveErr: errors.New("disk full")}
	a := New(snaps, &fakeEventRepo{})
	a.now = func() time.Time { return tuesdayMorning }

	task, err := a.AddTask(t.Context(), "x", 25, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("task id = %d, want 1", task.ID)
	}
	if got := a.Tasks(); len(got) != 1 {
		t.Errorf("in-memory state lost on persist failure: %+v", got)
	}
}
