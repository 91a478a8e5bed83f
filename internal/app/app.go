package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"focusdeck/internal/achievements"
	"focusdeck/internal/stats"
	"focusdeck/internal/store"
	"focusdeck/internal/tasks"
)

// snapshotKeep is how many historical snapshots survive pruning.
const snapshotKeep = 20

// App is the single mutation point for application state. Every action
// updates the in-memory state, persists a snapshot, and appends any
// domain events. Persistence failures degrade to warnings so the
// in-memory session keeps working.
type App struct {
	mu            sync.Mutex
	tasks         *tasks.Store
	stats         stats.UserStats
	achievements  []achievements.Achievement
	settings      store.Settings
	currentTaskID int64
	timerActive   bool

	snapshots store.SnapshotRepo
	events    store.EventRepo
	now       func() time.Time
}

// New creates an App with fresh state. Call Load to restore persisted
// state before use.
func New(snapshots store.SnapshotRepo, events store.EventRepo) *App {
	return &App{
		tasks:        tasks.NewStore(),
		stats:        stats.New(),
		achievements: achievements.Catalog(),
		settings:     store.DefaultSettings(),
		snapshots:    snapshots,
		events:       events,
		now:          time.Now,
	}
}

// Load restores state from the latest snapshot. A missing snapshot is
// not an error; the App keeps its fresh state. Callers should treat a
// returned error as a warning, not a fatal condition.
func (a *App) Load(ctx context.Context) error {
	snap, err := a.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	data := snap.Data
	a.tasks = tasks.Restore(data.Tasks)
	a.stats = data.Stats
	if a.stats.Level < 1 {
		a.stats.Level = 1
	}
	if data.Settings.Theme != "" {
		a.settings = data.Settings
	}

	// Unlock state aligns with the catalog by position; ids alone are
	// not unique. Entries that no longer line up stay locked.
	for i, st := range data.Achievements {
		if i >= len(a.achievements) {
			break
		}
		if a.achievements[i].ID == st.ID && st.UnlockedAt != nil {
			t := *st.UnlockedAt
			a.achievements[i].UnlockedAt = &t
		}
	}

	return nil
}

// Tasks returns the current task list.
func (a *App) Tasks() []tasks.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tasks.All()
}

// Task returns one task by id.
func (a *App) Task(id int64) (tasks.Task, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tasks.Get(id)
}

// Stats returns the current derived metrics.
func (a *App) Stats() stats.UserStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Achievements returns the catalog with current unlock state.
func (a *App) Achievements() []achievements.Achievement {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]achievements.Achievement, len(a.achievements))
	copy(out, a.achievements)
	return out
}

// Settings returns the current preferences.
func (a *App) Settings() store.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// CurrentTask returns the task selected for the active session, if any.
func (a *App) CurrentTask() (tasks.Task, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentTaskID == 0 {
		return tasks.Task{}, false
	}
	return a.tasks.Get(a.currentTaskID)
}

// TimerActive reports whether a focus session is marked in progress.
func (a *App) TimerActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timerActive
}

// persist snapshots the full state. Failures are reported as warnings;
// the in-memory state is already updated and stays authoritative.
func (a *App) persist(ctx context.Context) {
	achState := make([]store.AchievementState, len(a.achievements))
	for i, ach := range a.achievements {
		achState[i] = store.AchievementState{ID: ach.ID}
		if ach.UnlockedAt != nil {
			t := *ach.UnlockedAt
			achState[i].UnlockedAt = &t
		}
	}

	snap := &store.Snapshot{
		CreatedAt: a.now(),
		Data: store.SnapshotData{
			Version:      store.SnapshotVersion,
			Tasks:        a.tasks.All(),
			Stats:        a.stats,
			Settings:     a.settings,
			Achievements: achState,
		},
	}

	if err := a.snapshots.Save(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
		return
	}
	if err := a.snapshots.Prune(ctx, snapshotKeep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to prune snapshots: %v\n", err)
	}
}
