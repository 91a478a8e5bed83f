package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"focusdeck/internal/achievements"
	"focusdeck/internal/stats"
	"focusdeck/internal/store"
	"focusdeck/internal/tasks"
)

var ErrTaskNotFound = errors.New("task not found")

// AddTask validates and appends a new task, then persists.
func (a *App) AddTask(ctx context.Context, title string, duration int, category, notes string) (tasks.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	t, err := a.tasks.Add(title, duration, category, notes, a.now())
	if err != nil {
		return tasks.Task{}, err
	}
	a.persist(ctx)
	return t, nil
}

// UpdateTask partial-merges the patch into a task. Unknown ids are a
// silent no-op, matching the task store.
func (a *App) UpdateTask(ctx context.Context, id int64, p tasks.Patch) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tasks.Update(id, p)
	a.persist(ctx)
}

// DeleteTask removes a task. Deleting the current task clears the
// selection. Unknown ids are a silent no-op.
func (a *App) DeleteTask(ctx context.Context, id int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tasks.Delete(id)
	if a.currentTaskID == id {
		a.currentTaskID = 0
	}
	a.persist(ctx)
}

// SetCurrentTask selects the task for the next focus session.
func (a *App) SetCurrentTask(ctx context.Context, id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.tasks.Get(id); !ok {
		return fmt.Errorf("set current task %d: %w", id, ErrTaskNotFound)
	}
	a.currentTaskID = id
	a.persist(ctx)
	return nil
}

// ClearCurrentTask drops the session task selection.
func (a *App) ClearCurrentTask(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.currentTaskID = 0
	a.persist(ctx)
}

// ToggleTimer flips the in-progress marker and returns the new value.
func (a *App) ToggleTimer(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.timerActive = !a.timerActive
	a.persist(ctx)
	return a.timerActive
}

// UpdateSettings replaces the preferences and persists.
func (a *App) UpdateSettings(ctx context.Context, s store.Settings) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.settings = s
	a.persist(ctx)
}

// CompletionResult summarizes the effects of finishing a task.
type CompletionResult struct {
	Task     tasks.Task
	Stats    stats.UserStats
	Unlocked []achievements.Achievement
	XPGained int
	BonusXP  int
}

// CompleteTask finishes a task with the given focus score, runs the
// stats reducer, re-evaluates achievements (unlock bonuses feed back
// into XP), records a session event, and persists. An unknown id is a
// silent no-op: the result is nil and no state changes.
func (a *App) CompleteTask(ctx context.Context, id int64, focusScore int) (*CompletionResult, error) {
	if focusScore < 0 || focusScore > 100 {
		return nil, fmt.Errorf("focus score must be between 0 and 100, got %d", focusScore)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	t, ok := a.tasks.Complete(id, focusScore, now)
	if !ok {
		return nil, nil
	}

	// Any completion ends the session: the selection is cleared before
	// the reducer runs, so the in-progress duration it sees is zero.
	a.currentTaskID = 0
	currentDuration := 0
	if cur, ok := a.tasks.Get(a.currentTaskID); ok {
		currentDuration = cur.Duration
	}

	prevXP := a.stats.XP
	a.stats = stats.Update(a.stats, stats.Session{
		Duration:   t.Duration,
		FocusScore: focusScore,
	}, now, currentDuration)
	sessionXP := a.stats.XP - prevXP

	updated, bonus := achievements.Check(a.stats, a.achievements, now)
	unlocked := achievements.Diff(a.achievements, updated)
	a.achievements = updated
	if bonus > 0 {
		a.stats.XP += bonus
		a.stats.Level = stats.LevelForXP(a.stats.XP)
	}

	event := store.SessionEventData{
		SessionID:      uuid.NewString(),
		TaskID:         t.ID,
		TaskTitle:      t.Title,
		PlannedMinutes: t.Duration,
		ActualMinutes:  t.ActualDuration,
		FocusScore:     focusScore,
		XPGained:       sessionXP + bonus,
		CompletedAt:    now,
	}
	if err := a.events.AppendSession(ctx, event); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session event: %v\n", err)
	}

	a.persist(ctx)

	return &CompletionResult{
		Task:     t,
		Stats:    a.stats,
		Unlocked: unlocked,
		XPGained: sessionXP,
		BonusXP:  bonus,
	}, nil
}

// Reset discards all state and starts over, persisting the fresh slate.
func (a *App) Reset(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tasks = tasks.NewStore()
	a.stats = stats.New()
	a.achievements = achievements.Catalog()
	a.settings = store.DefaultSettings()
	a.currentTaskID = 0
	a.timerActive = false
	a.persist(ctx)
}
