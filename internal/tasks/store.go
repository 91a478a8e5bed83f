package tasks

import (
	"errors"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("task title is required")
	ErrInvalidDuration = errors.New("task duration must be a positive number of minutes")
)

// Store owns the task collection. Ids are monotonic and never reused
// within a store's lifetime.
type Store struct {
	tasks  []Task
	nextID int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Restore rebuilds a store from persisted tasks. The id counter resumes
// past the highest persisted id.
func Restore(ts []Task) *Store {
	s := NewStore()
	s.tasks = append(s.tasks, ts...)
	for _, t := range ts {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// Add validates the input and appends a new incomplete task.
func (s *Store) Add(title string, duration int, category, notes string, now time.Time) (Task, error) {
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	if duration <= 0 {
		return Task{}, ErrInvalidDuration
	}

	t := Task{
		ID:        s.nextID,
		Title:     title,
		Duration:  duration,
		Category:  category,
		Notes:     notes,
		CreatedAt: now,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Get returns the task with the given id.
func (s *Store) Get(id int64) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// All returns a copy of the task list in insertion order.
func (s *Store) All() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Update partial-merges the patch into the task. Unknown ids are a
// silent no-op.
func (s *Store) Update(id int64, p Patch) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if p.Title != nil {
			s.tasks[i].Title = *p.Title
		}
		if p.Duration != nil {
			s.tasks[i].Duration = *p.Duration
		}
		if p.Category != nil {
			s.tasks[i].Category = *p.Category
		}
		if p.Notes != nil {
			s.tasks[i].Notes = *p.Notes
		}
		return
	}
}

// Delete removes the task. Unknown ids are a silent no-op.
func (s *Store) Delete(id int64) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Complete marks the task done, stamping the completion time and
// recording the focus score as its efficiency. ActualDuration mirrors
// the planned duration. Returns false for unknown ids.
func (s *Store) Complete(id int64, focusScore int, now time.Time) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		t.Completed = true
		completedAt := now
		t.CompletedAt = &completedAt
		t.Efficiency = focusScore
		t.FocusScore = focusScore
		t.ActualDuration = t.Duration
		return *t, true
	}
	return Task{}, false
}
