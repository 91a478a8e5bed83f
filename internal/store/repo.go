package store

import (
	"context"
	"time"

	"focusdeck/internal/stats"
	"focusdeck/internal/tasks"
)

// SnapshotVersion is bumped when SnapshotData changes shape.
const SnapshotVersion = 1

// Settings are the user preferences persisted with the snapshot.
type Settings struct {
	SoundEnabled  bool   `json:"soundEnabled"`
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
	FocusMinutes  int    `json:"focusMinutes"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:  true,
		Notifications: true,
		Theme:         "light",
		FocusMinutes:  25,
	}
}

// AchievementState is the persisted unlock state for one catalog entry,
// aligned with the catalog by position (ids are not unique).
type AchievementState struct {
	ID         string     `json:"id"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// SnapshotData captures the full application state at a point in time.
type SnapshotData struct {
	Version      int                `json:"version"`
	Tasks        []tasks.Task       `json:"tasks"`
	Stats        stats.UserStats    `json:"stats"`
	Settings     Settings           `json:"settings"`
	Achievements []AchievementState `json:"achievements"`
}

// Snapshot is a point-in-time capture of application state.
type Snapshot struct {
	ID        int
	CreatedAt time.Time
	Data      SnapshotData
}

// SnapshotRepo manages whole-state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures one completed focus session.
type SessionEventData struct {
	SessionID      string
	TaskID         int64
	TaskTitle      string
	PlannedMinutes int
	ActualMinutes  int
	FocusScore     int
	XPGained       int
	CompletedAt    time.Time
}

// SessionRecord is a stored session with its row id.
type SessionRecord struct {
	ID int64
	SessionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored LLM event with its row id and timestamp.
type LLMRequestRecord struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM usage per request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSession records a completed focus session.
	AppendSession(ctx context.Context, data SessionEventData) error

	// QuerySessions returns up to limit sessions, newest first.
	QuerySessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns up to limit LLM events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// LLMUsageByPurpose returns aggregated token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel returns aggregated token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
