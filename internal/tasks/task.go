package tasks

import "time"

// Task is a unit of planned focus work. Duration is the planned length
// in whole minutes. Completion stamps CompletedAt and copies the focus
// score into Efficiency; ActualDuration is set equal to the planned
// duration (true elapsed time is not captured yet).
type Task struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Duration       int        `json:"duration"`
	Category       string     `json:"category,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	ActualDuration int        `json:"actualDuration,omitempty"`
	Efficiency     int        `json:"efficiency,omitempty"`
	FocusScore     int        `json:"focusScore,omitempty"`
}

// Patch carries the fields Update may change. Nil fields are left alone.
type Patch struct {
	Title    *string
	Duration *int
	Category *string
	Notes    *string
}
