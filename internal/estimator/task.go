package estimator

import (
	"errors"

	"ebs/internal/calendar"
)

// ErrNotCompleted is returned when a velocity is requested for a task that
// has no actual cost recorded yet.
var ErrNotCompleted = errors.New("task is not completed")

// Task is a unit of work with an estimated and an actual cost, in hours.
// An actual cost of zero means the task has not been completed.
type Task struct {
	// ID is optional; ad hoc tasks may not have one. If set, it must be
	// unique across the whole store.
	ID string `json:"id,omitempty"`
	// Description of the task.
	Description string `json:"description,omitempty"`
	// Priority of the task; 1 is the highest, 0 means no priority set.
	Priority int `json:"priority,omitempty"`
	// Estimate is the estimated cost in hours.
	Estimate float64 `json:"estimate"`
	// Actual is the actual cost in hours; zero while the task is pending.
	Actual float64 `json:"actual,omitempty"`
	// Date the estimate was made, if known. Used to filter stale estimates.
	Date calendar.Date `json:"date,omitempty"`
}

// Completed reports whether the task has an actual cost recorded.
func (t *Task) Completed() bool {
	return t.Actual > 0
}

// Velocity returns estimate/actual for a completed task.
func (t *Task) Velocity() (float64, error) {
	if !t.Completed() {
		return 0, ErrNotCompleted
	}
	return t.Estimate / t.Actual, nil
}

// Event is a non-task cost: a block of hours on a known date that will not
// be available for task work (leave, training, and so on).
type Event struct {
	Date        calendar.Date `json:"date"`
	Cost        float64       `json:"cost"`
	Description string        `json:"description,omitempty"`
}

// Completed reports whether the event's date has passed.
func (e *Event) Completed(today calendar.Date) bool {
	return e.Date.Before(today)
}
