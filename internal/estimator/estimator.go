package estimator

import (
	"fmt"
	"time"

	"ebs/internal/calendar"
)

// NoHistoryError indicates that an estimator has no usable velocity history
// for the requested filters. It is recoverable: report layers catch it per
// estimator and keep going.
type NoHistoryError struct {
	Name string
}

func (e *NoHistoryError) Error() string {
	return fmt.Sprintf("estimator '%s' has no useful estimation history", e.Name)
}

// Estimator is a person (or other resource) with a task and event history.
type Estimator struct {
	Name   string   `json:"name"`
	Tasks  []*Task  `json:"tasks,omitempty"`
	Events []*Event `json:"events,omitempty"`
}

// New creates an estimator with the given name.
func New(name string) *Estimator {
	return &Estimator{Name: name}
}

// CompletedTasks returns the tasks with an actual cost recorded.
func (e *Estimator) CompletedTasks() []*Task {
	var out []*Task
	for _, t := range e.Tasks {
		if t.Completed() {
			out = append(out, t)
		}
	}
	return out
}

// PendingTasks returns the tasks still awaiting completion.
func (e *Estimator) PendingTasks() []*Task {
	var out []*Task
	for _, t := range e.Tasks {
		if !t.Completed() {
			out = append(out, t)
		}
	}
	return out
}

// Velocities returns the estimate/actual ratio of every completed task, in
// insertion order.
//
// Tasks with a zero estimate are excluded: a completed zero-effort task
// carries no information about estimation bias. With a non-zero maxAge,
// tasks whose estimate date is older than |maxAge| relative to now are
// excluded; tasks with no recorded date never age out.
func (e *Estimator) Velocities(maxAge time.Duration, now calendar.Date) []float64 {
	if maxAge < 0 {
		maxAge = -maxAge
	}
	var out []float64
	for _, t := range e.CompletedTasks() {
		if t.Estimate == 0 {
			continue
		}
		if maxAge != 0 && !t.Date.IsZero() && now.Sub(t.Date) > maxAge {
			continue
		}
		out = append(out, t.Estimate/t.Actual)
	}
	return out
}

// FutureEvents returns the events whose date has not passed.
func (e *Estimator) FutureEvents(today calendar.Date) []*Event {
	var out []*Event
	for _, ev := range e.Events {
		if !ev.Completed(today) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsFrom returns the events on or after the given date.
func (e *Estimator) EventsFrom(start calendar.Date) []*Event {
	var out []*Event
	for _, ev := range e.Events {
		if !ev.Date.Before(start) {
			out = append(out, ev)
		}
	}
	return out
}

// FutureEventCost sums the cost of all future events.
func (e *Estimator) FutureEventCost(today calendar.Date) float64 {
	total := 0.0
	for _, ev := range e.FutureEvents(today) {
		total += ev.Cost
	}
	return total
}
