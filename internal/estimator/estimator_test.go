package estimator

import (
	"testing"
	"time"

	"ebs/internal/calendar"
)

var (
	today     = calendar.NewDate(2026, time.March, 2)
	tomorrow  = today.AddDays(1)
	yesterday = today.AddDays(-1)
)

func velocitiesEqual(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestVelocities(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []*Task
		expected []float64
	}{
		{
			"NoCompletedTasks",
			[]*Task{{Estimate: 4}, {Estimate: 2}},
			nil,
		},
		{
			"OneCompleted",
			[]*Task{{Estimate: 4}, {Estimate: 2, Actual: 4}},
			[]float64{0.5},
		},
		{
			"CompletedFirst",
			[]*Task{{Estimate: 4, Actual: 4}, {Estimate: 2}},
			[]float64{1},
		},
		{
			"AllCompleted",
			[]*Task{{Estimate: 4, Actual: 2}, {Estimate: 2, Actual: 2}},
			[]float64{2, 1},
		},
		{
			"ZeroEstimateExcluded",
			[]*Task{{Estimate: 0, Actual: 3}, {Estimate: 2, Actual: 2}},
			[]float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Estimator{Name: "Bob", Tasks: tt.tasks}
			if got := e.Velocities(0, today); !velocitiesEqual(got, tt.expected) {
				t.Errorf("Velocities() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVelocitiesWithMaxAge(t *testing.T) {
	maxAge := 30 * 24 * time.Hour

	tests := []struct {
		name     string
		date     calendar.Date
		maxAge   time.Duration
		expected []float64
	}{
		{"Today", today, maxAge, []float64{2}},
		{"ExactlyAtLimit", today.AddDays(-30), maxAge, []float64{2}},
		{"PastLimit", today.AddDays(-31), maxAge, nil},
		{"NegativeMaxAgeAtLimit", today.AddDays(-30), -maxAge, []float64{2}},
		{"NegativeMaxAgePastLimit", today.AddDays(-31), -maxAge, nil},
		{"NoDateNeverAges", calendar.Date{}, maxAge, []float64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Estimator{
				Name:  "Bob",
				Tasks: []*Task{{Estimate: 4, Actual: 2, Date: tt.date}},
			}
			if got := e.Velocities(tt.maxAge, today); !velocitiesEqual(got, tt.expected) {
				t.Errorf("Velocities() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCompletedAndPendingTasks(t *testing.T) {
	e := &Estimator{
		Name: "Bob",
		Tasks: []*Task{
			{ID: "a", Estimate: 4, Actual: 2},
			{ID: "b", Estimate: 8},
		},
	}
	completed := e.CompletedTasks()
	if len(completed) != 1 || completed[0].ID != "a" {
		t.Errorf("CompletedTasks() = %v, want [a]", completed)
	}
	pending := e.PendingTasks()
	if len(pending) != 1 || pending[0].ID != "b" {
		t.Errorf("PendingTasks() = %v, want [b]", pending)
	}
}

func TestTaskVelocity(t *testing.T) {
	completed := &Task{Estimate: 4, Actual: 2}
	v, err := completed.Velocity()
	if err != nil {
		t.Fatalf("Velocity() error = %v", err)
	}
	if v != 2 {
		t.Errorf("Velocity() = %v, want 2", v)
	}

	pending := &Task{Estimate: 4}
	if _, err := pending.Velocity(); err != ErrNotCompleted {
		t.Errorf("Velocity() error = %v, want ErrNotCompleted", err)
	}
}

func TestFutureEvents(t *testing.T) {
	e := &Estimator{
		Name: "Bob",
		Events: []*Event{
			{Date: today, Cost: 1},
			{Date: tomorrow, Cost: 3},
			{Date: yesterday, Cost: 5},
		},
	}

	future := e.FutureEvents(today)
	if len(future) != 2 {
		t.Fatalf("FutureEvents() returned %d events, want 2", len(future))
	}
	if !future[0].Date.Equal(today) || !future[1].Date.Equal(tomorrow) {
		t.Errorf("FutureEvents() = %v, want events on %s and %s", future, today, tomorrow)
	}

	if cost := e.FutureEventCost(today); cost != 4 {
		t.Errorf("FutureEventCost() = %v, want 4", cost)
	}
}

func TestEventsFrom(t *testing.T) {
	e := &Estimator{
		Name: "Bob",
		Events: []*Event{
			{Date: today, Cost: 1},
			{Date: tomorrow, Cost: 3},
		},
	}
	from := e.EventsFrom(tomorrow)
	if len(from) != 1 || !from[0].Date.Equal(tomorrow) {
		t.Errorf("EventsFrom(%s) = %v, want one event on %s", tomorrow, from, tomorrow)
	}
}
