package simulation

import (
	"iter"
	"math/rand"
	"time"

	"ebs/internal/calendar"
	"ebs/internal/estimator"
)

// Engine performs Monte-Carlo draws over an estimator's pending tasks.
type Engine struct {
	est *estimator.Estimator
	rng *rand.Rand
	now calendar.Date
}

// NewEngine creates an engine seeded from the wall clock.
func NewEngine(e *estimator.Estimator) *Engine {
	return NewSeededEngine(e, time.Now().UnixNano())
}

// NewSeededEngine creates an engine with a fixed seed, for reproducible
// simulations.
func NewSeededEngine(e *estimator.Estimator, seed int64) *Engine {
	return &Engine{
		est: e,
		rng: rand.New(rand.NewSource(seed)),
		now: calendar.Today(),
	}
}

// SimulateFuture performs one round of the simulation: for each pending
// task, the estimate is divided by a velocity drawn uniformly (with
// replacement) from the historical velocities, yielding a projected cost.
//
// A pending task is excluded when a priority threshold is set (> 0), the
// task has a priority, and the task's priority is numerically greater.
// Returns a NoHistoryError when a draw is required but the velocity history
// is empty.
func (e *Engine) SimulateFuture(priority int, maxAge time.Duration) ([]float64, error) {
	pending := make([]*estimator.Task, 0, len(e.est.Tasks))
	for _, t := range e.est.PendingTasks() {
		if priority > 0 && t.Priority > 0 && t.Priority > priority {
			continue
		}
		pending = append(pending, t)
	}
	if len(pending) == 0 {
		return []float64{}, nil
	}

	velocities := e.est.Velocities(maxAge, e.now)
	if len(velocities) == 0 {
		return nil, &estimator.NoHistoryError{Name: e.est.Name}
	}

	future := make([]float64, len(pending))
	for i, t := range pending {
		v := velocities[e.rng.Intn(len(velocities))]
		future[i] = t.Estimate / v
	}
	return future, nil
}

// Futures yields an unbounded sequence of independent simulation rounds.
// Each range over the sequence restarts it; callers bound it by breaking
// out after enough draws. Iteration stops after the first error.
func (e *Engine) Futures(priority int, maxAge time.Duration) iter.Seq2[[]float64, error] {
	return func(yield func([]float64, error) bool) {
		for {
			future, err := e.SimulateFuture(priority, maxAge)
			if !yield(future, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
