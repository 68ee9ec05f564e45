package simulation

import (
	"errors"
	"math"
	"sort"
	"time"

	"ebs/internal/calendar"
	"ebs/internal/estimator"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Config holds the shared inputs of a projection run.
type Config struct {
	// Exponent selects 10^Exponent simulation rounds; values below 2 are
	// raised to 2 so percentile rows stay meaningful.
	Exponent int
	// Priority is an optional threshold; pending tasks with a priority
	// greater than it are left out of the simulation. Zero disables the
	// filter.
	Priority int
	// MaxAge limits the velocity history to recent estimates. Zero means
	// no limit.
	MaxAge time.Duration
	// HoursPerDay is the task capacity of one work day.
	HoursPerDay float64
	// WorkDays is the set of weekdays that count as work days.
	WorkDays calendar.WeekdaySet
	// Holidays are store-wide non-work dates.
	Holidays []calendar.Date
	// StartDate anchors the projection; the zero value means today.
	StartDate calendar.Date
}

// Row is one percentile row of a projection report.
type Row struct {
	Percentile float64       `json:"percentile"`
	Date       calendar.Date `json:"date"`
}

// Result is the projection outcome for a single estimator. A non-empty
// Skipped carries the reason no rows could be produced.
type Result struct {
	Estimator string `json:"estimator"`
	Rows      []Row  `json:"rows,omitempty"`
	Skipped   string `json:"skipped,omitempty"`
}

type outcome struct {
	date calendar.Date
	free float64
}

// RunProjection simulates 10^exponent futures for one estimator and maps
// each total through the calendar to a ship date, returning the sorted
// percentile table.
func RunProjection(e *estimator.Estimator, eng *Engine, cfg Config) (*Result, error) {
	exp := cfg.Exponent
	if exp < 2 {
		exp = 2
	}
	rounds := pow10(exp)

	start := cfg.StartDate
	if start.IsZero() {
		start = calendar.Today()
	}
	events := shipEvents(e.EventsFrom(start.AddDays(1)))

	outcomes := make([]outcome, 0, rounds)
	for future, err := range eng.Futures(cfg.Priority, cfg.MaxAge) {
		if err != nil {
			return nil, err
		}
		hours := 0.0
		for _, h := range future {
			hours += h
		}
		date, free, err := calendar.ProjectShipDate(hours, cfg.HoursPerDay, start, events, cfg.Holidays, cfg.WorkDays)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome{date: date, free: free})
		if len(outcomes) == rounds {
			break
		}
	}

	// Date ascending; on equal dates the outcome with more slack ranks
	// first, since it finishes earlier within the day.
	sort.Slice(outcomes, func(i, j int) bool {
		if !outcomes[i].date.Equal(outcomes[j].date) {
			return outcomes[i].date.Before(outcomes[j].date)
		}
		return outcomes[i].free > outcomes[j].free
	})

	step := pow10(exp - 1)
	rows := make([]Row, 0, rounds/step)
	for i := step - 1; i < rounds; i += step {
		rows = append(rows, Row{
			Percentile: float64(i+1)/math.Pow10(exp-2) - 1,
			Date:       outcomes[i].date,
		})
	}

	return &Result{Estimator: e.Name, Rows: rows}, nil
}

// RunProjections projects every estimator. Estimators with no usable
// history are reported as skipped rather than failing the whole run; all
// other errors abort. Estimators are simulated in parallel, each with its
// own engine and random source.
func RunProjections(ests []*estimator.Estimator, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(ests))

	var g errgroup.Group
	for i, e := range ests {
		g.Go(func() error {
			res, err := RunProjection(e, NewEngine(e), cfg)
			if err != nil {
				var noHist *estimator.NoHistoryError
				if errors.As(err, &noHist) {
					log.Debug().Str("estimator", e.Name).Msg("Skipping estimator without history")
					results[i] = &Result{Estimator: e.Name, Skipped: noHist.Error()}
					return nil
				}
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func shipEvents(events []*estimator.Event) []calendar.ShipEvent {
	out := make([]calendar.ShipEvent, len(events))
	for i, ev := range events {
		out[i] = calendar.ShipEvent{Date: ev.Date, Cost: ev.Cost}
	}
	return out
}

func pow10(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}
