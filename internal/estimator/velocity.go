package estimator

import (
	"math"
	"time"

	"ebs/internal/calendar"
)

// VelocityStats summarises an estimator's velocity history.
type VelocityStats struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Stddev float64 `json:"stddev"`
}

// MinVelocity returns the smallest historical velocity.
func (e *Estimator) MinVelocity(maxAge time.Duration, now calendar.Date) (float64, error) {
	vs := e.Velocities(maxAge, now)
	if len(vs) == 0 {
		return 0, &NoHistoryError{Name: e.Name}
	}
	min := vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// MaxVelocity returns the largest historical velocity.
func (e *Estimator) MaxVelocity(maxAge time.Duration, now calendar.Date) (float64, error) {
	vs := e.Velocities(maxAge, now)
	if len(vs) == 0 {
		return 0, &NoHistoryError{Name: e.Name}
	}
	max := vs[0]
	for _, v := range vs[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// MeanVelocity returns the arithmetic mean of the velocity history.
func (e *Estimator) MeanVelocity(maxAge time.Duration, now calendar.Date) (float64, error) {
	vs := e.Velocities(maxAge, now)
	if len(vs) == 0 {
		return 0, &NoHistoryError{Name: e.Name}
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs)), nil
}

// StddevVelocity returns the population standard deviation (divide by N) of
// the velocity history, measured against the unfiltered mean.
func (e *Estimator) StddevVelocity(maxAge time.Duration, now calendar.Date) (float64, error) {
	vs := e.Velocities(maxAge, now)
	if len(vs) == 0 {
		return 0, &NoHistoryError{Name: e.Name}
	}
	mu, err := e.MeanVelocity(0, now)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range vs {
		sum += (v - mu) * (v - mu)
	}
	return math.Sqrt(sum / float64(len(vs))), nil
}

// ComputeVelocityStats aggregates the velocity statistics in one pass over
// the filters.
func (e *Estimator) ComputeVelocityStats(maxAge time.Duration, now calendar.Date) (*VelocityStats, error) {
	vs := e.Velocities(maxAge, now)
	if len(vs) == 0 {
		return nil, &NoHistoryError{Name: e.Name}
	}
	min, err := e.MinVelocity(maxAge, now)
	if err != nil {
		return nil, err
	}
	max, err := e.MaxVelocity(maxAge, now)
	if err != nil {
		return nil, err
	}
	mean, err := e.MeanVelocity(maxAge, now)
	if err != nil {
		return nil, err
	}
	stddev, err := e.StddevVelocity(maxAge, now)
	if err != nil {
		return nil, err
	}
	return &VelocityStats{
		N:      len(vs),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Stddev: stddev,
	}, nil
}
