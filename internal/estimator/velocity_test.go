package estimator

import (
	"errors"
	"math"
	"testing"
)

func historyEstimator() *Estimator {
	return &Estimator{
		Name: "Bob",
		Tasks: []*Task{
			{Estimate: 4, Actual: 2}, // velocity 2
			{Estimate: 2, Actual: 2}, // velocity 1
			{Estimate: 2, Actual: 4}, // velocity 0.5
		},
	}
}

func TestVelocityAggregates(t *testing.T) {
	e := historyEstimator()

	min, err := e.MinVelocity(0, today)
	if err != nil {
		t.Fatalf("MinVelocity() error = %v", err)
	}
	if min != 0.5 {
		t.Errorf("MinVelocity() = %v, want 0.5", min)
	}

	max, err := e.MaxVelocity(0, today)
	if err != nil {
		t.Fatalf("MaxVelocity() error = %v", err)
	}
	if max != 2 {
		t.Errorf("MaxVelocity() = %v, want 2", max)
	}

	mean, err := e.MeanVelocity(0, today)
	if err != nil {
		t.Fatalf("MeanVelocity() error = %v", err)
	}
	if want := 3.5 / 3; math.Abs(mean-want) > 1e-9 {
		t.Errorf("MeanVelocity() = %v, want %v", mean, want)
	}

	stddev, err := e.StddevVelocity(0, today)
	if err != nil {
		t.Fatalf("StddevVelocity() error = %v", err)
	}
	// Population stddev of {2, 1, 0.5} around mean 7/6.
	mu := 3.5 / 3
	want := math.Sqrt(((2-mu)*(2-mu) + (1-mu)*(1-mu) + (0.5-mu)*(0.5-mu)) / 3)
	if math.Abs(stddev-want) > 1e-9 {
		t.Errorf("StddevVelocity() = %v, want %v", stddev, want)
	}
}

func TestComputeVelocityStats(t *testing.T) {
	e := historyEstimator()

	vs, err := e.ComputeVelocityStats(0, today)
	if err != nil {
		t.Fatalf("ComputeVelocityStats() error = %v", err)
	}
	if vs.N != 3 {
		t.Errorf("N = %d, want 3", vs.N)
	}
	if vs.Min != 0.5 || vs.Max != 2 {
		t.Errorf("Min/Max = %v/%v, want 0.5/2", vs.Min, vs.Max)
	}
}

func TestAggregatesWithoutHistory(t *testing.T) {
	e := &Estimator{Name: "Bob", Tasks: []*Task{{Estimate: 8}}}

	checks := []struct {
		name string
		call func() error
	}{
		{"MinVelocity", func() error { _, err := e.MinVelocity(0, today); return err }},
		{"MaxVelocity", func() error { _, err := e.MaxVelocity(0, today); return err }},
		{"MeanVelocity", func() error { _, err := e.MeanVelocity(0, today); return err }},
		{"StddevVelocity", func() error { _, err := e.StddevVelocity(0, today); return err }},
		{"ComputeVelocityStats", func() error { _, err := e.ComputeVelocityStats(0, today); return err }},
	}

	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var noHist *NoHistoryError
			if !errors.As(err, &noHist) {
				t.Fatalf("%s error = %v, want NoHistoryError", tt.name, err)
			}
			if noHist.Name != "Bob" {
				t.Errorf("NoHistoryError.Name = %q, want Bob", noHist.Name)
			}
		})
	}
}
