package mcp

import (
	"time"

	"ebs/internal/calendar"
	"ebs/internal/estimator"
	"ebs/internal/simulation"
)

type estimatorSummary struct {
	Name   string `json:"name"`
	Tasks  int    `json:"tasks"`
	Events int    `json:"events"`
}

func (s *Server) handleListEstimators() (interface{}, error) {
	summaries := make([]estimatorSummary, 0, len(s.store.Estimators))
	for _, e := range s.store.Estimators {
		summaries = append(summaries, estimatorSummary{
			Name:   e.Name,
			Tasks:  len(e.Tasks),
			Events: len(e.Events),
		})
	}
	return map[string]interface{}{"estimators": summaries}, nil
}

func (s *Server) handleVelocityStats(name string, maxAgeDays int) (interface{}, error) {
	e, err := s.store.GetEstimator(name)
	if err != nil {
		return nil, err
	}
	return e.ComputeVelocityStats(time.Duration(maxAgeDays)*24*time.Hour, calendar.Today())
}

func (s *Server) handleRunProjection(name string, exponent, priority, maxAgeDays int) (interface{}, error) {
	ests := s.store.Estimators
	if name != "" {
		e, err := s.store.GetEstimator(name)
		if err != nil {
			return nil, err
		}
		ests = []*estimator.Estimator{e}
	}

	results, err := simulation.RunProjections(ests, simulation.Config{
		Exponent:    exponent,
		Priority:    priority,
		MaxAge:      time.Duration(maxAgeDays) * 24 * time.Hour,
		HoursPerDay: s.cfg.HoursPerDay,
		WorkDays:    s.cfg.WorkDays,
		Holidays:    s.store.Holidays,
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"projections": results}, nil
}
