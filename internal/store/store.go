package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ebs/internal/calendar"
	"ebs/internal/estimator"

	"github.com/rs/zerolog/log"
)

// Store is the persisted collection of estimators and store-wide holidays.
// It is a single-user document: load, mutate in memory, flush.
type Store struct {
	path string

	Estimators []*estimator.Estimator
	Holidays   []calendar.Date
}

type document struct {
	Estimators []*estimator.Estimator `json:"estimators"`
	Holidays   []calendar.Date        `json:"holidays,omitempty"`
}

// Open reads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	path = expandHome(path)
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %w", path, err)
	}
	s.Estimators = doc.Estimators
	s.Holidays = doc.Holidays

	log.Debug().Str("path", path).Int("estimators", len(s.Estimators)).Msg("Loaded store")
	return s, nil
}

// Flush writes the store back to its file via a temp file and an atomic
// rename, so a crash mid-write never corrupts the previous contents.
func (s *Store) Flush() error {
	data, err := json.MarshalIndent(document{
		Estimators: s.Estimators,
		Holidays:   s.Holidays,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	log.Debug().Str("path", s.path).Msg("Store flushed")
	return nil
}

// GetEstimator returns the named estimator.
func (s *Store) GetEstimator(name string) (*estimator.Estimator, error) {
	for _, e := range s.Estimators {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("estimator does not exist: %s", name)
}

// EstimatorExists reports whether the named estimator is in the store.
func (s *Store) EstimatorExists(name string) bool {
	_, err := s.GetEstimator(name)
	return err == nil
}

// AddEstimator adds a new estimator with the given name.
func (s *Store) AddEstimator(name string) (*estimator.Estimator, error) {
	if name == "" {
		return nil, fmt.Errorf("estimator name must not be empty")
	}
	if s.EstimatorExists(name) {
		return nil, fmt.Errorf("estimator exists: %s", name)
	}
	e := estimator.New(name)
	s.Estimators = append(s.Estimators, e)
	return e, nil
}

// RemoveEstimator removes the named estimator and everything it owns.
func (s *Store) RemoveEstimator(name string) error {
	for i, e := range s.Estimators {
		if e.Name == name {
			s.Estimators = append(s.Estimators[:i], s.Estimators[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("estimator does not exist: %s", name)
}

// Tasks iterates all tasks in the store as (estimator, task) pairs.
func (s *Store) Tasks(visit func(e *estimator.Estimator, t *estimator.Task) bool) {
	for _, e := range s.Estimators {
		for _, t := range e.Tasks {
			if !visit(e, t) {
				return
			}
		}
	}
}

// GetTask finds a task by ID, returning it with its owning estimator.
func (s *Store) GetTask(id string) (*estimator.Estimator, *estimator.Task, error) {
	var owner *estimator.Estimator
	var found *estimator.Task
	s.Tasks(func(e *estimator.Estimator, t *estimator.Task) bool {
		if t.ID == id {
			owner, found = e, t
			return false
		}
		return true
	})
	if found == nil {
		return nil, nil, fmt.Errorf("task does not exist: %s", id)
	}
	return owner, found, nil
}

// TaskExists reports whether a task with the given ID is in the store.
func (s *Store) TaskExists(id string) bool {
	_, _, err := s.GetTask(id)
	return err == nil
}

// RemoveTask removes the task with the given ID from its estimator.
func (s *Store) RemoveTask(id string) error {
	owner, task, err := s.GetTask(id)
	if err != nil {
		return err
	}
	for i, t := range owner.Tasks {
		if t == task {
			owner.Tasks = append(owner.Tasks[:i], owner.Tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// HolidayExists reports whether the date is already a holiday.
func (s *Store) HolidayExists(d calendar.Date) bool {
	for _, h := range s.Holidays {
		if h.Equal(d) {
			return true
		}
	}
	return false
}

// AddHoliday records a store-wide holiday; adding an existing date is a
// no-op.
func (s *Store) AddHoliday(d calendar.Date) {
	if !s.HolidayExists(d) {
		s.Holidays = append(s.Holidays, d)
	}
}

// RemoveHoliday deletes the holiday on the given date, if present.
func (s *Store) RemoveHoliday(d calendar.Date) {
	for i, h := range s.Holidays {
		if h.Equal(d) {
			s.Holidays = append(s.Holidays[:i], s.Holidays[i+1:]...)
			return
		}
	}
}

func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
