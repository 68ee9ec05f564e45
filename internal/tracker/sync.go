package tracker

import (
	"fmt"
	"sort"
	"strconv"

	"ebs/internal/estimator"
	"ebs/internal/store"
)

// Action describes what the sync did with one bug.
type Action struct {
	Op     string // SKIP, ADD, MOVE, UPDATE or NODIFF
	BugID  int
	Detail string
}

func (a Action) String() string {
	return fmt.Sprintf("%-6s %d : %s", a.Op, a.BugID, a.Detail)
}

// Syncer applies tracker bugs to a store. Bugs are matched to estimators by
// assignee; a bug whose assignee has no estimator is skipped.
type Syncer struct {
	Store *store.Store
}

// Sync fetches bugs with the client's configured search and applies each to
// the store in bug-ID order.
func (s *Syncer) Sync(client Client, args map[string]string) ([]Action, error) {
	bugs, err := client.SearchBugs(args)
	if err != nil {
		return nil, err
	}

	sort.Slice(bugs, func(i, j int) bool { return bugs[i].ID < bugs[j].ID })

	actions := make([]Action, 0, len(bugs))
	for _, bug := range bugs {
		actions = append(actions, s.apply(bug)...)
	}
	return actions, nil
}

func (s *Syncer) apply(bug Bug) []Action {
	if !s.Store.EstimatorExists(bug.AssignedTo) {
		return []Action{{
			Op:     "SKIP",
			BugID:  bug.ID,
			Detail: fmt.Sprintf("no estimator for assignee '%s'", bug.AssignedTo),
		}}
	}
	if s.Store.TaskExists(taskID(bug)) {
		return s.update(bug)
	}
	return s.add(bug)
}

func (s *Syncer) add(bug Bug) []Action {
	e, _ := s.Store.GetEstimator(bug.AssignedTo)
	e.Tasks = append(e.Tasks, bugTask(bug))
	return []Action{{
		Op:     "ADD",
		BugID:  bug.ID,
		Detail: fmt.Sprintf("add task: %s", bug.Summary),
	}}
}

func (s *Syncer) update(bug Bug) []Action {
	var actions []Action

	owner, task, _ := s.Store.GetTask(taskID(bug))
	e, _ := s.Store.GetEstimator(bug.AssignedTo)
	if owner != e {
		// Reassigned since the last sync; move the task with the bug.
		for i, t := range owner.Tasks {
			if t == task {
				owner.Tasks = append(owner.Tasks[:i], owner.Tasks[i+1:]...)
				break
			}
		}
		e.Tasks = append(e.Tasks, task)
		actions = append(actions, Action{
			Op:     "MOVE",
			BugID:  bug.ID,
			Detail: fmt.Sprintf("reassigned from '%s' to '%s'", owner.Name, e.Name),
		})
	}

	want := bugTask(bug)
	diff := false
	if task.Description != want.Description {
		actions = append(actions, updateAction(bug.ID, "description", task.Description, want.Description))
		task.Description = want.Description
		diff = true
	}
	if task.Estimate != want.Estimate {
		actions = append(actions, updateAction(bug.ID, "estimate", task.Estimate, want.Estimate))
		task.Estimate = want.Estimate
		diff = true
	}
	if task.Actual != want.Actual {
		actions = append(actions, updateAction(bug.ID, "actual", task.Actual, want.Actual))
		task.Actual = want.Actual
		diff = true
	}

	if !diff && len(actions) == 0 {
		actions = append(actions, Action{Op: "NODIFF", BugID: bug.ID, Detail: "task unchanged"})
	}
	return actions
}

func updateAction(bugID int, field string, oldValue, newValue any) Action {
	return Action{
		Op:     "UPDATE",
		BugID:  bugID,
		Detail: fmt.Sprintf("%s: %v -> %v", field, oldValue, newValue),
	}
}

func bugTask(bug Bug) *estimator.Task {
	actual := bug.ActualTime
	if bug.IsOpen {
		actual = 0
	}
	return &estimator.Task{
		ID:          taskID(bug),
		Description: bug.Summary,
		Estimate:    bug.EstimatedTime,
		Actual:      actual,
	}
}

func taskID(bug Bug) string {
	return strconv.Itoa(bug.ID)
}
