package tracker

import (
	"errors"
	"testing"

	"ebs/internal/estimator"
	"ebs/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	bugs []Bug
	err  error
}

func (c *fakeClient) SearchBugs(args map[string]string) ([]Bug, error) {
	return c.bugs, c.err
}

func syncStore(t *testing.T, names ...string) *store.Store {
	t.Helper()
	s := &store.Store{}
	for _, name := range names {
		_, err := s.AddEstimator(name)
		require.NoError(t, err)
	}
	return s
}

func TestSyncSkipsUnknownAssignee(t *testing.T) {
	s := syncStore(t, "alice")
	client := &fakeClient{bugs: []Bug{
		{ID: 1, Summary: "fix login", AssignedTo: "mallory"},
	}}

	actions, err := (&Syncer{Store: s}).Sync(client, nil)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "SKIP", actions[0].Op)
	assert.False(t, s.TaskExists("1"))
}

func TestSyncAddsNewBug(t *testing.T) {
	s := syncStore(t, "alice")
	client := &fakeClient{bugs: []Bug{
		{ID: 1, Summary: "fix login", AssignedTo: "alice", EstimatedTime: 4, ActualTime: 6, IsOpen: false},
	}}

	actions, err := (&Syncer{Store: s}).Sync(client, nil)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "ADD", actions[0].Op)

	_, task, err := s.GetTask("1")
	require.NoError(t, err)
	assert.Equal(t, "fix login", task.Description)
	assert.Equal(t, 4.0, task.Estimate)
	assert.Equal(t, 6.0, task.Actual)
}

func TestSyncOpenBugHasNoActual(t *testing.T) {
	s := syncStore(t, "alice")
	client := &fakeClient{bugs: []Bug{
		{ID: 1, Summary: "fix login", AssignedTo: "alice", EstimatedTime: 4, ActualTime: 2, IsOpen: true},
	}}

	_, err := (&Syncer{Store: s}).Sync(client, nil)
	require.NoError(t, err)

	_, task, err := s.GetTask("1")
	require.NoError(t, err)
	assert.False(t, task.Completed(), "an open bug must stay pending")
	assert.Equal(t, 0.0, task.Actual)
}

func TestSyncUpdatesChangedFields(t *testing.T) {
	s := syncStore(t, "alice")
	alice, _ := s.GetEstimator("alice")
	alice.Tasks = append(alice.Tasks, &estimator.Task{
		ID: "1", Description: "fix login", Estimate: 4,
	})
	client := &fakeClient{bugs: []Bug{
		{ID: 1, Summary: "fix login page", AssignedTo: "alice", EstimatedTime: 4, ActualTime: 6, IsOpen: false},
	}}

	actions, err := (&Syncer{Store: s}).Sync(client, nil)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "UPDATE", actions[0].Op)
	assert.Equal(t, "UPDATE", actions[1].Op)

	_, task, _ := s.GetTask("1")
	assert.Equal(t, "fix login page", task.Description)
	assert.Equal(t, 6.0, task.Actual)
}

func TestSyncMovesReassignedBug(t *testing.T) {
	s := syncStore(t, "alice", "bob")
	alice, _ := s.GetEstimator("alice")
	alice.Tasks = append(alice.Tasks, &estimator.Task{
		ID: "1", Description: "fix login", Estimate: 4,
	})
	client := &fakeClient{bugs: []Bug{
		{ID: 1, Summary: "fix login", AssignedTo: "bob", EstimatedTime: 4, IsOpen: true},
	}}

	actions, err := (&Syncer{Store: s}).Sync(client, nil)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "MOVE", actions[0].Op)

	owner, _, err := s.GetTask("1")
	require.NoError(t, err)
	assert.Equal(t, "bob", owner.Name)
	assert.Empty(t, alice.Tasks)
}

func TestSyncReportsNoDiff(t *testing.T) {
	s := syncStore(t, "alice")
	alice, _ := s.GetEstimator("alice")
	alice.Tasks = append(alice.Tasks, &estimator.Task{
		ID: "1", Description: "fix login", Estimate: 4,
	})
	client := &fakeClient{bugs: []Bug{
		{ID: 1, Summary: "fix login", AssignedTo: "alice", EstimatedTime: 4, IsOpen: true},
	}}

	actions, err := (&Syncer{Store: s}).Sync(client, nil)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "NODIFF", actions[0].Op)
}

func TestSyncAppliesBugsInIDOrder(t *testing.T) {
	s := syncStore(t, "alice")
	client := &fakeClient{bugs: []Bug{
		{ID: 9, Summary: "later", AssignedTo: "alice"},
		{ID: 2, Summary: "earlier", AssignedTo: "alice"},
	}}

	actions, err := (&Syncer{Store: s}).Sync(client, nil)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, 2, actions[0].BugID)
	assert.Equal(t, 9, actions[1].BugID)
}

func TestSyncPropagatesClientError(t *testing.T) {
	s := syncStore(t, "alice")
	client := &fakeClient{err: errors.New("boom")}

	_, err := (&Syncer{Store: s}).Sync(client, nil)
	assert.Error(t, err)
}

func TestActionString(t *testing.T) {
	a := Action{Op: "ADD", BugID: 7, Detail: "add task: fix login"}
	assert.Equal(t, "ADD    7 : add task: fix login", a.String())
}
