package exercise

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *ResultSet {
	return &ResultSet{
		ExerciseID: "ex-1",
		RunID:      "run-a",
		StartTime:  time.Now(),
		Duration:   5 * time.Millisecond,
		Results: []Result{
			{Name: "first", Status: StatusPassed},
			{
				Name:    "second",
				Status:  StatusFailed,
				Message: "missing 'useState'",
			},
			{
				Name:    "third",
				Status:  StatusError,
				Message: "evaluation error: boom",
			},
		},
	}
}

func TestResult_Passed(t *testing.T) {
	assert.True(t, Result{Status: StatusPassed}.Passed())
	assert.False(t, Result{Status: StatusFailed}.Passed())
	assert.False(t, Result{Status: StatusError}.Passed())
}

func TestResultSet_AllPassed(t *testing.T) {
	set := sampleSet()
	assert.False(t, set.AllPassed())

	all := &ResultSet{Results: []Result{
		{Name: "a", Status: StatusPassed},
		{Name: "b", Status: StatusPassed},
	}}
	assert.True(t, all.AllPassed())

	empty := &ResultSet{}
	assert.True(t, empty.AllPassed())
}

func TestResultSet_Failed(t *testing.T) {
	failed := sampleSet().Failed()

	require.Len(t, failed, 2)
	assert.Equal(t, "second", failed[0].Name)
	assert.Equal(t, "third", failed[1].Name)
}

func TestResultSet_PassedCount(t *testing.T) {
	assert.Equal(t, 1, sampleSet().PassedCount())
}

func TestResultSet_Equal_IgnoresRunIdentity(t *testing.T) {
	a := sampleSet()
	b := sampleSet()
	b.RunID = "run-b"
	b.StartTime = b.StartTime.Add(time.Hour)
	b.Duration = time.Second
	b.Results[0].ExecutionTime = time.Millisecond

	assert.True(t, a.Equal(b))
}

func TestResultSet_Equal_DetectsVerdictChanges(t *testing.T) {
	a := sampleSet()

	b := sampleSet()
	b.Results[1].Status = StatusPassed
	assert.False(t, a.Equal(b))

	c := sampleSet()
	c.Results[1].Message = "different diagnostic"
	assert.False(t, a.Equal(c))

	d := sampleSet()
	d.ExerciseID = "ex-2"
	assert.False(t, a.Equal(d))

	e := sampleSet()
	e.Results = e.Results[:2]
	assert.False(t, a.Equal(e))

	assert.False(t, a.Equal(nil))
}
