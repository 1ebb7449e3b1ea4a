package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.exercises/pkg/exercise"
)

func passingSet(id exercise.ID, runID string) *exercise.ResultSet {
	return &exercise.ResultSet{
		ExerciseID: id,
		RunID:      runID,
		StartTime:  time.Now(),
		Duration:   4 * time.Millisecond,
		Results: []exercise.Result{
			{Name: "a", Status: exercise.StatusPassed},
			{Name: "b", Status: exercise.StatusPassed},
		},
	}
}

func failingSet(id exercise.ID, runID string) *exercise.ResultSet {
	return &exercise.ResultSet{
		ExerciseID: id,
		RunID:      runID,
		Duration:   2 * time.Millisecond,
		Results: []exercise.Result{
			{Name: "a", Status: exercise.StatusPassed},
			{
				Name:    "b",
				Status:  exercise.StatusFailed,
				Message: "missing 'return'",
			},
		},
	}
}

func TestBuildMasterSummary(t *testing.T) {
	summary := BuildMasterSummary([]*exercise.ResultSet{
		passingSet("ex-1", "run-1"),
		failingSet("ex-2", "run-2"),
	})

	assert.Equal(t, 2, summary.TotalExercises)
	assert.Equal(t, 1, summary.PassedExercises)
	assert.Equal(t, 1, summary.FailedExercises)
	assert.Equal(t, 6*time.Millisecond, summary.TotalDuration)

	// Pass rates: 2/2 and 1/2, averaged.
	assert.InDelta(t, 0.75, summary.AveragePassRate, 1e-9)

	require.Len(t, summary.Exercises, 2)
	assert.True(t, summary.Exercises[0].AllPassed)
	assert.False(t, summary.Exercises[1].AllPassed)
	assert.Equal(t, 1, summary.Exercises[1].RulesPassed)
	assert.Equal(t, 2, summary.Exercises[1].RulesTotal)
}

func TestBuildMasterSummary_Empty(t *testing.T) {
	summary := BuildMasterSummary(nil)

	assert.Equal(t, 0, summary.TotalExercises)
	assert.Zero(t, summary.AveragePassRate)
	assert.Empty(t, summary.Exercises)
}

func TestJSONReporter_GenerateReport(t *testing.T) {
	r := NewJSONReporter("", false)

	data, err := r.GenerateReport(passingSet("ex-1", "run-1"))
	require.NoError(t, err)

	var decoded exercise.ResultSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, exercise.ID("ex-1"), decoded.ExerciseID)
	require.Len(t, decoded.Results, 2)
}

func TestJSONReporter_PrettyOutput(t *testing.T) {
	r := NewJSONReporter("", true)

	data, err := r.GenerateReport(passingSet("ex-1", "run-1"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  ")
}

func TestJSONReporter_WriteReport(t *testing.T) {
	r := NewJSONReporter("", false)
	var buf bytes.Buffer

	require.NoError(
		t, r.WriteReport(&buf, failingSet("ex-2", "run-2")),
	)

	var decoded exercise.ResultSet
	require.NoError(
		t, json.Unmarshal(buf.Bytes(), &decoded),
	)
	assert.Equal(
		t, "missing 'return'", decoded.Results[1].Message,
	)
}

func TestJSONReporter_SaveReport(t *testing.T) {
	dir := t.TempDir()
	r := NewJSONReporter(dir, false)

	path, err := r.SaveReport(passingSet("ex-1", "run-1"))
	require.NoError(t, err)

	assert.Equal(
		t, filepath.Join(dir, "ex-1_run-1.json"), path,
	)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded exercise.ResultSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
}

func TestJSONReporter_GenerateMasterSummary(t *testing.T) {
	r := NewJSONReporter("", false)

	data, err := r.GenerateMasterSummary(
		[]*exercise.ResultSet{
			passingSet("ex-1", "run-1"),
			failingSet("ex-2", "run-2"),
		},
	)
	require.NoError(t, err)

	var decoded MasterSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.TotalExercises)
	assert.Equal(t, 1, decoded.PassedExercises)
}
