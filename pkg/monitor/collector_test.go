package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.exercises/pkg/exercise"
)

func TestEventCollector_Emit(t *testing.T) {
	c := NewEventCollector()

	c.Emit(VerificationEvent{
		Type:       EventModuleLoaded,
		ExerciseID: "ex-1",
	})
	c.Emit(VerificationEvent{
		Type:       EventModuleLoadFailed,
		ExerciseID: "ex-2",
		Message:    "loader returned an error",
	})

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventModuleLoaded, events[0].Type)
	assert.False(t, events[0].Timestamp.IsZero())

	stats := c.Stats()
	assert.Equal(t, 2, stats.TotalEvents)
	assert.Equal(t, 1, stats.LoadFailures)
	assert.Equal(t, 0, stats.RunsStarted)
}

func TestEventCollector_EmitRun_Passed(t *testing.T) {
	c := NewEventCollector()

	c.EmitRun(&exercise.ResultSet{
		ExerciseID: "ex-1",
		RunID:      "run-1",
		StartTime:  time.Now(),
		Duration:   3 * time.Millisecond,
		Results: []exercise.Result{
			{Name: "a", Status: exercise.StatusPassed},
			{Name: "b", Status: exercise.StatusPassed},
		},
	})

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventRunStarted, events[0].Type)
	assert.Equal(t, EventRunCompleted, events[1].Type)
	assert.Equal(t, 2, events[1].RulesTotal)
	assert.Equal(t, 2, events[1].RulesPassed)

	stats := c.Stats()
	assert.Equal(t, 1, stats.RunsStarted)
	assert.Equal(t, 1, stats.RunsPassed)
	assert.Equal(t, 0, stats.RunsFailed)
}

func TestEventCollector_EmitRun_Failed(t *testing.T) {
	c := NewEventCollector()

	c.EmitRun(&exercise.ResultSet{
		ExerciseID: "ex-1",
		RunID:      "run-1",
		Results: []exercise.Result{
			{Name: "a", Status: exercise.StatusPassed},
			{
				Name:    "b",
				Status:  exercise.StatusFailed,
				Message: "missing 'useState'",
			},
		},
	})

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventRunFailed, events[1].Type)
	assert.Equal(t, 1, events[1].RulesPassed)

	stats := c.Stats()
	assert.Equal(t, 1, stats.RunsFailed)
	assert.Equal(t, 0, stats.RunsPassed)
}

func TestEventCollector_OnEvent(t *testing.T) {
	c := NewEventCollector()

	var seen []EventType
	c.OnEvent(func(e VerificationEvent) {
		seen = append(seen, e.Type)
	})

	c.Emit(VerificationEvent{Type: EventModuleLoaded})
	c.Emit(VerificationEvent{Type: EventModuleInvalidated})

	require.Len(t, seen, 2)
	assert.Equal(t, EventModuleLoaded, seen[0])
	assert.Equal(t, EventModuleInvalidated, seen[1])
}

func TestEventCollector_EventsReturnsCopy(t *testing.T) {
	c := NewEventCollector()
	c.Emit(VerificationEvent{Type: EventModuleLoaded})

	events := c.Events()
	events[0].Type = EventRunFailed

	assert.Equal(t, EventModuleLoaded, c.Events()[0].Type)
}
