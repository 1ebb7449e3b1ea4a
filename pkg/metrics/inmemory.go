package metrics

import (
	"sync"
	"time"
)

// InMemoryMetrics implements VerificationMetrics with simple
// in-memory counters. Real Prometheus integration is done by
// the host application using prometheus/client_golang; this
// keeps the engine free of exporter dependencies.
type InMemoryMetrics struct {
	mu        sync.Mutex
	runs      map[string]int
	rules     map[string]int
	durations map[string][]time.Duration
	runTotal  int
	active    int
}

// NewInMemoryMetrics creates a new InMemoryMetrics instance.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		runs:      make(map[string]int),
		rules:     make(map[string]int),
		durations: make(map[string][]time.Duration),
	}
}

// RecordRun records a completed verification run.
func (m *InMemoryMetrics) RecordRun(
	exerciseID, status string,
	duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := exerciseID + ":" + status
	m.runs[key]++
	m.durations[exerciseID] = append(
		m.durations[exerciseID], duration,
	)
}

// RecordRule records a single rule verdict.
func (m *InMemoryMetrics) RecordRule(
	exerciseID, ruleName string,
	passed bool,
) {
	status := "failed"
	if passed {
		status = "passed"
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules[exerciseID+":"+ruleName+":"+status]++
}

// IncrementRunTotal increments the total run counter.
func (m *InMemoryMetrics) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

// SetActiveExercises sets the active-exercises gauge.
func (m *InMemoryMetrics) SetActiveExercises(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = count
}

// RunCount returns the count for an exercise+status
// combination.
func (m *InMemoryMetrics) RunCount(
	exerciseID, status string,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs[exerciseID+":"+status]
}

// RuleCount returns the count for an exercise+rule+verdict
// combination. The verdict is "passed" or "failed".
func (m *InMemoryMetrics) RuleCount(
	exerciseID, ruleName, verdict string,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rules[exerciseID+":"+ruleName+":"+verdict]
}

// RunTotal returns the total number of runs.
func (m *InMemoryMetrics) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}

// ActiveExercises returns the current active-exercises gauge.
func (m *InMemoryMetrics) ActiveExercises() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
