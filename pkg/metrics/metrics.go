// Package metrics defines recording interfaces for verification
// activity. The in-memory implementation is enough for authoring
// dashboards; host applications bridge to their own metrics
// stack.
package metrics

import "time"

// VerificationMetrics defines the interface for recording
// verification metrics.
type VerificationMetrics interface {
	// RecordRun records a completed verification run.
	RecordRun(exerciseID, status string, duration time.Duration)
	// RecordRule records a single rule verdict.
	RecordRule(exerciseID, ruleName string, passed bool)
	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
	// SetActiveExercises sets the gauge of exercises with a
	// loaded verification module.
	SetActiveExercises(count int)
}

// NoopMetrics is a no-op implementation of VerificationMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) RecordRun(_, _ string, _ time.Duration) {}
func (NoopMetrics) RecordRule(_, _ string, _ bool)         {}
func (NoopMetrics) IncrementRunTotal()                     {}
func (NoopMetrics) SetActiveExercises(_ int)               {}
