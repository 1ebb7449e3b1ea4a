package verify

import (
	"time"

	"digital.vasic.exercises/pkg/exercise"
	"digital.vasic.exercises/pkg/metrics"
	"digital.vasic.exercises/pkg/rule"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithEngine sets the condition-check engine. Use this to run
// rules against an engine with custom checks registered.
func WithEngine(engine rule.Engine) Option {
	return func(e *Evaluator) {
		e.engine = engine
	}
}

// WithLogger sets the logger used by the evaluator.
func WithLogger(logger exercise.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics recorder used by the evaluator.
func WithMetrics(m metrics.VerificationMetrics) Option {
	return func(e *Evaluator) {
		e.metrics = m
	}
}

// WithClock overrides the time source, allowing tests to pin
// ExecutionTime and Duration values.
func WithClock(clock func() time.Time) Option {
	return func(e *Evaluator) {
		e.clock = clock
	}
}

// WithBudget sets a soft wall-clock budget for one evaluation
// run. Rules reached after the budget is spent report an
// evaluation-error Result instead of running. Zero disables
// the budget.
func WithBudget(budget time.Duration) Option {
	return func(e *Evaluator) {
		e.budget = budget
	}
}

// WithRunID overrides run-identifier generation. Intended for
// tests that need stable ResultSet identities.
func WithRunID(newRunID func() string) Option {
	return func(e *Evaluator) {
		e.newRunID = newRunID
	}
}
