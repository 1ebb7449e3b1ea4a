// Package verify provides the rule evaluator: it runs an
// ordered list of predicate rules against a compiled source
// blob and assembles the resulting verdicts into a ResultSet.
package verify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"digital.vasic.exercises/pkg/exercise"
	"digital.vasic.exercises/pkg/extract"
	"digital.vasic.exercises/pkg/metrics"
	"digital.vasic.exercises/pkg/rule"
)

// Evaluator runs predicate rules against source blobs. The
// zero value is not usable; construct with NewEvaluator.
type Evaluator struct {
	engine   rule.Engine
	logger   exercise.Logger
	metrics  metrics.VerificationMetrics
	clock    func() time.Time
	budget   time.Duration
	newRunID func() string
}

// NewEvaluator creates an Evaluator with the supplied options.
// Without options it uses the default rule engine, no logger,
// and no evaluation budget.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		engine:   rule.NewEngine(),
		metrics:  metrics.NoopMetrics{},
		clock:    time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the given rules in order against the blob. It
// produces exactly one Result per rule, in rule order, and
// never short-circuits: rules are informational, not gating.
// Rules targeting the same declaration share one extraction
// via a per-run memo, discarded when the run ends.
func (e *Evaluator) Evaluate(
	id exercise.ID,
	rules []rule.Rule,
	blob string,
) *exercise.ResultSet {
	start := e.clock()

	set := &exercise.ResultSet{
		ExerciseID: id,
		RunID:      e.newRunID(),
		StartTime:  start,
		Results: make(
			[]exercise.Result, 0, len(rules),
		),
	}

	segments := make(map[string]string)

	for _, r := range rules {
		if e.budget > 0 &&
			e.clock().Sub(start) > e.budget {
			set.Results = append(set.Results,
				exercise.Result{
					Name:    r.Name,
					Status:  exercise.StatusError,
					Message: "evaluation budget exceeded",
				})
			continue
		}

		res := e.evaluateRule(r, blob, segments)
		e.metrics.RecordRule(
			string(id), r.Name, res.Passed(),
		)
		set.Results = append(set.Results, res)
	}

	set.Duration = e.clock().Sub(start)

	status := exercise.StatusPassed
	if !set.AllPassed() {
		status = exercise.StatusFailed
	}
	e.metrics.IncrementRunTotal()
	e.metrics.RecordRun(string(id), status, set.Duration)

	return set
}

// evaluateRule runs one rule and converts any panic into a
// failed evaluation-error Result, so one broken rule never
// aborts the batch.
func (e *Evaluator) evaluateRule(
	r rule.Rule,
	blob string,
	segments map[string]string,
) (result exercise.Result) {
	ruleStart := e.clock()

	defer func() {
		result.ExecutionTime = e.clock().Sub(ruleStart)
		if rec := recover(); rec != nil {
			if e.logger != nil {
				e.logger.Error(
					"rule panicked",
					"rule", r.Name,
					"panic", rec,
				)
			}
			result = exercise.Result{
				Name:   r.Name,
				Status: exercise.StatusError,
				Message: fmt.Sprintf(
					"evaluation error: %v", rec,
				),
				ExecutionTime: e.clock().Sub(ruleStart),
			}
		}
	}()

	subject := blob
	if !r.Subject.IsWholeBlob() {
		name := r.Subject.Declaration
		seg, ok := segments[name]
		if !ok {
			seg = extract.Body(blob, name)
			segments[name] = seg
		}
		subject = seg
	}

	ok, detail := e.engine.Apply(r.Conditions, subject)
	if ok {
		return exercise.Result{
			Name:   r.Name,
			Status: exercise.StatusPassed,
		}
	}

	return exercise.Result{
		Name:    r.Name,
		Status:  exercise.StatusFailed,
		Message: detail,
	}
}
