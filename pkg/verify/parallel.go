package verify

import (
	"sync"

	"digital.vasic.exercises/pkg/exercise"
	"digital.vasic.exercises/pkg/extract"
	"digital.vasic.exercises/pkg/rule"
)

// indexedResult pairs a result with its original rule index so
// the ResultSet can be assembled in declaration order.
type indexedResult struct {
	index  int
	result exercise.Result
}

// EvaluateParallel runs the rules concurrently with a semaphore
// limiting maxConcurrency goroutines. Correctness never depends
// on parallelism: the returned ResultSet is ordered by rule
// index, exactly as Evaluate would order it. Segments are
// extracted up front so workers share read-only data.
func (e *Evaluator) EvaluateParallel(
	id exercise.ID,
	rules []rule.Rule,
	blob string,
	maxConcurrency int,
) *exercise.ResultSet {
	if maxConcurrency <= 1 || len(rules) < 2 {
		return e.Evaluate(id, rules, blob)
	}

	start := e.clock()

	segments := make(map[string]string)
	for _, r := range rules {
		name := r.Subject.Declaration
		if name == "" {
			continue
		}
		if _, ok := segments[name]; !ok {
			segments[name] = extract.Body(blob, name)
		}
	}

	sem := make(chan struct{}, maxConcurrency)
	resultsCh := make(chan indexedResult, len(rules))

	var wg sync.WaitGroup
	for i, r := range rules {
		wg.Add(1)
		go func(idx int, rl rule.Rule) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			resultsCh <- indexedResult{
				index: idx,
				result: e.evaluateRule(
					rl, blob, segments,
				),
			}
		}(i, r)
	}

	wg.Wait()
	close(resultsCh)

	results := make([]exercise.Result, len(rules))
	for ir := range resultsCh {
		results[ir.index] = ir.result
	}

	set := &exercise.ResultSet{
		ExerciseID: id,
		RunID:      e.newRunID(),
		StartTime:  start,
		Results:    results,
	}
	set.Duration = e.clock().Sub(start)

	for i, r := range rules {
		e.metrics.RecordRule(
			string(id), r.Name, results[i].Passed(),
		)
	}

	status := exercise.StatusPassed
	if !set.AllPassed() {
		status = exercise.StatusFailed
	}
	e.metrics.IncrementRunTotal()
	e.metrics.RecordRun(string(id), status, set.Duration)

	return set
}
