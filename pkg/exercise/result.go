package exercise

import "time"

// Status constants for rule evaluation outcomes.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
	StatusError  = "error"
)

// Result captures the outcome of evaluating a single predicate
// rule against a source blob or extracted segment.
type Result struct {
	// Name is the rule's human-readable name.
	Name string `json:"name"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Message is a targeted diagnostic pointing at the first
	// unmet requirement. Empty when the rule passed.
	Message string `json:"message,omitempty"`

	// ExecutionTime is how long the rule took to evaluate.
	ExecutionTime time.Duration `json:"execution_time"`
}

// Passed returns true if the rule passed.
func (r Result) Passed() bool {
	return r.Status == StatusPassed
}

// ResultSet is the ordered collection of per-rule outcomes
// produced by one verification run. Ordering always matches
// the order rules were declared in.
type ResultSet struct {
	// ExerciseID identifies the exercise that was verified.
	ExerciseID ID `json:"exercise_id"`

	// RunID uniquely identifies this verification run.
	RunID string `json:"run_id"`

	// StartTime is when the run began.
	StartTime time.Time `json:"start_time"`

	// Duration is the wall-clock time for the whole run.
	Duration time.Duration `json:"duration"`

	// Results holds one entry per rule, in rule order.
	Results []Result `json:"results"`
}

// AllPassed returns true if every result in the set passed.
func (s *ResultSet) AllPassed() bool {
	for _, r := range s.Results {
		if !r.Passed() {
			return false
		}
	}
	return true
}

// Failed returns the results that did not pass, in order.
func (s *ResultSet) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if !r.Passed() {
			out = append(out, r)
		}
	}
	return out
}

// PassedCount returns the number of passing results.
func (s *ResultSet) PassedCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed() {
			n++
		}
	}
	return n
}

// Equal reports whether two result sets carry the same verdicts.
// Run identity and timing (RunID, StartTime, Duration, per-rule
// ExecutionTime) are excluded so that repeated runs against an
// unchanged blob compare equal.
func (s *ResultSet) Equal(other *ResultSet) bool {
	if other == nil {
		return false
	}
	if s.ExerciseID != other.ExerciseID {
		return false
	}
	if len(s.Results) != len(other.Results) {
		return false
	}
	for i, r := range s.Results {
		o := other.Results[i]
		if r.Name != o.Name ||
			r.Status != o.Status ||
			r.Message != o.Message {
			return false
		}
	}
	return true
}
