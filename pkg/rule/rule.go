// Package rule provides the predicate rule model and an
// extensible condition-check engine for the verification
// evaluator. It ships with built-in textual checks and supports
// custom check registration.
package rule

// Subject selects what text a rule inspects: the whole source
// blob, or the extracted body of one named declaration.
type Subject struct {
	// Declaration is the declaration name whose body the rule
	// targets. Empty means the whole blob.
	Declaration string
}

// WholeBlob returns a subject covering the entire source blob.
func WholeBlob() Subject {
	return Subject{}
}

// Declaration returns a subject covering the extracted body of
// the named declaration.
func Declaration(name string) Subject {
	return Subject{Declaration: name}
}

// IsWholeBlob returns true if the subject is the whole blob.
func (s Subject) IsWholeBlob() bool {
	return s.Declaration == ""
}

// Condition is a single textual check within a rule. Conditions
// are checked in declaration order; the first unmet condition
// supplies the rule's failure diagnostic.
type Condition struct {
	// Type is the check type (e.g., "contains",
	// "not_contains", "matches", "min_length", "min_count",
	// "declared", "not_empty", "contains_any").
	Type string

	// Value is the expected value for single-value checks.
	Value any

	// Values holds expected values for multi-value checks.
	Values []any

	// Count is the occurrence threshold for counting checks.
	Count int

	// Message overrides the generated diagnostic when this
	// condition is the first unmet one.
	Message string
}

// Rule is a named predicate: an ordered conjunction of
// conditions evaluated against one subject. Rules are stateless
// and reusable across exercises.
type Rule struct {
	// Name is shown to the learner next to the verdict.
	Name string

	// Subject selects the text the conditions run against.
	Subject Subject

	// Conditions are evaluated in order. All must hold for the
	// rule to pass.
	Conditions []Condition
}
