package exercise

// Definition describes a verification module declaratively. It
// captures everything needed to build a runnable module without
// Go code, so that exercise banks can be authored as JSON or
// YAML files.
type Definition struct {
	ID           ID               `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Declarations []DeclarationRef `json:"declarations,omitempty"`
	Rules        []RuleDef        `json:"rules"`
}

// RuleDef defines a single predicate rule declaratively.
type RuleDef struct {
	// Name is the rule's human-readable name, shown to the
	// learner next to its pass/fail verdict.
	Name string `json:"name"`

	// Declaration names the declaration whose extracted body
	// the rule inspects. Empty means the rule runs against the
	// whole blob.
	Declaration string `json:"declaration,omitempty"`

	// Conditions are checked in order; the first unmet
	// condition supplies the failure diagnostic.
	Conditions []ConditionDef `json:"conditions"`
}

// ConditionDef defines a single textual check within a rule.
type ConditionDef struct {
	// Type is the condition type (e.g., "contains",
	// "not_contains", "matches", "min_length", "min_count",
	// "declared").
	Type string `json:"type"`

	// Value is the expected value for single-value conditions.
	Value any `json:"value,omitempty"`

	// Values holds expected values for multi-value conditions.
	Values []any `json:"values,omitempty"`

	// Count is the occurrence threshold for counting
	// conditions such as "min_count".
	Count int `json:"count,omitempty"`

	// Message overrides the generated diagnostic when this
	// condition is the first unmet one.
	Message string `json:"message,omitempty"`
}
