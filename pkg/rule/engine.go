package rule

import (
	"fmt"
	"sync"
)

// CheckFunc evaluates a single condition type against a text
// subject. It returns whether the condition holds and a
// human-readable explanation.
type CheckFunc func(cond Condition, text string) (bool, string)

// Engine defines the interface for condition-check engines.
type Engine interface {
	// Check evaluates a single condition against the given
	// text.
	Check(cond Condition, text string) (bool, string)

	// Apply evaluates a rule's conditions in order against the
	// given text. It returns true if all conditions hold, or
	// false plus the diagnostic for the first unmet condition.
	Apply(conds []Condition, text string) (bool, string)

	// Register adds a custom check for the given condition
	// type. Returns an error if the type is already
	// registered.
	Register(condType string, check CheckFunc) error
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewEngine creates a DefaultEngine with all built-in checks
// pre-registered.
func NewEngine() *DefaultEngine {
	e := &DefaultEngine{
		checks: make(map[string]CheckFunc),
	}
	e.registerDefaults()
	return e
}

// registerDefaults registers the built-in checks.
func (e *DefaultEngine) registerDefaults() {
	e.checks["contains"] = checkContains
	e.checks["not_contains"] = checkNotContains
	e.checks["contains_any"] = checkContainsAny
	e.checks["matches"] = checkMatches
	e.checks["min_length"] = checkMinLength
	e.checks["min_count"] = checkMinCount
	e.checks["not_empty"] = checkNotEmpty
	e.checks["declared"] = checkDeclared
}

// Register adds a custom check for the given condition type.
// Returns an error if the type is already registered.
func (e *DefaultEngine) Register(
	condType string,
	check CheckFunc,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.checks[condType]; exists {
		return fmt.Errorf(
			"condition type already registered: %s",
			condType,
		)
	}

	e.checks[condType] = check
	return nil
}

// Check evaluates a single condition against the given text.
// Unknown condition types are unmet rather than fatal, so a
// typo in an exercise bank degrades to a failed rule.
func (e *DefaultEngine) Check(
	cond Condition,
	text string,
) (bool, string) {
	e.mu.RLock()
	check, exists := e.checks[cond.Type]
	e.mu.RUnlock()

	if !exists {
		return false, fmt.Sprintf(
			"unknown condition type: %s", cond.Type,
		)
	}

	return check(cond, text)
}

// Apply evaluates conditions in order and stops at the first
// unmet one, whose diagnostic (or Message override) becomes the
// rule's failure message. Diagnostics therefore always point at
// the first unmet requirement in declaration order.
func (e *DefaultEngine) Apply(
	conds []Condition,
	text string,
) (bool, string) {
	for _, cond := range conds {
		ok, detail := e.Check(cond, text)
		if ok {
			continue
		}
		if cond.Message != "" {
			return false, cond.Message
		}
		return false, detail
	}
	return true, ""
}

// HasCheck returns true if the given condition type has a
// registered check.
func (e *DefaultEngine) HasCheck(condType string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.checks[condType]
	return exists
}
