package verify

import (
	"digital.vasic.exercises/pkg/exercise"
	"digital.vasic.exercises/pkg/rule"
)

// Module is the standard VerificationModule implementation: a
// fixed ordered rule list bound to an exercise identifier and
// executed through an Evaluator.
type Module struct {
	id          exercise.ID
	name        string
	description string
	rules       []rule.Rule
	evaluator   *Evaluator
}

// NewModule creates a Module from an ordered rule list.
func NewModule(
	id exercise.ID,
	name string,
	description string,
	rules []rule.Rule,
	opts ...Option,
) *Module {
	return &Module{
		id:          id,
		name:        name,
		description: description,
		rules:       rules,
		evaluator:   NewEvaluator(opts...),
	}
}

// ID returns the exercise identifier this module verifies.
func (m *Module) ID() exercise.ID {
	return m.id
}

// Name returns the human-readable module name.
func (m *Module) Name() string {
	return m.name
}

// Description returns what this module checks.
func (m *Module) Description() string {
	return m.description
}

// Run evaluates the module's rules against the blob. The
// returned ResultSet has one entry per rule, in rule order.
func (m *Module) Run(blob string) *exercise.ResultSet {
	return m.evaluator.Evaluate(m.id, m.rules, blob)
}

// FromDefinition builds a runnable Module from a declarative
// definition, translating each RuleDef into a rule targeting
// either the whole blob or one declaration's body.
func FromDefinition(
	def *exercise.Definition,
	opts ...Option,
) *Module {
	rules := make([]rule.Rule, 0, len(def.Rules))
	for _, rd := range def.Rules {
		rules = append(rules, ruleFromDef(rd))
	}

	return NewModule(
		def.ID, def.Name, def.Description, rules, opts...,
	)
}

// ruleFromDef translates one declarative rule definition.
func ruleFromDef(rd exercise.RuleDef) rule.Rule {
	subject := rule.WholeBlob()
	if rd.Declaration != "" {
		subject = rule.Declaration(rd.Declaration)
	}

	conds := make([]rule.Condition, 0, len(rd.Conditions))
	for _, cd := range rd.Conditions {
		conds = append(conds, rule.Condition{
			Type:    cd.Type,
			Value:   cd.Value,
			Values:  cd.Values,
			Count:   cd.Count,
			Message: cd.Message,
		})
	}

	return rule.Rule{
		Name:       rd.Name,
		Subject:    subject,
		Conditions: conds,
	}
}
