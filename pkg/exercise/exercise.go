// Package exercise defines the core data model shared by the
// verification engine: exercise identifiers, declaration
// references, per-rule results, and the VerificationModule
// contract implemented by every per-exercise checker.
package exercise

// ID uniquely identifies an exercise.
type ID string

// DeclKind classifies the declaration forms the extractor
// understands.
type DeclKind string

const (
	// DeclFunction is a keyword-prefixed function declaration.
	DeclFunction DeclKind = "function"

	// DeclBoundConstant is a constant bound to a closure or
	// arrow expression.
	DeclBoundConstant DeclKind = "bound-constant"

	// DeclClass is a class declaration.
	DeclClass DeclKind = "class"
)

// DeclarationRef identifies a single named declaration inside
// a source blob. It has no identity beyond one evaluation call.
type DeclarationRef struct {
	// Kind is the declaration form.
	Kind DeclKind `json:"kind"`

	// Name is the declared identifier.
	Name string `json:"name"`
}

// VerificationModule is the per-exercise unit pairing the
// declarations to extract with the rules to run against them.
type VerificationModule interface {
	// ID returns the exercise identifier this module verifies.
	ID() ID

	// Name returns the human-readable module name.
	Name() string

	// Description returns a detailed description of what this
	// module checks.
	Description() string

	// Run evaluates the module's rules against a compiled
	// source blob. It always returns a non-nil ResultSet and
	// never returns an error: learner mistakes surface as
	// failed Results, not as errors.
	Run(blob string) *ResultSet
}

// Logger defines the minimal logging interface used by the
// engine packages. Implementations should be provided by the
// logging package.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs a warning message.
	Warn(msg string, args ...any)

	// Error logs an error message.
	Error(msg string, args ...any)

	// Debug logs a debug-level message.
	Debug(msg string, args ...any)

	// Close flushes and closes the logger.
	Close() error
}
