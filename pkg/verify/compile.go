package verify

import (
	"context"
	"fmt"

	"digital.vasic.exercises/pkg/exercise"
)

// RunCompiled compiles learner-edited source through the given
// compiler and runs the module against the resulting blob.
// Compile faults are the caller's problem to present; rules are
// never evaluated against text that did not compile.
func RunCompiled(
	ctx context.Context,
	compiler exercise.Compiler,
	module exercise.VerificationModule,
	editedText string,
) (*exercise.ResultSet, error) {
	blob, err := compiler.Compile(ctx, editedText)
	if err != nil {
		return nil, fmt.Errorf(
			"compile %s: %w", module.ID(), err,
		)
	}
	return module.Run(blob), nil
}
