package exercise

import "context"

// Compiler is the external toolchain boundary: it turns
// learner-edited source into the compiled text blob the engine
// verifies. The engine assumes nothing about formatting or
// minification beyond balanced braces for the language's block
// syntax.
type Compiler interface {
	// Compile produces the source blob for one submission.
	Compile(
		ctx context.Context,
		editedText string,
	) (string, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(
	ctx context.Context,
	editedText string,
) (string, error)

// Compile calls the wrapped function.
func (f CompilerFunc) Compile(
	ctx context.Context,
	editedText string,
) (string, error) {
	return f(ctx, editedText)
}
