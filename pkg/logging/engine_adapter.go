package logging

import (
	"fmt"

	"digital.vasic.exercises/pkg/exercise"
)

// engineAdapter bridges the structured Logger to the minimal
// key-value Logger interface the engine packages consume.
type engineAdapter struct {
	logger Logger
}

// ForEngine wraps a structured Logger so it can be passed to
// the evaluator and registry.
func ForEngine(logger Logger) exercise.Logger {
	return &engineAdapter{logger: logger}
}

// pairFields converts alternating key-value args into Fields.
// A trailing unpaired arg is kept under the "arg" key.
func pairFields(args []any) []Field {
	fields := make([]Field, 0, (len(args)+1)/2)
	for i := 0; i+1 < len(args); i += 2 {
		fields = append(fields, Field{
			Key:   fmt.Sprintf("%v", args[i]),
			Value: args[i+1],
		})
	}
	if len(args)%2 != 0 {
		fields = append(fields, Field{
			Key:   "arg",
			Value: args[len(args)-1],
		})
	}
	return fields
}

// Info logs an informational message.
func (a *engineAdapter) Info(msg string, args ...any) {
	a.logger.Info(msg, pairFields(args)...)
}

// Warn logs a warning message.
func (a *engineAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(msg, pairFields(args)...)
}

// Error logs an error message.
func (a *engineAdapter) Error(msg string, args ...any) {
	a.logger.Error(msg, pairFields(args)...)
}

// Debug logs a debug-level message.
func (a *engineAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(msg, pairFields(args)...)
}

// Close closes the wrapped logger.
func (a *engineAdapter) Close() error {
	return a.logger.Close()
}
