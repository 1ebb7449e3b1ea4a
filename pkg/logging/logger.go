// Package logging provides structured logging for the exercise
// verification engine with JSON, console, and multi-destination
// output.
package logging

// Logger defines the interface for structured verification
// logging.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning message.
	Warn(msg string, fields ...Field)

	// Error logs an error message.
	Error(msg string, fields ...Field)

	// Debug logs a debug-level message.
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger with additional default
	// fields attached to every subsequent log entry.
	WithFields(fields ...Field) Logger

	// LogModuleLoad logs a verification-module load attempt.
	LogModuleLoad(load ModuleLoadLog)

	// LogVerificationRun logs a completed verification run.
	LogVerificationRun(run VerificationRunLog)

	// Close flushes any buffers and releases resources.
	Close() error
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// ModuleLoadLog captures a verification-module load attempt.
type ModuleLoadLog struct {
	Timestamp  string `json:"timestamp"`
	ExerciseID string `json:"exercise_id"`
	Source     string `json:"source"`
	CacheHit   bool   `json:"cache_hit"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// VerificationRunLog captures a completed verification run.
type VerificationRunLog struct {
	Timestamp   string `json:"timestamp"`
	ExerciseID  string `json:"exercise_id"`
	RunID       string `json:"run_id"`
	RulesTotal  int    `json:"rules_total"`
	RulesPassed int    `json:"rules_passed"`
	DurationMs  int64  `json:"duration_ms"`
}

// LogLevel represents logging severity levels.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is the default level.
	LevelInfo
	// LevelWarn indicates potential issues.
	LevelWarn
	// LevelError indicates failures.
	LevelError
)

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
