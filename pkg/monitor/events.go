// Package monitor provides authoring-time observability for
// the verification engine: an event collector plus a WebSocket
// server broadcasting live verification events and registry
// statistics. It is never part of the learner hot path.
package monitor

import (
	"time"

	"digital.vasic.exercises/pkg/exercise"
)

// EventType represents the type of verification event.
type EventType string

const (
	EventModuleLoaded      EventType = "module_loaded"
	EventModuleLoadFailed  EventType = "module_load_failed"
	EventModuleInvalidated EventType = "module_invalidated"
	EventRunStarted        EventType = "run_started"
	EventRunCompleted      EventType = "run_completed"
	EventRunFailed         EventType = "run_failed"
)

// VerificationEvent represents a lifecycle event in module
// resolution or rule evaluation.
type VerificationEvent struct {
	Type        EventType     `json:"type"`
	ExerciseID  exercise.ID   `json:"exercise_id"`
	RunID       string        `json:"run_id,omitempty"`
	Message     string        `json:"message,omitempty"`
	RulesTotal  int           `json:"rules_total,omitempty"`
	RulesPassed int           `json:"rules_passed,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	Timestamp   time.Time     `json:"timestamp"`
}
