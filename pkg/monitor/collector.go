package monitor

import (
	"sync"
	"time"

	"digital.vasic.exercises/pkg/exercise"
)

// EventCollector captures verification events and aggregate
// statistics.
type EventCollector struct {
	mu       sync.RWMutex
	events   []VerificationEvent
	handlers []func(VerificationEvent)
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics over collected
// events.
type CollectorStats struct {
	TotalEvents  int           `json:"total_events"`
	RunsStarted  int           `json:"runs_started"`
	RunsPassed   int           `json:"runs_passed"`
	RunsFailed   int           `json:"runs_failed"`
	LoadFailures int           `json:"load_failures"`
	StartTime    time.Time     `json:"start_time"`
	Duration     time.Duration `json:"duration"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]VerificationEvent, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(
	handler func(VerificationEvent),
) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event VerificationEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.stats.TotalEvents++
	switch event.Type {
	case EventRunStarted:
		c.stats.RunsStarted++
	case EventRunCompleted:
		c.stats.RunsPassed++
	case EventRunFailed:
		c.stats.RunsFailed++
	case EventModuleLoadFailed:
		c.stats.LoadFailures++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make(
		[]func(VerificationEvent), len(c.handlers),
	)
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// EmitRun emits the started and completed (or failed) events
// for one verification run.
func (c *EventCollector) EmitRun(set *exercise.ResultSet) {
	c.Emit(VerificationEvent{
		Type:       EventRunStarted,
		ExerciseID: set.ExerciseID,
		RunID:      set.RunID,
		Timestamp:  set.StartTime,
	})

	eventType := EventRunCompleted
	if !set.AllPassed() {
		eventType = EventRunFailed
	}

	c.Emit(VerificationEvent{
		Type:        eventType,
		ExerciseID:  set.ExerciseID,
		RunID:       set.RunID,
		RulesTotal:  len(set.Results),
		RulesPassed: set.PassedCount(),
		Duration:    set.Duration,
	})
}

// Events returns a copy of the collected events.
func (c *EventCollector) Events() []VerificationEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]VerificationEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Stats returns a snapshot of the aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}
