// Package report aggregates verification result sets into
// pre-publish summaries. Authoring tooling uses it alongside
// registry statistics; nothing here renders for learners.
package report

import (
	"fmt"
	"time"

	"digital.vasic.exercises/pkg/exercise"
)

// MasterSummary is an aggregated summary over many verification
// runs.
type MasterSummary struct {
	ID              string            `json:"id"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Exercises       []ExerciseSummary `json:"exercises"`
	TotalExercises  int               `json:"total_exercises"`
	PassedExercises int               `json:"passed_exercises"`
	FailedExercises int               `json:"failed_exercises"`
	TotalDuration   time.Duration     `json:"total_duration"`
	AveragePassRate float64           `json:"average_pass_rate"`
}

// ExerciseSummary summarizes one verification run.
type ExerciseSummary struct {
	ExerciseID  exercise.ID   `json:"exercise_id"`
	RunID       string        `json:"run_id"`
	AllPassed   bool          `json:"all_passed"`
	RulesPassed int           `json:"rules_passed"`
	RulesTotal  int           `json:"rules_total"`
	Duration    time.Duration `json:"duration"`
}

// BuildMasterSummary creates a master summary from result sets.
func BuildMasterSummary(
	sets []*exercise.ResultSet,
) *MasterSummary {
	summary := &MasterSummary{
		ID: fmt.Sprintf(
			"summary_%s",
			time.Now().Format("20060102_150405"),
		),
		GeneratedAt: time.Now(),
		Exercises: make(
			[]ExerciseSummary, 0, len(sets),
		),
	}

	var rateSum float64

	for _, set := range sets {
		es := ExerciseSummary{
			ExerciseID:  set.ExerciseID,
			RunID:       set.RunID,
			AllPassed:   set.AllPassed(),
			RulesPassed: set.PassedCount(),
			RulesTotal:  len(set.Results),
			Duration:    set.Duration,
		}

		summary.Exercises = append(summary.Exercises, es)
		summary.TotalExercises++
		summary.TotalDuration += set.Duration

		if es.AllPassed {
			summary.PassedExercises++
		} else {
			summary.FailedExercises++
		}

		if es.RulesTotal > 0 {
			rateSum += float64(es.RulesPassed) /
				float64(es.RulesTotal)
		}
	}

	if summary.TotalExercises > 0 {
		summary.AveragePassRate =
			rateSum / float64(summary.TotalExercises)
	}

	return summary
}
