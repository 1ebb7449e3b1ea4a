package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"digital.vasic.exercises/pkg/exercise"
)

// JSONReporter generates JSON reports from verification result
// sets.
type JSONReporter struct {
	outputDir string
	pretty    bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(
	outputDir string,
	pretty bool,
) *JSONReporter {
	return &JSONReporter{
		outputDir: outputDir,
		pretty:    pretty,
	}
}

// GenerateReport creates a JSON report for a single result set.
func (r *JSONReporter) GenerateReport(
	set *exercise.ResultSet,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(set, "", "  ")
	}
	return json.Marshal(set)
}

// GenerateMasterSummary creates a JSON master summary over all
// result sets.
func (r *JSONReporter) GenerateMasterSummary(
	sets []*exercise.ResultSet,
) ([]byte, error) {
	summary := BuildMasterSummary(sets)
	if r.pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	set *exercise.ResultSet,
) error {
	data, err := r.GenerateReport(set)
	if err != nil {
		return fmt.Errorf(
			"failed to generate report: %w", err,
		)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf(
			"failed to write report: %w", err,
		)
	}
	return nil
}

// SaveReport writes a result set report into the reporter's
// output directory, named by exercise and run id.
func (r *JSONReporter) SaveReport(
	set *exercise.ResultSet,
) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	data, err := r.GenerateReport(set)
	if err != nil {
		return "", fmt.Errorf(
			"failed to generate report: %w", err,
		)
	}

	path := filepath.Join(
		r.outputDir,
		fmt.Sprintf(
			"%s_%s.json", set.ExerciseID, set.RunID,
		),
	)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf(
			"failed to write report: %w", err,
		)
	}
	return path, nil
}
