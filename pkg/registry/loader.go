package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.exercises/pkg/exercise"
)

// bankFile is the on-disk structure for an exercise definition
// bank (JSON or YAML).
type bankFile struct {
	Version   string                `json:"version"`
	Name      string                `json:"name"`
	Exercises []exercise.Definition `json:"exercises"`
}

// LoadDefinitionsFromFile reads a definition bank file and
// registers a definition-backed loader for each exercise in it.
// The format is chosen by extension: .json, or .yaml/.yml.
func LoadDefinitionsFromFile(
	reg Registry,
	path string,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(
			"failed to read definitions file %s: %w",
			path, err,
		)
	}

	var bank bankFile
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bank)
	default:
		err = json.Unmarshal(data, &bank)
	}
	if err != nil {
		return fmt.Errorf(
			"failed to parse definitions from %s: %w",
			path, err,
		)
	}

	for i := range bank.Exercises {
		def := &bank.Exercises[i]
		if err := reg.RegisterDefinition(def); err != nil {
			return fmt.Errorf(
				"definition %s from %s: %w",
				def.ID, path, err,
			)
		}
	}

	return nil
}

// LoadDefinitionsFromDir loads all .json and .yaml/.yml
// definition bank files from a directory. It does not recurse
// into subdirectories.
func LoadDefinitionsFromDir(
	reg Registry,
	dir string,
) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		if err := LoadDefinitionsFromFile(reg, p); err != nil {
			return fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}
	}

	return nil
}
