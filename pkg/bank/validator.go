package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.exercises/pkg/exercise"
	"digital.vasic.exercises/pkg/rule"
)

// ValidationError represents a validation issue found in a bank
// file.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf(
			"exercises[%d].%s: %s",
			e.Index, e.Field, e.Message,
		)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateFile parses and validates a bank file, returning all
// issues found. The format is chosen by extension.
func ValidateFile(path string) []ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{
			Field: "file", Message: err.Error(), Index: -1,
		}}
	}

	var file BankFile
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return []ValidationError{{
			Field: "parse", Message: err.Error(), Index: -1,
		}}
	}

	return Validate(&file)
}

// Validate checks a bank's structure: version present, unique
// non-empty exercise ids, named rules, declaration references
// consistent with the exercise's declaration list, and every
// rule condition using a known condition type. Unknown types
// degrade to failed rules at run time, so they are authoring
// defects worth catching before publishing.
func Validate(file *BankFile) []ValidationError {
	var errs []ValidationError

	if file.Version == "" {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: "version is required",
			Index:   -1,
		})
	}

	engine := rule.NewEngine()
	ids := make(map[string]bool)
	knownKinds := map[exercise.DeclKind]bool{
		exercise.DeclFunction:      true,
		exercise.DeclBoundConstant: true,
		exercise.DeclClass:         true,
	}

	for i, def := range file.Exercises {
		if def.ID == "" {
			errs = append(errs, ValidationError{
				Field:   "id",
				Message: "exercise id is required",
				Index:   i,
			})
		} else if ids[string(def.ID)] {
			errs = append(errs, ValidationError{
				Field: "id",
				Message: fmt.Sprintf(
					"duplicate id: %s", def.ID,
				),
				Index: i,
			})
		} else {
			ids[string(def.ID)] = true
		}

		if def.Name == "" {
			errs = append(errs, ValidationError{
				Field:   "name",
				Message: "exercise name is required",
				Index:   i,
			})
		}

		declared := make(map[string]bool)
		for j, ref := range def.Declarations {
			if ref.Name == "" {
				errs = append(errs, ValidationError{
					Field: fmt.Sprintf(
						"declarations[%d].name", j,
					),
					Message: "declaration name is required",
					Index:   i,
				})
			} else {
				declared[ref.Name] = true
			}

			if ref.Kind != "" && !knownKinds[ref.Kind] {
				errs = append(errs, ValidationError{
					Field: fmt.Sprintf(
						"declarations[%d].kind", j,
					),
					Message: fmt.Sprintf(
						"unknown declaration kind: %s",
						ref.Kind,
					),
					Index: i,
				})
			}
		}

		if len(def.Rules) == 0 {
			errs = append(errs, ValidationError{
				Field:   "rules",
				Message: "at least one rule is required",
				Index:   i,
			})
		}

		for j, rd := range def.Rules {
			if rd.Name == "" {
				errs = append(errs, ValidationError{
					Field: fmt.Sprintf(
						"rules[%d].name", j,
					),
					Message: "rule name is required",
					Index:   i,
				})
			}

			if rd.Declaration != "" &&
				len(declared) > 0 &&
				!declared[rd.Declaration] {
				errs = append(errs, ValidationError{
					Field: fmt.Sprintf(
						"rules[%d].declaration", j,
					),
					Message: fmt.Sprintf(
						"declaration not listed: %s",
						rd.Declaration,
					),
					Index: i,
				})
			}

			if len(rd.Conditions) == 0 {
				errs = append(errs, ValidationError{
					Field: fmt.Sprintf(
						"rules[%d].conditions", j,
					),
					Message: "at least one condition " +
						"is required",
					Index: i,
				})
			}

			for k, cd := range rd.Conditions {
				if engine.HasCheck(cd.Type) {
					continue
				}
				errs = append(errs, ValidationError{
					Field: fmt.Sprintf(
						"rules[%d].conditions[%d].type",
						j, k,
					),
					Message: fmt.Sprintf(
						"unknown condition type: %s",
						cd.Type,
					),
					Index: i,
				})
			}
		}
	}

	return errs
}
