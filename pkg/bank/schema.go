// Package bank validates exercise definition banks before
// publishing. Authoring tooling runs it together with registry
// stats to confirm every exercise ships a usable verification
// module.
package bank

import "digital.vasic.exercises/pkg/exercise"

// BankFile represents the on-disk structure of an exercise
// definition bank file.
type BankFile struct {
	Version   string                `json:"version"`
	Name      string                `json:"name"`
	Exercises []exercise.Definition `json:"exercises"`
	Metadata  map[string]any        `json:"metadata,omitempty"`
}
