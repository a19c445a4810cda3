// Package interfaces defines core abstractions for the dataset
// generators to improve testability and separation of concerns.
package interfaces

import (
	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators/entities"
)

// DatasetGenerator defines the contract for one dataset unit: build
// the records from the authored tables, validate them, and replace the
// output file. Generate reports how many records were written.
type DatasetGenerator interface {
	// Name returns a short identifier used in logs and CLI args
	Name() string

	// OutputPath returns the file the generator writes
	OutputPath() string

	// Generate builds, validates and writes the dataset
	Generate() (recordCount int, err error)
}

// Scheduler defines the contract for watch-mode regeneration.
// It performs an initial generation, then regenerates on a daily
// schedule until stopped.
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// DatasetValidator defines the contract for integrity checks over the
// authored tables. It validates the repo's own invariants (uniqueness,
// ordering-sensitive shapes, text normalization), never external
// coding standards.
type DatasetValidator interface {
	// ValidateSoapTemplates checks disease uniqueness and non-empty fields
	ValidateSoapTemplates(templates []entities.SoapTemplate) error

	// ValidateStagingRecords checks the single-stage invariant and labels
	ValidateStagingRecords(records []entities.StagingRecord) error

	// ValidateDepartments checks code uniqueness and bed/ward consistency
	ValidateDepartments(departments []entities.Department) error
}
