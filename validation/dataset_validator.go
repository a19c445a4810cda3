// Package validation provides integrity checks over the authored
// dataset tables before they are written out. Checks cover the repo's
// own invariants only; placeholder ICD codes are treated as opaque
// literals and never resolved against a real coding standard.
package validation

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators/entities"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/interfaces"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/logging"
)

// DatasetValidatorImpl implements the interfaces.DatasetValidator interface
type DatasetValidatorImpl struct{}

// NewDatasetValidator creates a new dataset validator
func NewDatasetValidator() interfaces.DatasetValidator {
	return &DatasetValidatorImpl{}
}

// checkNormalized rejects authored text that is not NFC-normalized.
// Mixed normalization forms would break the byte-identical output
// guarantee without being visible in source review.
func checkNormalized(field, value string) error {
	if !norm.NFC.IsNormalString(value) {
		return fmt.Errorf("%s is not NFC-normalized: %q", field, value)
	}
	return nil
}

// ValidateSoapTemplates checks disease uniqueness and that every
// templated field carries text
func (v *DatasetValidatorImpl) ValidateSoapTemplates(templates []entities.SoapTemplate) error {
	if len(templates) == 0 {
		return fmt.Errorf("no soap templates found")
	}

	seen := make(map[string]bool, len(templates))

	for i, tpl := range templates {
		if strings.TrimSpace(tpl.Disease) == "" {
			return fmt.Errorf("empty disease name at index %d", i)
		}
		if seen[tpl.Disease] {
			return fmt.Errorf("duplicate disease in soap templates: %s", tpl.Disease)
		}
		seen[tpl.Disease] = true

		if tpl.IcdCode == "" {
			return fmt.Errorf("missing icdCode for disease %s", tpl.Disease)
		}

		fields := map[string]string{
			"subjective": tpl.Subjective,
			"objective":  tpl.Objective,
			"assessment": tpl.Assessment,
			"plan":       tpl.Plan,
		}
		for name, value := range fields {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("empty %s field for disease %s", name, tpl.Disease)
			}
			if err := checkNormalized(name, value); err != nil {
				return fmt.Errorf("disease %s: %w", tpl.Disease, err)
			}
		}

		if err := checkNormalized("disease", tpl.Disease); err != nil {
			return err
		}
	}

	return nil
}

// ValidateStagingRecords checks the single-stage invariant and that
// every record carries its labels
func (v *DatasetValidatorImpl) ValidateStagingRecords(records []entities.StagingRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("no staging records found")
	}

	for i, rec := range records {
		if strings.TrimSpace(rec.Disease) == "" {
			return fmt.Errorf("empty disease name at index %d", i)
		}
		if strings.TrimSpace(rec.IcdCode) == "" {
			return fmt.Errorf("missing icdCode for disease %s", rec.Disease)
		}
		if strings.TrimSpace(rec.StagingSystem) == "" {
			return fmt.Errorf("missing staging system for disease %s", rec.Disease)
		}
		if strings.TrimSpace(rec.Category) == "" {
			return fmt.Errorf("missing category for disease %s (%s)", rec.Disease, rec.StagingSystem)
		}

		// Each record carries exactly one stage level
		if len(rec.Stages) != 1 {
			return fmt.Errorf("disease %s (%s) has %d stage entries, want exactly 1",
				rec.Disease, rec.StagingSystem, len(rec.Stages))
		}

		stage := rec.Stages[0]
		if strings.TrimSpace(stage.Stage) == "" {
			return fmt.Errorf("empty stage label for disease %s (%s)", rec.Disease, rec.StagingSystem)
		}

		for field, value := range map[string]string{
			"disease":     rec.Disease,
			"stage":       stage.Stage,
			"criteria":    stage.Criteria,
			"description": stage.Description,
			"category":    rec.Category,
		} {
			if err := checkNormalized(field, value); err != nil {
				return fmt.Errorf("disease %s (%s): %w", rec.Disease, rec.StagingSystem, err)
			}
		}
	}

	return nil
}

// ValidateDepartments checks department code uniqueness, bed counts
// and the beds/wards convention
func (v *DatasetValidatorImpl) ValidateDepartments(departments []entities.Department) error {
	if len(departments) == 0 {
		return fmt.Errorf("no departments found")
	}

	codeCount := make(map[string]int, len(departments))
	for _, dep := range departments {
		codeCount[dep.DepartmentCode]++
	}

	var duplicates []string
	for code, count := range codeCount {
		if count > 1 {
			duplicates = append(duplicates, code)
		}
	}

	if len(duplicates) > 0 {
		logging.Error("Duplicate department codes detected",
			"count", len(duplicates),
			"duplicates", duplicates,
		)
		return fmt.Errorf("found %d duplicate department codes", len(duplicates))
	}

	for _, dep := range departments {
		if strings.TrimSpace(dep.DepartmentCode) == "" {
			return fmt.Errorf("empty department code for %s", dep.DepartmentName)
		}
		if strings.TrimSpace(dep.DepartmentName) == "" {
			return fmt.Errorf("empty department name for code %s", dep.DepartmentCode)
		}
		if dep.BedCount < 0 {
			return fmt.Errorf("negative bed count for department %s: %d", dep.DepartmentCode, dep.BedCount)
		}

		// Authored convention, warned rather than enforced
		if dep.BedCount == 0 && len(dep.Wards) > 0 {
			logging.Warn("Department has wards but no beds",
				"department", dep.DepartmentCode,
				"wards", dep.Wards,
			)
		}

		for field, value := range map[string]string{
			"departmentCode": dep.DepartmentCode,
			"departmentName": dep.DepartmentName,
			"category":       dep.Category,
		} {
			if err := checkNormalized(field, value); err != nil {
				return fmt.Errorf("department %s: %w", dep.DepartmentCode, err)
			}
		}
		for _, list := range [][]string{dep.Aliases, dep.Wards, dep.SpecialRequirements} {
			for _, value := range list {
				if err := checkNormalized("list entry", value); err != nil {
					return fmt.Errorf("department %s: %w", dep.DepartmentCode, err)
				}
			}
		}
	}

	return nil
}
