package generators

import (
	"fmt"
	"path/filepath"

	"github.com/archibaldedwards48-ship-it/medqc-datasets/interfaces"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/logging"
)

// Compile-time checks that all generators implement the interface
var (
	_ interfaces.DatasetGenerator = (*SoapTemplateGenerator)(nil)
	_ interfaces.DatasetGenerator = (*DiseaseStagingGenerator)(nil)
	_ interfaces.DatasetGenerator = (*DepartmentMappingGenerator)(nil)
)

// SoapTemplateGenerator produces data/d2_soap_templates.json.
type SoapTemplateGenerator struct {
	dataDir   string
	validator interfaces.DatasetValidator
}

// NewSoapTemplateGenerator creates a SOAP template generator writing
// into dataDir
func NewSoapTemplateGenerator(dataDir string, validator interfaces.DatasetValidator) *SoapTemplateGenerator {
	return &SoapTemplateGenerator{dataDir: dataDir, validator: validator}
}

func (g *SoapTemplateGenerator) Name() string { return "soap" }

func (g *SoapTemplateGenerator) OutputPath() string {
	return filepath.Join(g.dataDir, "d2_soap_templates.json")
}

// Generate builds, validates and writes the SOAP template dataset
func (g *SoapTemplateGenerator) Generate() (int, error) {
	templates := BuildSoapTemplates()

	if err := g.validator.ValidateSoapTemplates(templates); err != nil {
		return 0, fmt.Errorf("soap template validation failed: %w", err)
	}

	if err := writeDataset(g.OutputPath(), templates); err != nil {
		return 0, err
	}

	logging.Info("Dataset generated", "dataset", g.Name(), "records", len(templates), "path", g.OutputPath())

	return len(templates), nil
}

// DiseaseStagingGenerator produces data/d6_disease_staging.json.
type DiseaseStagingGenerator struct {
	dataDir   string
	validator interfaces.DatasetValidator
}

// NewDiseaseStagingGenerator creates a disease staging generator
// writing into dataDir
func NewDiseaseStagingGenerator(dataDir string, validator interfaces.DatasetValidator) *DiseaseStagingGenerator {
	return &DiseaseStagingGenerator{dataDir: dataDir, validator: validator}
}

func (g *DiseaseStagingGenerator) Name() string { return "staging" }

func (g *DiseaseStagingGenerator) OutputPath() string {
	return filepath.Join(g.dataDir, "d6_disease_staging.json")
}

// Generate builds, validates and writes the disease staging dataset
func (g *DiseaseStagingGenerator) Generate() (int, error) {
	records := BuildStagingRecords()

	if err := g.validator.ValidateStagingRecords(records); err != nil {
		return 0, fmt.Errorf("disease staging validation failed: %w", err)
	}

	if err := writeDataset(g.OutputPath(), records); err != nil {
		return 0, err
	}

	logging.Info("Dataset generated", "dataset", g.Name(), "records", len(records), "path", g.OutputPath())

	return len(records), nil
}

// DepartmentMappingGenerator produces data/d8_department_mapping.json.
type DepartmentMappingGenerator struct {
	dataDir   string
	validator interfaces.DatasetValidator
}

// NewDepartmentMappingGenerator creates a department mapping generator
// writing into dataDir
func NewDepartmentMappingGenerator(dataDir string, validator interfaces.DatasetValidator) *DepartmentMappingGenerator {
	return &DepartmentMappingGenerator{dataDir: dataDir, validator: validator}
}

func (g *DepartmentMappingGenerator) Name() string { return "departments" }

func (g *DepartmentMappingGenerator) OutputPath() string {
	return filepath.Join(g.dataDir, "d8_department_mapping.json")
}

// Generate builds, validates and writes the department mapping dataset
func (g *DepartmentMappingGenerator) Generate() (int, error) {
	departments := BuildDepartments()

	if err := g.validator.ValidateDepartments(departments); err != nil {
		return 0, fmt.Errorf("department mapping validation failed: %w", err)
	}

	if err := writeDataset(g.OutputPath(), departments); err != nil {
		return 0, err
	}

	logging.Info("Dataset generated", "dataset", g.Name(), "records", len(departments), "path", g.OutputPath())

	return len(departments), nil
}
