package main

import (
	"testing"

	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/interfaces"
	"github.com/archibaldedwards48-ship-it/medqc-datasets/validation"
)

func testGenerators() []interfaces.DatasetGenerator {
	validator := validation.NewDatasetValidator()
	return []interfaces.DatasetGenerator{
		generators.NewSoapTemplateGenerator("data", validator),
		generators.NewDiseaseStagingGenerator("data", validator),
		generators.NewDepartmentMappingGenerator("data", validator),
	}
}

func TestSelectGeneratorsDefaultsToAll(t *testing.T) {
	available := testGenerators()

	selected, err := selectGenerators(available, nil)
	if err != nil {
		t.Fatalf("selectGenerators failed: %v", err)
	}
	if len(selected) != len(available) {
		t.Errorf("expected all %d generators, got %d", len(available), len(selected))
	}
}

func TestSelectGeneratorsByName(t *testing.T) {
	selected, err := selectGenerators(testGenerators(), []string{"staging"})
	if err != nil {
		t.Fatalf("selectGenerators failed: %v", err)
	}
	if len(selected) != 1 || selected[0].Name() != "staging" {
		t.Errorf("expected only the staging generator, got %v", selected)
	}
}

func TestSelectGeneratorsKeepsRegistrationOrder(t *testing.T) {
	// Request in reverse order; output must stay soap, departments
	selected, err := selectGenerators(testGenerators(), []string{"departments", "soap"})
	if err != nil {
		t.Fatalf("selectGenerators failed: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected 2 generators, got %d", len(selected))
	}
	if selected[0].Name() != "soap" || selected[1].Name() != "departments" {
		t.Errorf("unexpected order: %s, %s", selected[0].Name(), selected[1].Name())
	}
}

func TestSelectGeneratorsRejectsUnknownName(t *testing.T) {
	if _, err := selectGenerators(testGenerators(), []string{"nope"}); err == nil {
		t.Error("expected error for unknown dataset name")
	}
}
