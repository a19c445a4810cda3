package generators

import (
	"reflect"
	"testing"
)

func TestBuildDepartmentsCount(t *testing.T) {
	departments := BuildDepartments()
	if len(departments) != 32 {
		t.Errorf("expected 32 departments, got %d", len(departments))
	}
}

func TestBuildDepartmentsICU(t *testing.T) {
	for _, dep := range BuildDepartments() {
		if dep.DepartmentCode != "ICU" {
			continue
		}
		if dep.DepartmentName != "重症医学科" {
			t.Errorf("expected name 重症医学科, got %s", dep.DepartmentName)
		}
		if dep.BedCount != 30 {
			t.Errorf("expected bedCount 30, got %d", dep.BedCount)
		}
		expectedWards := []string{"ICU-A区", "ICU-B区"}
		if !reflect.DeepEqual(dep.Wards, expectedWards) {
			t.Errorf("expected wards %v, got %v", expectedWards, dep.Wards)
		}
		return
	}
	t.Fatal("ICU department not found")
}

func TestBuildDepartmentsUniqueCodes(t *testing.T) {
	seen := make(map[string]bool)
	for _, dep := range BuildDepartments() {
		if seen[dep.DepartmentCode] {
			t.Errorf("duplicate department code: %s", dep.DepartmentCode)
		}
		seen[dep.DepartmentCode] = true
	}
}

func TestBuildDepartmentsZeroBedsHaveNoWards(t *testing.T) {
	for _, dep := range BuildDepartments() {
		if dep.BedCount == 0 && len(dep.Wards) > 0 {
			t.Errorf("department %s has no beds but wards %v", dep.DepartmentCode, dep.Wards)
		}
		if dep.BedCount < 0 {
			t.Errorf("department %s has negative bed count %d", dep.DepartmentCode, dep.BedCount)
		}
	}
}

func TestBuildDepartmentsAuthoredOrder(t *testing.T) {
	departments := BuildDepartments()

	if departments[0].DepartmentCode != "ICU" {
		t.Errorf("expected first department ICU, got %s", departments[0].DepartmentCode)
	}
	if departments[len(departments)-1].DepartmentCode != "LAB" {
		t.Errorf("expected last department LAB, got %s", departments[len(departments)-1].DepartmentCode)
	}

	// The three non-ward departments close the dataset
	nonWard := departments[len(departments)-3:]
	for _, dep := range nonWard {
		if dep.BedCount != 0 || len(dep.Wards) != 0 {
			t.Errorf("expected %s to have no beds or wards", dep.DepartmentCode)
		}
	}
}
