package generators

import (
	"testing"

	"github.com/archibaldedwards48-ship-it/medqc-datasets/generators/entities"
)

// recordsBySystem groups records preserving order within each system
func recordsBySystem(records []entities.StagingRecord) map[string][]entities.StagingRecord {
	grouped := make(map[string][]entities.StagingRecord)
	for _, rec := range records {
		grouped[rec.StagingSystem] = append(grouped[rec.StagingSystem], rec)
	}
	return grouped
}

func TestBuildStagingRecordsTotalCount(t *testing.T) {
	records := BuildStagingRecords()

	// Sum over each system of |diseases| x |stage levels|
	expected := 15*4 + // TNM
		3*4 + // NYHA
		3*5 + // CKD
		1*4 + // GOLD
		2*3 + // Child-Pugh
		1*3 + // 高血压分级
		1*4 + // 高血压危险分层
		1*3 + 1*5 + 1*3 + // 糖尿病并发症分期
		1*4 + // 烧伤分度
		15*3 + // AO分型
		1*5 + // ECOG PS
		1*3 + // GCS
		1*6 + // ASA PS
		1*6 + // Forrest
		1*7 // mRS

	if expected != 191 {
		t.Fatalf("test table arithmetic drifted: %d", expected)
	}
	if len(records) != expected {
		t.Errorf("expected %d staging records, got %d", expected, len(records))
	}
}

func TestBuildStagingRecordsPerSystemCounts(t *testing.T) {
	grouped := recordsBySystem(BuildStagingRecords())

	tests := []struct {
		system string
		count  int
	}{
		{"TNM", 60},
		{"NYHA", 12},
		{"CKD", 15},
		{"GOLD", 4},
		{"Child-Pugh", 6},
		{"分级", 3},
		{"危险分层", 4},
		{"分期", 11},
		{"分度", 4},
		{"AO分型", 45},
		{"ECOG PS", 5},
		{"GCS", 3},
		{"ASA PS", 6},
		{"Forrest", 6},
		{"mRS", 7},
	}

	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			if got := len(grouped[tt.system]); got != tt.count {
				t.Errorf("system %s: expected %d records, got %d", tt.system, tt.count, got)
			}
		})
	}
}

func TestBuildStagingRecordsNYHAHeartFailure(t *testing.T) {
	var heartFailure []entities.StagingRecord
	for _, rec := range BuildStagingRecords() {
		if rec.Disease == "心力衰竭" && rec.StagingSystem == "NYHA" {
			heartFailure = append(heartFailure, rec)
		}
	}

	if len(heartFailure) != 4 {
		t.Fatalf("expected 4 NYHA records for 心力衰竭, got %d", len(heartFailure))
	}

	expectedStages := []string{"I级", "II级", "III级", "IV级"}
	for i, rec := range heartFailure {
		if rec.IcdCode != "I50" {
			t.Errorf("record %d: expected icdCode I50, got %s", i, rec.IcdCode)
		}
		if rec.Stages[0].Stage != expectedStages[i] {
			t.Errorf("record %d: expected stage %s, got %s", i, expectedStages[i], rec.Stages[0].Stage)
		}
		if rec.Category != "心功能分级" {
			t.Errorf("record %d: expected category 心功能分级, got %s", i, rec.Category)
		}
	}
}

func TestBuildStagingRecordsSingleStageInvariant(t *testing.T) {
	for i, rec := range BuildStagingRecords() {
		if len(rec.Stages) != 1 {
			t.Errorf("record %d (%s/%s): expected exactly 1 stage entry, got %d",
				i, rec.Disease, rec.StagingSystem, len(rec.Stages))
		}
	}
}

func TestBuildStagingRecordsAuthoredOrder(t *testing.T) {
	records := BuildStagingRecords()

	// The dataset opens with the TNM table in authored disease order
	first := records[0]
	if first.Disease != "肺癌" || first.IcdCode != "C34" || first.Stages[0].Stage != "I期" {
		t.Errorf("unexpected first record: %+v", first)
	}

	// Second disease block starts after the four 肺癌 stages
	if records[4].Disease != "胃癌" || records[4].IcdCode != "C16" {
		t.Errorf("unexpected fifth record: %+v", records[4])
	}

	// The dataset closes with the mRS scale ending at 6分
	last := records[len(records)-1]
	if last.StagingSystem != "mRS" || last.Stages[0].Stage != "6分" {
		t.Errorf("unexpected last record: %+v", last)
	}
}

func TestBuildStagingRecordsCKDStageOrder(t *testing.T) {
	grouped := recordsBySystem(BuildStagingRecords())

	ckd := grouped["CKD"]
	expectedStages := []string{"1期", "2期", "3期", "4期", "5期"}
	// First five CKD records belong to 慢性肾病 in ascending stage order
	for i, expected := range expectedStages {
		rec := ckd[i]
		if rec.Disease != "慢性肾病" {
			t.Fatalf("CKD record %d: expected disease 慢性肾病, got %s", i, rec.Disease)
		}
		if rec.Stages[0].Stage != expected {
			t.Errorf("CKD record %d: expected stage %s, got %s", i, expected, rec.Stages[0].Stage)
		}
	}
}

func TestBuildStagingRecordsReproducible(t *testing.T) {
	a := BuildStagingRecords()
	b := BuildStagingRecords()

	if len(a) != len(b) {
		t.Fatalf("record counts differ across builds: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Disease != b[i].Disease || a[i].StagingSystem != b[i].StagingSystem ||
			a[i].Stages[0].Stage != b[i].Stages[0].Stage {
			t.Errorf("record %d differs across builds: %+v vs %+v", i, a[i], b[i])
		}
	}
}
