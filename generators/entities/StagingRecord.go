package entities

// StageDetail is one level of a staging system: its label, the
// clinical criteria that define it, and a short description.
type StageDetail struct {
	Stage       string `json:"stage"`
	Criteria    string `json:"criteria"`
	Description string `json:"description"`
}

// StagingRecord associates one disease with one stage level of a
// staging system. The same disease appears once per stage level, so
// Stages always holds exactly one entry; record order within a
// staging system follows the authored severity order.
type StagingRecord struct {
	Disease       string        `json:"disease"`
	IcdCode       string        `json:"icdCode"`
	StagingSystem string        `json:"stagingSystem"`
	Stages        []StageDetail `json:"stages"`
	Category      string        `json:"category"`
}
