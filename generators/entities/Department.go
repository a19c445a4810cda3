package entities

// Department maps a hospital department's canonical code and name to
// its aliases and operational attributes. Wards is empty and BedCount
// zero for departments without inpatient beds (pathology, radiology,
// lab).
type Department struct {
	DepartmentCode      string   `json:"departmentCode"`
	DepartmentName      string   `json:"departmentName"`
	Aliases             []string `json:"aliases"`
	Category            string   `json:"category"`
	Wards               []string `json:"wards"`
	BedCount            int      `json:"bedCount"`
	SpecialRequirements []string `json:"specialRequirements"`
}
