package entities

// SoapTemplate is a templated SOAP note skeleton for one disease.
// The four free-text fields carry the disease name interpolated into
// fixed sentence templates; IcdCode is a synthetic placeholder, not a
// real ICD-10 lookup.
type SoapTemplate struct {
	Disease    string `json:"disease"`
	IcdCode    string `json:"icdCode"`
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}
