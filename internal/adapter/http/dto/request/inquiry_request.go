package request

import "strings"

// InquiryRequest is the repair intake form. Intake describes how the device
// reaches the shop, Symptoms what the owner observed. Both are free text and
// individually optional; the use case rejects only when both are blank.
type InquiryRequest struct {
	Intake   string `json:"intake"`
	Symptoms string `json:"symptoms"`
}

func (r InquiryRequest) ResolveIntake() string {
	return strings.TrimSpace(r.Intake)
}

func (r InquiryRequest) ResolveSymptoms() string {
	return strings.TrimSpace(r.Symptoms)
}
