package entities

import "strconv"

// EstimateDetail is a vendor's bid for performing a repair.
//
// Catalog entries are immutable; exactly one estimate may be confirmed per
// repair cycle, and confirming it is the sole trigger for the
// REGISTERED -> REPAIRING transition.
//
// Rating is a decimal in [0, 5]. Displays round it to exactly one decimal
// place ("4.8", never "4.80"), see FormattedRating.

type EstimateDetail struct {
	ID               string   `json:"id"`
	VendorName       string   `json:"vendor_name"`
	ExpectedCost     string   `json:"expected_cost"`
	ExpectedDuration string   `json:"expected_duration"`
	Rating           float64  `json:"rating"`
	IsNew            bool     `json:"is_new,omitempty"`
	RepairItems      []string `json:"repair_items"`
	EngineerName     string   `json:"engineer_name,omitempty"`
	PhoneNumber      string   `json:"phone_number,omitempty"`
}

// FormattedRating renders the rating with one decimal place.
func (e EstimateDetail) FormattedRating() string {
	return strconv.FormatFloat(e.Rating, 'f', 1, 64)
}
