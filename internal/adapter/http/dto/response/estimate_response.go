package response

import "patoz_consumer/internal/domain/entities"

// EstimateResponse mirrors the vendor card shown in the app. Rating carries
// the raw decimal, FormattedRating the one-decimal display string.
type EstimateResponse struct {
	ID               string   `json:"id"`
	VendorName       string   `json:"vendor_name"`
	ExpectedCost     string   `json:"expected_cost"`
	ExpectedDuration string   `json:"expected_duration"`
	Rating           float64  `json:"rating"`
	FormattedRating  string   `json:"formatted_rating"`
	IsNew            bool     `json:"is_new"`
	RepairItems      []string `json:"repair_items"`
	EngineerName     string   `json:"engineer_name,omitempty"`
	PhoneNumber      string   `json:"phone_number,omitempty"`
}

func FromEstimateDetail(e entities.EstimateDetail) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		VendorName:       e.VendorName,
		ExpectedCost:     e.ExpectedCost,
		ExpectedDuration: e.ExpectedDuration,
		Rating:           e.Rating,
		FormattedRating:  e.FormattedRating(),
		IsNew:            e.IsNew,
		RepairItems:      e.RepairItems,
		EngineerName:     e.EngineerName,
		PhoneNumber:      e.PhoneNumber,
	}
}

func FromEstimateDetails(estimates []entities.EstimateDetail) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimateDetail(e))
	}
	return out
}
