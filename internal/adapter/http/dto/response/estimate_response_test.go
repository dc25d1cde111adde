package response

import (
	"testing"

	"patoz_consumer/internal/domain/entities"
)

func TestFromEstimateDetail(t *testing.T) {
	e := entities.EstimateDetail{
		ID:              "est-1",
		VendorName:      "PATOZ 강남 파트너센터",
		ExpectedCost:    "₩180,000",
		Rating:          4.8,
		RepairItems:     []string{"브레이크 패드 교체"},
	}

	got := FromEstimateDetail(e)
	if got.FormattedRating != "4.8" {
		t.Fatalf("expected one-decimal rating, got %q", got.FormattedRating)
	}
	if got.VendorName != e.VendorName || got.ExpectedCost != e.ExpectedCost {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestFromEstimateDetail_WholeRatingKeepsDecimal(t *testing.T) {
	got := FromEstimateDetail(entities.EstimateDetail{ID: "est-x", Rating: 5})
	if got.FormattedRating != "5.0" {
		t.Fatalf("expected %q, got %q", "5.0", got.FormattedRating)
	}
}
