package entities

import (
	"math"
	"testing"
)

var seoulRegion = Region{
	Latitude:       37.5665,
	Longitude:      126.978,
	LatitudeDelta:  0.11,
	LongitudeDelta: 0.14,
}

func TestRegionContains(t *testing.T) {
	inside := Store{ID: "store-1", Latitude: 37.5794, Longitude: 126.977}
	if !seoulRegion.Contains(inside) {
		t.Fatalf("expected store inside viewport")
	}

	south := Store{ID: "far", Latitude: 37.40, Longitude: 126.977}
	if seoulRegion.Contains(south) {
		t.Fatalf("store below the viewport must be excluded")
	}

	east := Store{ID: "far-east", Latitude: 37.5665, Longitude: 127.20}
	if seoulRegion.Contains(east) {
		t.Fatalf("store east of the viewport must be excluded")
	}

	edge := Store{ID: "edge", Latitude: 37.5665 + 0.055, Longitude: 126.978}
	if !seoulRegion.Contains(edge) {
		t.Fatalf("boundary is inclusive")
	}
}

func TestMarkerPosition(t *testing.T) {
	center := Store{Latitude: seoulRegion.Latitude, Longitude: seoulRegion.Longitude}
	pos := seoulRegion.MarkerPosition(center)
	if math.Abs(pos.TopPercent-50) > 1e-9 || math.Abs(pos.LeftPercent-50) > 1e-9 {
		t.Fatalf("center store must project to the middle, got %+v", pos)
	}
}

func TestMarkerPositionClamping(t *testing.T) {
	north := Store{Latitude: seoulRegion.Latitude + 1, Longitude: seoulRegion.Longitude}
	pos := seoulRegion.MarkerPosition(north)
	if pos.TopPercent != 10 {
		t.Fatalf("far-north store must clamp to top 10%%, got %v", pos.TopPercent)
	}

	south := Store{Latitude: seoulRegion.Latitude - 1, Longitude: seoulRegion.Longitude}
	pos = seoulRegion.MarkerPosition(south)
	if pos.TopPercent != 90 {
		t.Fatalf("far-south store must clamp to top 90%%, got %v", pos.TopPercent)
	}

	west := Store{Latitude: seoulRegion.Latitude, Longitude: seoulRegion.Longitude - 1}
	pos = seoulRegion.MarkerPosition(west)
	if pos.LeftPercent != 8 {
		t.Fatalf("far-west store must clamp to left 8%%, got %v", pos.LeftPercent)
	}

	east := Store{Latitude: seoulRegion.Latitude, Longitude: seoulRegion.Longitude + 1}
	pos = seoulRegion.MarkerPosition(east)
	if pos.LeftPercent != 92 {
		t.Fatalf("far-east store must clamp to left 92%%, got %v", pos.LeftPercent)
	}
}
