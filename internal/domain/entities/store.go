package entities

// Store is a partner location in the store-finder map.

type Store struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceKm     float64 `json:"distance_km"`
	Phone          string  `json:"phone"`
	SupportsSales  bool    `json:"supports_sales"`
	SupportsRepair bool    `json:"supports_repair"`
}

// Region is a map viewport centered on latitude/longitude with the given
// half-extents doubled (delta spans the full viewport edge).

type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// Contains reports whether the store lies inside the region's bounding box.
func (r Region) Contains(s Store) bool {
	latMin := r.Latitude - r.LatitudeDelta/2
	latMax := r.Latitude + r.LatitudeDelta/2
	lonMin := r.Longitude - r.LongitudeDelta/2
	lonMax := r.Longitude + r.LongitudeDelta/2

	return s.Latitude >= latMin && s.Latitude <= latMax &&
		s.Longitude >= lonMin && s.Longitude <= lonMax
}

// MarkerPosition is a store's pin position on the rendered map, expressed as
// percentages of the viewport.

type MarkerPosition struct {
	TopPercent  float64 `json:"top_percent"`
	LeftPercent float64 `json:"left_percent"`
}

// MarkerPosition projects the store onto the region. The vertical ratio is
// clamped to [10, 90] before inversion (screen y grows downward), the
// horizontal ratio to [8, 92].
func (r Region) MarkerPosition(s Store) MarkerPosition {
	latMin := r.Latitude - r.LatitudeDelta/2
	lonMin := r.Longitude - r.LongitudeDelta/2

	yRatio := (s.Latitude - latMin) / r.LatitudeDelta
	xRatio := (s.Longitude - lonMin) / r.LongitudeDelta

	top := 100 - clamp(yRatio*100, 10, 90)
	left := clamp(xRatio*100, 8, 92)

	return MarkerPosition{TopPercent: top, LeftPercent: left}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
