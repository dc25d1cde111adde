package response

import (
	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase"
)

type StoreResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceKm     float64 `json:"distance_km"`
	Phone          string  `json:"phone"`
	SupportsSales  bool    `json:"supports_sales"`
	SupportsRepair bool    `json:"supports_repair"`
}

func FromStore(s entities.Store) StoreResponse {
	return StoreResponse{
		ID:             s.ID,
		Name:           s.Name,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		DistanceKm:     s.DistanceKm,
		Phone:          s.Phone,
		SupportsSales:  s.SupportsSales,
		SupportsRepair: s.SupportsRepair,
	}
}

func FromStores(stores []entities.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, FromStore(s))
	}
	return out
}

// StoreMarkerResponse is a store projected onto the map viewport.
type StoreMarkerResponse struct {
	Store       StoreResponse `json:"store"`
	TopPercent  float64       `json:"top_percent"`
	LeftPercent float64       `json:"left_percent"`
}

func FromStoreMarkers(markers []usecase.StoreMarker) []StoreMarkerResponse {
	out := make([]StoreMarkerResponse, 0, len(markers))
	for _, m := range markers {
		out = append(out, StoreMarkerResponse{
			Store:       FromStore(m.Store),
			TopPercent:  m.Position.TopPercent,
			LeftPercent: m.Position.LeftPercent,
		})
	}
	return out
}
