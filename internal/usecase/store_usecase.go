package usecase

import (
	"context"

	"patoz_consumer/internal/domain/entities"
	"patoz_consumer/internal/usecase/interfaces"
)

// StoreFilter narrows the partner-store listing. Both flags AND together,
// matching the finder screen's toggle behavior.

type StoreFilter struct {
	SalesOnly  bool
	RepairOnly bool
}

// StoreMarker pairs a store with its projected pin position for the map.

type StoreMarker struct {
	Store    entities.Store          `json:"store"`
	Position entities.MarkerPosition `json:"position"`
}

// IStoreUseCase exposes the store-finder projections.

type IStoreUseCase interface {
	List(ctx context.Context, filter StoreFilter) ([]entities.Store, error)
	ListInViewport(ctx context.Context, region *entities.Region, filter StoreFilter) ([]StoreMarker, error)
}

type StoreUseCase struct {
	repo interfaces.IStoreRepository
}

var _ IStoreUseCase = (*StoreUseCase)(nil)

func NewStoreUseCase(repo interfaces.IStoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

func (u *StoreUseCase) List(ctx context.Context, filter StoreFilter) ([]entities.Store, error) {
	stores, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entities.Store, 0, len(stores))
	for _, s := range stores {
		if filter.SalesOnly && !s.SupportsSales {
			continue
		}
		if filter.RepairOnly && !s.SupportsRepair {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered, nil
}

// ListInViewport filters to stores inside the region (default region when
// nil) and projects each onto its marker position.
func (u *StoreUseCase) ListInViewport(ctx context.Context, region *entities.Region, filter StoreFilter) ([]StoreMarker, error) {
	stores, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	r := entities.Region{}
	if region != nil {
		r = *region
	} else {
		r, err = u.repo.DefaultRegion(ctx)
		if err != nil {
			return nil, err
		}
	}

	markers := make([]StoreMarker, 0, len(stores))
	for _, s := range stores {
		if !r.Contains(s) {
			continue
		}
		markers = append(markers, StoreMarker{Store: s, Position: r.MarkerPosition(s)})
	}
	return markers, nil
}
